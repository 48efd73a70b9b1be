package weather

// Wire payloads for api.weatherapi.com. Every field is a pointer so that
// conversion can tell "absent" apart from a genuine zero value.

type ConditionDTO struct {
	Code *int    `json:"code"`
	Icon *string `json:"icon"`
	Text *string `json:"text"`
}

type LocationDTO struct {
	Name      *string  `json:"name"`
	Region    *string  `json:"region"`
	Country   *string  `json:"country"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Localtime *string  `json:"localtime"`
}

type CurrentDTO struct {
	LastUpdated      *string       `json:"last_updated"`
	LastUpdatedEpoch *int64        `json:"last_updated_epoch"`
	TempC            *float64      `json:"temp_c"`
	TempF            *float64      `json:"temp_f"`
	IsDay            *int          `json:"is_day"`
	Condition        *ConditionDTO `json:"condition"`
	WindMph          *float64      `json:"wind_mph"`
	WindKph          *float64      `json:"wind_kph"`
	WindDegree       *int          `json:"wind_degree"`
	WindDir          *string       `json:"wind_dir"`
	PressureMb       *float64      `json:"pressure_mb"`
	PressureIn       *float64      `json:"pressure_in"`
	PrecipMm         *float64      `json:"precip_mm"`
	PrecipIn         *float64      `json:"precip_in"`
	Humidity         *int          `json:"humidity"`
	Cloud            *int          `json:"cloud"`
	FeelsLikeC       *float64      `json:"feelslike_c"`
	FeelsLikeF       *float64      `json:"feelslike_f"`
	WindchillC       *float64      `json:"windchill_c"`
	WindchillF       *float64      `json:"windchill_f"`
	UV               *float64      `json:"uv"`
}

type CurrentWeatherDTO struct {
	Location *LocationDTO `json:"location"`
	Current  *CurrentDTO  `json:"current"`
}

type DayDTO struct {
	MaxTempC      *float64      `json:"maxtemp_c"`
	MaxTempF      *float64      `json:"maxtemp_f"`
	MinTempC      *float64      `json:"mintemp_c"`
	MinTempF      *float64      `json:"mintemp_f"`
	AvgTempC      *float64      `json:"avgtemp_c"`
	AvgTempF      *float64      `json:"avgtemp_f"`
	MaxWindMph    *float64      `json:"maxwind_mph"`
	MaxWindKph    *float64      `json:"maxwind_kph"`
	TotalPrecipMm *float64      `json:"totalprecip_mm"`
	TotalPrecipIn *float64      `json:"totalprecip_in"`
	TotalSnowCm   *float64      `json:"totalsnow_cm"`
	AvgVisKm      *float64      `json:"avgvis_km"`
	AvgVisMiles   *float64      `json:"avgvis_miles"`
	AvgHumidity   *int          `json:"avghumidity"`
	WillItRain    *int          `json:"daily_will_it_rain"`
	ChanceOfRain  *int          `json:"daily_chance_of_rain"`
	WillItSnow    *int          `json:"daily_will_it_snow"`
	ChanceOfSnow  *int          `json:"daily_chance_of_snow"`
	Condition     *ConditionDTO `json:"condition"`
	UV            *float64      `json:"uv"`
}

type AstroDTO struct {
	Sunrise          *string `json:"sunrise"`
	Sunset           *string `json:"sunset"`
	Moonrise         *string `json:"moonrise"`
	Moonset          *string `json:"moonset"`
	MoonPhase        *string `json:"moon_phase"`
	MoonIllumination *int    `json:"moon_illumination"`
	IsMoonUp         *int    `json:"is_moon_up"`
	IsSunUp          *int    `json:"is_sun_up"`
}

type HourDTO struct {
	TimeEpoch    *int64        `json:"time_epoch"`
	Time         *string       `json:"time"`
	TempC        *float64      `json:"temp_c"`
	TempF        *float64      `json:"temp_f"`
	IsDay        *int          `json:"is_day"`
	Condition    *ConditionDTO `json:"condition"`
	WindMph      *float64      `json:"wind_mph"`
	WindKph      *float64      `json:"wind_kph"`
	WindDegree   *int          `json:"wind_degree"`
	WindDir      *string       `json:"wind_dir"`
	PressureMb   *float64      `json:"pressure_mb"`
	PressureIn   *float64      `json:"pressure_in"`
	PrecipMm     *float64      `json:"precip_mm"`
	PrecipIn     *float64      `json:"precip_in"`
	SnowCm       *float64      `json:"snow_cm"`
	Humidity     *int          `json:"humidity"`
	Cloud        *int          `json:"cloud"`
	FeelsLikeC   *float64      `json:"feelslike_c"`
	FeelsLikeF   *float64      `json:"feelslike_f"`
	WindchillC   *float64      `json:"windchill_c"`
	WindchillF   *float64      `json:"windchill_f"`
	HeatIndexC   *float64      `json:"heatindex_c"`
	HeatIndexF   *float64      `json:"heatindex_f"`
	DewPointC    *float64      `json:"dewpoint_c"`
	DewPointF    *float64      `json:"dewpoint_f"`
	WillItRain   *int          `json:"will_it_rain"`
	ChanceOfRain *int          `json:"chance_of_rain"`
	WillItSnow   *int          `json:"will_it_snow"`
	ChanceOfSnow *int          `json:"chance_of_snow"`
	VisKm        *float64      `json:"vis_km"`
	VisMiles     *float64      `json:"vis_miles"`
	GustMph      *float64      `json:"gust_mph"`
	GustKph      *float64      `json:"gust_kph"`
	UV           *float64      `json:"uv"`
}

type ForecastDayDTO struct {
	Date      *string    `json:"date"`
	DateEpoch *int64     `json:"date_epoch"`
	Day       *DayDTO    `json:"day"`
	Astro     *AstroDTO  `json:"astro"`
	Hour      []*HourDTO `json:"hour"`
}

type ForecastDataDTO struct {
	ForecastDay []*ForecastDayDTO `json:"forecastday"`
}

type ForecastDTO struct {
	Location *LocationDTO     `json:"location"`
	Current  *CurrentDTO      `json:"current"`
	Forecast *ForecastDataDTO `json:"forecast"`
}

type SearchDTO struct {
	ID      *int     `json:"id"`
	Name    *string  `json:"name"`
	Region  *string  `json:"region"`
	Country *string  `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	URL     *string  `json:"url"`
}
