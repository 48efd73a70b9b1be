package weather

// Condition represents a weather condition as reported by the API.
type Condition struct {
	Code int    `json:"code"`
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Location identifies the place a weather reading belongs to.
type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"`
}

// Current is a single observation of current conditions.
type Current struct {
	LastUpdated      string    `json:"lastUpdated"`
	LastUpdatedEpoch int64     `json:"lastUpdatedEpoch"`
	TempC            float64   `json:"tempC"`
	TempF            float64   `json:"tempF"`
	IsDay            int       `json:"isDay"`
	Condition        Condition `json:"condition"`
	WindMph          float64   `json:"windMph"`
	WindKph          float64   `json:"windKph"`
	WindDegree       int       `json:"windDegree"`
	WindDir          string    `json:"windDir"`
	PressureMb       float64   `json:"pressureMb"`
	PressureIn       float64   `json:"pressureIn"`
	PrecipMm         float64   `json:"precipMm"`
	PrecipIn         float64   `json:"precipIn"`
	Humidity         int       `json:"humidity"`
	Cloud            int       `json:"cloud"`
	FeelsLikeC       float64   `json:"feelsLikeC"`
	FeelsLikeF       float64   `json:"feelsLikeF"`
	WindchillC       float64   `json:"windchillC"`
	WindchillF       float64   `json:"windchillF"`
	UV               float64   `json:"uv"`
}

// CurrentWeather is the result of one successful current-conditions fetch.
type CurrentWeather struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

// Day aggregates one forecast day.
type Day struct {
	MaxTempC      float64   `json:"maxTempC"`
	MaxTempF      float64   `json:"maxTempF"`
	MinTempC      float64   `json:"minTempC"`
	MinTempF      float64   `json:"minTempF"`
	AvgTempC      float64   `json:"avgTempC"`
	AvgTempF      float64   `json:"avgTempF"`
	MaxWindMph    float64   `json:"maxWindMph"`
	MaxWindKph    float64   `json:"maxWindKph"`
	TotalPrecipMm float64   `json:"totalPrecipMm"`
	TotalPrecipIn float64   `json:"totalPrecipIn"`
	TotalSnowCm   float64   `json:"totalSnowCm"`
	AvgVisKm      float64   `json:"avgVisKm"`
	AvgVisMiles   float64   `json:"avgVisMiles"`
	AvgHumidity   int       `json:"avgHumidity"`
	WillItRain    int       `json:"willItRain"`
	ChanceOfRain  int       `json:"chanceOfRain"`
	WillItSnow    int       `json:"willItSnow"`
	ChanceOfSnow  int       `json:"chanceOfSnow"`
	Condition     Condition `json:"condition"`
	UV            float64   `json:"uv"`
}

// Astro holds astronomical data for one forecast day.
type Astro struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moonPhase"`
	MoonIllumination int    `json:"moonIllumination"`
	IsMoonUp         int    `json:"isMoonUp"`
	IsSunUp          int    `json:"isSunUp"`
}

// Hour is one hourly forecast entry.
type Hour struct {
	TimeEpoch    int64     `json:"timeEpoch"`
	Time         string    `json:"time"`
	TempC        float64   `json:"tempC"`
	TempF        float64   `json:"tempF"`
	IsDay        int       `json:"isDay"`
	Condition    Condition `json:"condition"`
	WindMph      float64   `json:"windMph"`
	WindKph      float64   `json:"windKph"`
	WindDegree   int       `json:"windDegree"`
	WindDir      string    `json:"windDir"`
	PressureMb   float64   `json:"pressureMb"`
	PressureIn   float64   `json:"pressureIn"`
	PrecipMm     float64   `json:"precipMm"`
	PrecipIn     float64   `json:"precipIn"`
	SnowCm       float64   `json:"snowCm"`
	Humidity     int       `json:"humidity"`
	Cloud        int       `json:"cloud"`
	FeelsLikeC   float64   `json:"feelsLikeC"`
	FeelsLikeF   float64   `json:"feelsLikeF"`
	WindchillC   float64   `json:"windchillC"`
	WindchillF   float64   `json:"windchillF"`
	HeatIndexC   float64   `json:"heatIndexC"`
	HeatIndexF   float64   `json:"heatIndexF"`
	DewPointC    float64   `json:"dewPointC"`
	DewPointF    float64   `json:"dewPointF"`
	WillItRain   int       `json:"willItRain"`
	ChanceOfRain int       `json:"chanceOfRain"`
	WillItSnow   int       `json:"willItSnow"`
	ChanceOfSnow int       `json:"chanceOfSnow"`
	VisKm        float64   `json:"visKm"`
	VisMiles     float64   `json:"visMiles"`
	GustMph      float64   `json:"gustMph"`
	GustKph      float64   `json:"gustKph"`
	UV           float64   `json:"uv"`
}

// ForecastDay is one day of the forecast with its hourly breakdown.
type ForecastDay struct {
	Date      string `json:"date"`
	DateEpoch int64  `json:"dateEpoch"`
	Day       Day    `json:"day"`
	Astro     Astro  `json:"astro"`
	Hours     []Hour `json:"hours"`
}

// Forecast is the result of one successful forecast fetch. It is produced
// atomically from a single API response and never partially updated.
type Forecast struct {
	Location Location      `json:"location"`
	Current  Current       `json:"current"`
	Days     []ForecastDay `json:"days"`
}

// SearchResult is one candidate location returned by a city search.
type SearchResult struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}
