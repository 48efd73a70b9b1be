package weather

import "fmt"

// Conversion from wire payloads to domain values.
//
// Mandatory fields (temperatures, last-updated, condition blocks, country and
// coordinates) fail the whole conversion when absent. Everything else falls
// back to its zero value.

func CurrentWeatherFromDTO(dto *CurrentWeatherDTO) (CurrentWeather, error) {
	if dto == nil || dto.Current == nil {
		return CurrentWeather{}, fmt.Errorf("current block is missing")
	}
	if dto.Location == nil {
		return CurrentWeather{}, fmt.Errorf("location block is missing")
	}

	current, err := currentFromDTO(dto.Current)
	if err != nil {
		return CurrentWeather{}, err
	}
	location, err := locationFromDTO(dto.Location)
	if err != nil {
		return CurrentWeather{}, err
	}

	return CurrentWeather{Location: location, Current: current}, nil
}

func ForecastFromDTO(dto *ForecastDTO) (Forecast, error) {
	if dto == nil || dto.Current == nil {
		return Forecast{}, fmt.Errorf("current block is missing")
	}
	if dto.Location == nil {
		return Forecast{}, fmt.Errorf("location block is missing")
	}
	if dto.Forecast == nil {
		return Forecast{}, fmt.Errorf("forecast block is missing")
	}

	current, err := currentFromDTO(dto.Current)
	if err != nil {
		return Forecast{}, err
	}
	location, err := locationFromDTO(dto.Location)
	if err != nil {
		return Forecast{}, err
	}

	days := make([]ForecastDay, 0, len(dto.Forecast.ForecastDay))
	for _, fd := range dto.Forecast.ForecastDay {
		if fd == nil {
			continue
		}
		day, err := forecastDayFromDTO(fd)
		if err != nil {
			return Forecast{}, err
		}
		days = append(days, day)
	}

	return Forecast{Location: location, Current: current, Days: days}, nil
}

func SearchResultsFromDTO(dtos []SearchDTO) []SearchResult {
	results := make([]SearchResult, 0, len(dtos))
	for _, d := range dtos {
		results = append(results, SearchResult{
			ID:      intOr(d.ID, 0),
			Name:    strOr(d.Name, ""),
			Region:  strOr(d.Region, ""),
			Country: strOr(d.Country, ""),
			Lat:     floatOr(d.Lat, 0),
			Lon:     floatOr(d.Lon, 0),
			URL:     strOr(d.URL, ""),
		})
	}
	return results
}

func currentFromDTO(dto *CurrentDTO) (Current, error) {
	if dto.TempC == nil {
		return Current{}, fmt.Errorf("temp_c is mandatory for current conditions")
	}
	if dto.TempF == nil {
		return Current{}, fmt.Errorf("temp_f is mandatory for current conditions")
	}
	if dto.LastUpdated == nil {
		return Current{}, fmt.Errorf("last_updated is mandatory for current conditions")
	}
	if dto.Condition == nil {
		return Current{}, fmt.Errorf("condition is mandatory for current conditions")
	}

	return Current{
		LastUpdated:      *dto.LastUpdated,
		LastUpdatedEpoch: int64Or(dto.LastUpdatedEpoch, 0),
		TempC:            *dto.TempC,
		TempF:            *dto.TempF,
		IsDay:            intOr(dto.IsDay, 0),
		Condition:        conditionFromDTO(dto.Condition),
		WindMph:          floatOr(dto.WindMph, 0),
		WindKph:          floatOr(dto.WindKph, 0),
		WindDegree:       intOr(dto.WindDegree, 0),
		WindDir:          strOr(dto.WindDir, ""),
		PressureMb:       floatOr(dto.PressureMb, 0),
		PressureIn:       floatOr(dto.PressureIn, 0),
		PrecipMm:         floatOr(dto.PrecipMm, 0),
		PrecipIn:         floatOr(dto.PrecipIn, 0),
		Humidity:         intOr(dto.Humidity, 0),
		Cloud:            intOr(dto.Cloud, 0),
		FeelsLikeC:       floatOr(dto.FeelsLikeC, 0),
		FeelsLikeF:       floatOr(dto.FeelsLikeF, 0),
		WindchillC:       floatOr(dto.WindchillC, 0),
		WindchillF:       floatOr(dto.WindchillF, 0),
		UV:               floatOr(dto.UV, 0),
	}, nil
}

func locationFromDTO(dto *LocationDTO) (Location, error) {
	if dto.Country == nil {
		return Location{}, fmt.Errorf("country is mandatory for location")
	}
	if dto.Lat == nil {
		return Location{}, fmt.Errorf("lat is mandatory for location")
	}
	if dto.Lon == nil {
		return Location{}, fmt.Errorf("lon is mandatory for location")
	}

	return Location{
		Name:      strOr(dto.Name, ""),
		Region:    strOr(dto.Region, ""),
		Country:   *dto.Country,
		Lat:       *dto.Lat,
		Lon:       *dto.Lon,
		Localtime: strOr(dto.Localtime, ""),
	}, nil
}

func conditionFromDTO(dto *ConditionDTO) Condition {
	return Condition{
		Code: intOr(dto.Code, 0),
		Icon: strOr(dto.Icon, ""),
		Text: strOr(dto.Text, ""),
	}
}

func forecastDayFromDTO(dto *ForecastDayDTO) (ForecastDay, error) {
	if dto.Day == nil {
		return ForecastDay{}, fmt.Errorf("day block is mandatory for a forecast day")
	}
	day, err := dayFromDTO(dto.Day)
	if err != nil {
		return ForecastDay{}, err
	}

	hours := make([]Hour, 0, len(dto.Hour))
	for _, h := range dto.Hour {
		if h == nil {
			continue
		}
		hour, err := hourFromDTO(h)
		if err != nil {
			return ForecastDay{}, err
		}
		hours = append(hours, hour)
	}

	return ForecastDay{
		Date:      strOr(dto.Date, ""),
		DateEpoch: int64Or(dto.DateEpoch, 0),
		Day:       day,
		Astro:     astroFromDTO(dto.Astro),
		Hours:     hours,
	}, nil
}

func dayFromDTO(dto *DayDTO) (Day, error) {
	if dto.Condition == nil {
		return Day{}, fmt.Errorf("condition is mandatory for a forecast day")
	}

	return Day{
		MaxTempC:      floatOr(dto.MaxTempC, 0),
		MaxTempF:      floatOr(dto.MaxTempF, 0),
		MinTempC:      floatOr(dto.MinTempC, 0),
		MinTempF:      floatOr(dto.MinTempF, 0),
		AvgTempC:      floatOr(dto.AvgTempC, 0),
		AvgTempF:      floatOr(dto.AvgTempF, 0),
		MaxWindMph:    floatOr(dto.MaxWindMph, 0),
		MaxWindKph:    floatOr(dto.MaxWindKph, 0),
		TotalPrecipMm: floatOr(dto.TotalPrecipMm, 0),
		TotalPrecipIn: floatOr(dto.TotalPrecipIn, 0),
		TotalSnowCm:   floatOr(dto.TotalSnowCm, 0),
		AvgVisKm:      floatOr(dto.AvgVisKm, 0),
		AvgVisMiles:   floatOr(dto.AvgVisMiles, 0),
		AvgHumidity:   intOr(dto.AvgHumidity, 0),
		WillItRain:    intOr(dto.WillItRain, 0),
		ChanceOfRain:  intOr(dto.ChanceOfRain, 0),
		WillItSnow:    intOr(dto.WillItSnow, 0),
		ChanceOfSnow:  intOr(dto.ChanceOfSnow, 0),
		Condition:     conditionFromDTO(dto.Condition),
		UV:            floatOr(dto.UV, 0),
	}, nil
}

func astroFromDTO(dto *AstroDTO) Astro {
	if dto == nil {
		return Astro{}
	}
	return Astro{
		Sunrise:          strOr(dto.Sunrise, ""),
		Sunset:           strOr(dto.Sunset, ""),
		Moonrise:         strOr(dto.Moonrise, ""),
		Moonset:          strOr(dto.Moonset, ""),
		MoonPhase:        strOr(dto.MoonPhase, ""),
		MoonIllumination: intOr(dto.MoonIllumination, 0),
		IsMoonUp:         intOr(dto.IsMoonUp, 0),
		IsSunUp:          intOr(dto.IsSunUp, 0),
	}
}

func hourFromDTO(dto *HourDTO) (Hour, error) {
	if dto.Condition == nil {
		return Hour{}, fmt.Errorf("condition is mandatory for an hourly entry")
	}

	return Hour{
		TimeEpoch:    int64Or(dto.TimeEpoch, 0),
		Time:         strOr(dto.Time, ""),
		TempC:        floatOr(dto.TempC, 0),
		TempF:        floatOr(dto.TempF, 0),
		IsDay:        intOr(dto.IsDay, 0),
		Condition:    conditionFromDTO(dto.Condition),
		WindMph:      floatOr(dto.WindMph, 0),
		WindKph:      floatOr(dto.WindKph, 0),
		WindDegree:   intOr(dto.WindDegree, 0),
		WindDir:      strOr(dto.WindDir, ""),
		PressureMb:   floatOr(dto.PressureMb, 0),
		PressureIn:   floatOr(dto.PressureIn, 0),
		PrecipMm:     floatOr(dto.PrecipMm, 0),
		PrecipIn:     floatOr(dto.PrecipIn, 0),
		SnowCm:       floatOr(dto.SnowCm, 0),
		Humidity:     intOr(dto.Humidity, 0),
		Cloud:        intOr(dto.Cloud, 0),
		FeelsLikeC:   floatOr(dto.FeelsLikeC, 0),
		FeelsLikeF:   floatOr(dto.FeelsLikeF, 0),
		WindchillC:   floatOr(dto.WindchillC, 0),
		WindchillF:   floatOr(dto.WindchillF, 0),
		HeatIndexC:   floatOr(dto.HeatIndexC, 0),
		HeatIndexF:   floatOr(dto.HeatIndexF, 0),
		DewPointC:    floatOr(dto.DewPointC, 0),
		DewPointF:    floatOr(dto.DewPointF, 0),
		WillItRain:   intOr(dto.WillItRain, 0),
		ChanceOfRain: intOr(dto.ChanceOfRain, 0),
		WillItSnow:   intOr(dto.WillItSnow, 0),
		ChanceOfSnow: intOr(dto.ChanceOfSnow, 0),
		VisKm:        floatOr(dto.VisKm, 0),
		VisMiles:     floatOr(dto.VisMiles, 0),
		GustMph:      floatOr(dto.GustMph, 0),
		GustKph:      floatOr(dto.GustKph, 0),
		UV:           floatOr(dto.UV, 0),
	}, nil
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func int64Or(p *int64, def int64) int64 {
	if p != nil {
		return *p
	}
	return def
}

func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}
