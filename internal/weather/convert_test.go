package weather

import "testing"

func ptr[T any](v T) *T { return &v }

func validCurrentDTO() *CurrentDTO {
	return &CurrentDTO{
		LastUpdated: ptr("2024-05-01 11:45"),
		TempC:       ptr(21.3),
		TempF:       ptr(70.3),
		Condition:   &ConditionDTO{Text: ptr("Sunny"), Code: ptr(1000)},
	}
}

func validLocationDTO() *LocationDTO {
	return &LocationDTO{
		Name:    ptr("London"),
		Country: ptr("United Kingdom"),
		Lat:     ptr(51.52),
		Lon:     ptr(-0.11),
	}
}

func TestCurrentWeatherMandatoryFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CurrentWeatherDTO)
	}{
		{"missing current block", func(d *CurrentWeatherDTO) { d.Current = nil }},
		{"missing location block", func(d *CurrentWeatherDTO) { d.Location = nil }},
		{"missing temp_c", func(d *CurrentWeatherDTO) { d.Current.TempC = nil }},
		{"missing temp_f", func(d *CurrentWeatherDTO) { d.Current.TempF = nil }},
		{"missing last_updated", func(d *CurrentWeatherDTO) { d.Current.LastUpdated = nil }},
		{"missing condition", func(d *CurrentWeatherDTO) { d.Current.Condition = nil }},
		{"missing country", func(d *CurrentWeatherDTO) { d.Location.Country = nil }},
		{"missing lat", func(d *CurrentWeatherDTO) { d.Location.Lat = nil }},
		{"missing lon", func(d *CurrentWeatherDTO) { d.Location.Lon = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dto := &CurrentWeatherDTO{Current: validCurrentDTO(), Location: validLocationDTO()}
			tc.mutate(dto)
			if _, err := CurrentWeatherFromDTO(dto); err == nil {
				t.Fatalf("expected conversion error, got none")
			}
		})
	}
}

func TestCurrentWeatherOptionalDefaults(t *testing.T) {
	// Only mandatory fields present; everything else must default.
	dto := &CurrentWeatherDTO{Current: validCurrentDTO(), Location: validLocationDTO()}

	cw, err := CurrentWeatherFromDTO(dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cw.Current.TempC != 21.3 {
		t.Errorf("tempC = %v, want 21.3", cw.Current.TempC)
	}
	if cw.Current.Condition.Text != "Sunny" {
		t.Errorf("condition text = %q, want Sunny", cw.Current.Condition.Text)
	}
	if cw.Current.Humidity != 0 {
		t.Errorf("missing humidity should default to 0, got %d", cw.Current.Humidity)
	}
	if cw.Current.WindDir != "" {
		t.Errorf("missing wind direction should default to empty, got %q", cw.Current.WindDir)
	}
	if cw.Current.UV != 0 {
		t.Errorf("missing uv should default to 0, got %v", cw.Current.UV)
	}
	if cw.Location.Region != "" {
		t.Errorf("missing region should default to empty, got %q", cw.Location.Region)
	}
}

func TestForecastMandatoryBlocks(t *testing.T) {
	valid := func() *ForecastDTO {
		return &ForecastDTO{
			Current:  validCurrentDTO(),
			Location: validLocationDTO(),
			Forecast: &ForecastDataDTO{
				ForecastDay: []*ForecastDayDTO{{
					Date: ptr("2024-05-01"),
					Day:  &DayDTO{Condition: &ConditionDTO{Text: ptr("Sunny")}},
					Hour: []*HourDTO{{Condition: &ConditionDTO{Text: ptr("Clear")}}},
				}},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*ForecastDTO)
	}{
		{"missing forecast block", func(d *ForecastDTO) { d.Forecast = nil }},
		{"missing day block", func(d *ForecastDTO) { d.Forecast.ForecastDay[0].Day = nil }},
		{"missing day condition", func(d *ForecastDTO) { d.Forecast.ForecastDay[0].Day.Condition = nil }},
		{"missing hour condition", func(d *ForecastDTO) { d.Forecast.ForecastDay[0].Hour[0].Condition = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dto := valid()
			tc.mutate(dto)
			if _, err := ForecastFromDTO(dto); err == nil {
				t.Fatalf("expected conversion error, got none")
			}
		})
	}

	fc, err := ForecastFromDTO(valid())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.Days) != 1 {
		t.Fatalf("expected 1 forecast day, got %d", len(fc.Days))
	}
	if len(fc.Days[0].Hours) != 1 {
		t.Fatalf("expected 1 hourly entry, got %d", len(fc.Days[0].Hours))
	}
	// Missing astro block defaults to zero values instead of failing.
	if fc.Days[0].Astro.Sunrise != "" {
		t.Errorf("missing astro sunrise should default to empty, got %q", fc.Days[0].Astro.Sunrise)
	}
}

func TestSearchResultsDefaults(t *testing.T) {
	results := SearchResultsFromDTO([]SearchDTO{
		{Name: ptr("Paris"), Country: ptr("France"), Lat: ptr(48.87), Lon: ptr(2.33)},
		{}, // all fields absent
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "Paris" || results[0].Country != "France" {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if results[1].Name != "" || results[1].Lat != 0 {
		t.Errorf("absent fields should default, got %+v", results[1])
	}
}
