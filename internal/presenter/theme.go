package presenter

import "strings"

// Theme is the decorative background hint derived from the condition text.
type Theme struct {
	Background string `json:"background"`
	Color      string `json:"color"`
	TextColor  string `json:"textColor"`
}

var (
	themeSunny  = Theme{Background: "sunny", Color: "light-beige", TextColor: "black"}
	themeCloudy = Theme{Background: "cloudy", Color: "pale-blue", TextColor: "black"}
	themeRainy  = Theme{Background: "rainy", Color: "dark-shade-blue", TextColor: "white"}
)

// ThemeForCondition classifies a condition text by keyword.
func ThemeForCondition(text string) Theme {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "sun"):
		return themeSunny
	case strings.Contains(t, "cloud") || strings.Contains(t, "wind"):
		return themeCloudy
	case strings.Contains(t, "rain") || strings.Contains(t, "drizzle") || strings.Contains(t, "snow"):
		return themeRainy
	default:
		return themeCloudy
	}
}
