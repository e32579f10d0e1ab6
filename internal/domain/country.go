package domain

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CountryName resolves an ISO 3166-1 alpha-2 region code to its
// English name, falling back to the code itself.
func CountryName(region string) string {
	if region == "" {
		return "Unknown"
	}
	r, err := language.ParseRegion(region)
	if err != nil {
		return region
	}
	if name := display.English.Regions().Name(r); name != "" {
		return name
	}
	return region
}

// FlagEmoji builds the regional-indicator flag for a region code.
func FlagEmoji(region string) string {
	if len(region) != 2 {
		return "🌍"
	}
	region = strings.ToUpper(region)
	a, b := region[0], region[1]
	if a < 'A' || a > 'Z' || b < 'A' || b > 'Z' {
		return "🌍"
	}
	return string(rune(0x1F1E6+int(a-'A'))) + string(rune(0x1F1E6+int(b-'A')))
}
