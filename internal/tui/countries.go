package tui

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

// Country is one entry of the search page's country selector.
type Country struct {
	Region   string // ISO 3166-1 alpha-2
	Name     string
	Flag     string
	DialCode string // "+1", "+44", ...
}

// selectorRegions is the fixed set offered by the search page, roughly
// ordered by calling volume. The trace itself accepts any number; this
// list only seeds the dial-code prefix.
var selectorRegions = []string{
	"US", "GB", "IN", "CA", "AU", "DE", "FR", "ES", "IT", "NL",
	"BR", "MX", "AR", "CL", "CO", "JP", "KR", "CN", "SG", "HK",
	"RU", "UA", "PL", "TR", "SA", "AE", "IL", "EG", "NG", "KE",
	"ZA", "PK", "BD", "ID", "PH", "TH", "VN", "MY", "NZ", "SE",
}

// Countries is the static selector list. Dial codes come from the
// embedded numbering plan, names and flags from the region code.
var Countries = buildCountries()

func buildCountries() []Country {
	out := make([]Country, 0, len(selectorRegions))
	for _, region := range selectorRegions {
		code := phonenumbers.GetCountryCodeForRegion(region)
		if code == 0 {
			continue
		}
		out = append(out, Country{
			Region:   region,
			Name:     domain.CountryName(region),
			Flag:     domain.FlagEmoji(region),
			DialCode: fmt.Sprintf("+%d", code),
		})
	}
	return out
}
