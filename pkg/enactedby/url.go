package enactedby

import (
	"regexp"
	"strings"
)

// legislationURL captures the type/year/number triple out of a
// legislation.gov.uk URL, e.g.
// https://www.legislation.gov.uk/ukpga/1974/37 or
// https://www.legislation.gov.uk/id/uksi/2019/419.
var legislationURL = regexp.MustCompile(`legislation\.gov\.uk/(?:id/)?([a-z]+)/(\d{4})/(\d+)`)

// enablingTypes are the legislation type codes that can enact subordinate
// legislation: primary Acts of the UK and devolved parliaments, plus
// retained EU instruments. Subordinate instruments (uksi, ssi, wsi, nisr)
// cannot enact other subordinate instruments.
var enablingTypes = map[string]bool{
	"ukpga": true, // UK Public General Act
	"ukla":  true, // UK Local Act
	"asp":   true, // Act of the Scottish Parliament
	"asc":   true, // Act of Senedd Cymru
	"anaw":  true, // Act of the National Assembly for Wales
	"mwa":   true, // Measure of the Welsh Assembly
	"apni":  true, // Act of the Northern Ireland Assembly (pre-1973)
	"nia":   true, // Act of the Northern Ireland Assembly
	"aosp":  true, // Act of the Old Scottish Parliament
	"aep":   true, // Act of the English Parliament
	"aip":   true, // Act of the Old Irish Parliament
	"apgb":  true, // Act of the Parliament of Great Britain
	"eur":   true, // retained EU regulation
	"eudr":  true, // retained EU directive
	"eudn":  true, // retained EU decision
}

// ParseLegislationURL extracts the "type/year/number" law id from a
// legislation.gov.uk URL. Returns "" if the URL does not carry one.
func ParseLegislationURL(url string) string {
	m := legislationURL.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return ""
	}
	return m[1] + "/" + m[2] + "/" + m[3]
}

// IsEnablingID reports whether a "type/year/number" law id belongs to a
// legislation type that can enact subordinate legislation.
func IsEnablingID(id string) bool {
	typeCode, _, found := strings.Cut(id, "/")
	if !found {
		return false
	}
	return enablingTypes[typeCode]
}
