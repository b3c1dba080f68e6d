// Package extent maps free-text territorial extent descriptions onto the
// compact E/W/S/NI coding used across the register, and detects provisions
// that exist in parallel territorial variants.
package extent

import "strings"

// combination maps a free-text description to its compact code. Multi-nation
// combinations are checked before single nations so that e.g. "England and
// Wales" never falls through to the bare "England" rule.
type combination struct {
	text string
	code string
}

var combinations = []combination{
	{"England and Wales and Scotland and Northern Ireland", "E+W+S+NI"},
	{"England, Wales, Scotland and Northern Ireland", "E+W+S+NI"},
	{"England and Wales and Scotland", "E+W+S"},
	{"England, Wales and Scotland", "E+W+S"},
	{"England and Wales and Northern Ireland", "E+W+NI"},
	{"England and Scotland", "E+S"},
	{"Wales and Scotland", "W+S"},
	{"Scotland and Northern Ireland", "S+NI"},
	{"England and Wales", "E+W"},
	{"England", "E"},
	{"Wales", "W"},
	{"Scotland", "S"},
	{"Northern Ireland", "NI"},
}

// Code maps a free-text territorial description to a compact extent code.
// Descriptions beginning "Great Britain"/"GB" cover E+W+S; "United
// Kingdom"/"UK" covers all four nations. Anything unrecognized passes
// through unchanged, and empty input yields "".
func Code(region string) string {
	text := strings.TrimSpace(region)
	if text == "" {
		return ""
	}

	for _, c := range combinations {
		if strings.EqualFold(text, c.text) {
			return c.code
		}
	}

	switch {
	case strings.HasPrefix(text, "Great Britain"), strings.HasPrefix(text, "GB"):
		return "E+W+S"
	case strings.HasPrefix(text, "United Kingdom"), strings.HasPrefix(text, "UK"):
		return "E+W+S+NI"
	}

	return text
}

// NormalizeXML normalizes the markup spelling of an extent attribute:
// legislation.gov.uk writes Northern Ireland as "N.I." inside
// RestrictExtent values ("E+W+N.I."). Other segments are untouched.
// Empty input yields "".
func NormalizeXML(s string) string {
	text := strings.TrimSpace(s)
	if text == "" {
		return ""
	}
	return strings.ReplaceAll(text, "N.I.", "NI")
}

// ProvisionExtent pairs a provision number with the extent it was seen
// under, as supplied by the ingestion collaborator.
type ProvisionExtent struct {
	Provision string
	Extent    string
}

// DetectParallel returns the set of provisions that appear under more than
// one distinct extent. These are parallel territorial variants: they need
// extent-qualified sort keys or their ordering collides. Pairs missing
// either field are ignored.
func DetectParallel(pairs []ProvisionExtent) map[string]bool {
	extentsSeen := make(map[string]map[string]bool)
	for _, pair := range pairs {
		if pair.Provision == "" || pair.Extent == "" {
			continue
		}
		if extentsSeen[pair.Provision] == nil {
			extentsSeen[pair.Provision] = make(map[string]bool)
		}
		extentsSeen[pair.Provision][pair.Extent] = true
	}

	parallel := make(map[string]bool)
	for provision, extents := range extentsSeen {
		if len(extents) > 1 {
			parallel[provision] = true
		}
	}
	return parallel
}
