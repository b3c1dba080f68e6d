// Package lawname canonicalizes legacy UK law identifiers.
//
// Legacy identifiers follow the shape UK_{type}_{year}_{number}, where
// {type} is a lowercase legislation type code (ukpga, uksi, asp, ...).
// Older exports decorated the identifier with an acronym for the law
// ("HSWA", "EPA", "S&S", ...), in one of three positions:
//
//	UK_HSWA_ukpga_1974_37   acronym prefix
//	UK_ukpga_1974_37_HSWA   acronym suffix
//	UK_1974_37_HSWA         acronym after a typeless year_number pair
//
// Normalize strips the decoration; undecorated or unrecognized input
// passes through unchanged.
package lawname

import (
	"regexp"
	"strings"
)

// An acronym segment is one or more uppercase letters, digits, '&' or '-'.
// Type codes are strictly lowercase, so the two can never be confused.
var (
	prefixAcronym   = regexp.MustCompile(`^UK_[A-Z0-9&\-]+_([a-z]+_\d{4}_.+)$`)
	suffixAcronym   = regexp.MustCompile(`^(UK_[a-z]+_\d{4}_[^_]+)_[A-Z0-9&\-]+$`)
	embeddedAcronym = regexp.MustCompile(`^(UK_\d{4}_[^_]+)_[A-Z0-9&\-]+$`)
)

// Normalize returns the canonical form of a legacy law identifier.
// Total and idempotent: input that matches none of the decoration
// patterns is returned trimmed but otherwise unchanged.
func Normalize(name string) string {
	trimmed := strings.TrimSpace(name)

	if m := prefixAcronym.FindStringSubmatch(trimmed); m != nil {
		return "UK_" + m[1]
	}
	if m := suffixAcronym.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	if m := embeddedAcronym.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	return trimmed
}
