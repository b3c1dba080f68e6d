// Package sortkey encodes UK provision numbers into zero-padded keys that
// sort correctly under plain byte comparison.
//
// UK drafting inserts new provisions between existing ones with lettered
// suffixes, and between a number and its first lettered suffix with
// Z-prefixed suffixes. The required order is
//
//	3 < 3ZA < 3ZB < 3A < 3AA < 3AB < 3B < 4
//
// which naive string ordering gets wrong. Each provision number is encoded
// as three dot-joined 3-digit segments: the leading digits, then up to two
// suffix segments where ZA..ZZ encode 1..26 and bare A..Z encode 10..260,
// so every Z-prefixed suffix sorts before every plain letter. The key is
// one-way metadata and is never parsed back into a provision number.
package sortkey

import (
	"fmt"
	"strings"

	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/types"
)

// EmptyKey is the sort key for rows with no sortable coordinate.
const EmptyKey = "000.000.000"

// EncodeProvision encodes a provision number as "DDD.DDD.DDD".
// Total: empty or unparseable input yields EmptyKey. Suffix letters
// beyond the second encoded segment are truncated, not an error.
func EncodeProvision(provision string) string {
	s := strings.ToUpper(strings.TrimSpace(provision))
	if s == "" {
		return EmptyKey
	}

	segments := [3]int{}

	// Leading digit run is the first segment, clamped so the key keeps
	// its fixed DDD.DDD.DDD width whatever the input.
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if segments[0] < 1000 {
			segments[0] = segments[0]*10 + int(s[i]-'0')
		}
		i++
	}
	if segments[0] > 999 {
		segments[0] = 999
	}

	// Up to two suffix segments from the remaining letters.
	segment := 1
	for i < len(s) && segment < 3 {
		ch := s[i]
		switch {
		case ch == 'Z' && i+1 < len(s) && isLetter(s[i+1]):
			// Z-prefixed suffix: ZA=1 .. ZZ=26, before all plain letters.
			segments[segment] = int(s[i+1]-'A') + 1
			segment++
			i += 2
		case isLetter(ch):
			// Plain letter: A=10 .. Z=260, alphabetical among themselves.
			segments[segment] = (int(ch-'A') + 1) * 10
			segment++
			i++
		default:
			i++
		}
	}

	return fmt.Sprintf("%03d.%03d.%03d", segments[0], segments[1], segments[2])
}

func isLetter(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

// Build composes the full sort key for a row: the encoded coordinate the
// section type sorts by, plus "~{extent}" so parallel territorial variants
// of the same provision order adjacently and deterministically instead of
// colliding. Purely structural types carry the constant empty key.
func Build(sectionType types.SectionType, c types.Coordinates) string {
	var key string
	switch sectionType {
	case types.SectionTypeSection, types.SectionTypeSubSection,
		types.SectionTypeArticle, types.SectionTypeSubArticle:
		key = EncodeProvision(c.Provision)
	case types.SectionTypeHeading:
		key = EncodeProvision(c.HeadingGroup)
	case types.SectionTypeParagraph, types.SectionTypeSubParagraph:
		number := c.Paragraph
		if number == "" {
			number = c.Provision
		}
		key = EncodeProvision(number)
	default:
		key = EmptyKey
	}

	if c.Extent != "" {
		return key + "~" + c.Extent
	}
	return key + "~"
}
