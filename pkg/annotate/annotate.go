// Package annotate classifies amendment annotation footnote codes and
// builds the synthetic identifiers that key annotation records.
//
// legislation.gov.uk footnote codes carry their kind in the first letter:
// F-codes are textual amendments, C-codes modifications, I-codes
// commencement information and E-codes extent/editorial information.
package annotate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/lawname"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/types"
)

// CodeType classifies a footnote code by its first character.
// Unrecognized prefixes (or empty codes) yield AnnotationUnknown.
func CodeType(code string) types.AnnotationCodeType {
	if code == "" {
		return types.AnnotationUnknown
	}
	switch code[0] {
	case 'F':
		return types.AnnotationAmendment
	case 'C':
		return types.AnnotationModification
	case 'I':
		return types.AnnotationCommencement
	case 'E':
		return types.AnnotationExtentEditorial
	default:
		return types.AnnotationUnknown
	}
}

// BuildID returns the synthetic composite key for one annotation.
// Sequence numbers are assigned per (law name, code type) pair by the
// caller; this function only formats the key.
func BuildID(lawName string, codeType types.AnnotationCodeType, sequence int) string {
	return fmt.Sprintf("%s:%s:%d", lawName, codeType, sequence)
}

var (
	// Trailing annotation suffix on a decorated id, e.g. "_F12".
	annotationSuffix = regexp.MustCompile(`_[FCIE]\d+$`)

	// Base identifier shapes after normalization.
	typedBase    = regexp.MustCompile(`^UK_[a-z]+_\d{4}_\w+$`)
	untypedBase  = regexp.MustCompile(`^UK_\d{4}_\w+$`)
	minimumIDLen = len("UK_1_1")
)

// LawNameFromID derives the canonical law name from an annotation-bearing
// identifier by stripping the trailing "_F12"-style suffix and
// normalizing what remains. Returns "" when the remainder is implausibly
// short or does not match the base UK_{type}_{year}_{number} shape.
func LawNameFromID(id string) string {
	base := annotationSuffix.ReplaceAllString(strings.TrimSpace(id), "")
	if len(base) < minimumIDLen {
		return ""
	}
	name := lawname.Normalize(base)
	if !typedBase.MatchString(name) && !untypedBase.MatchString(name) {
		return ""
	}
	return name
}

// AffectedLegacyIDs splits a comma-separated list of affected section
// identifiers, trimming each and dropping empties. A nil result means "no
// data", which callers distinguish from an explicitly empty list.
func AffectedLegacyIDs(text string) []string {
	var ids []string
	for _, part := range strings.Split(text, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
