// Package sectiontype maps raw record-type labels and source-markup element
// names onto the canonical section-type enumeration, and gates content rows
// from annotation bookkeeping rows.
package sectiontype

import (
	"strings"

	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/types"
)

// Mode selects how ambiguous markup elements map: Acts number their
// provisions as sections, Statutory Instruments as articles/regulations.
type Mode int

const (
	ModeSection Mode = iota // Acts: P1 -> section, P2 -> sub_section
	ModeArticle             // SIs:  P1 -> article, P2 -> sub_article
)

// labelTable maps trimmed raw record-type labels to canonical types.
var labelTable = map[string]types.SectionType{
	"title":         types.SectionTypeTitle,
	"part":          types.SectionTypePart,
	"chapter":       types.SectionTypeChapter,
	"heading":       types.SectionTypeHeading,
	"section":       types.SectionTypeSection,
	"sub-section":   types.SectionTypeSubSection,
	"sub_section":   types.SectionTypeSubSection,
	"article":       types.SectionTypeArticle,
	"sub-article":   types.SectionTypeSubArticle,
	"sub_article":   types.SectionTypeSubArticle,
	"paragraph":     types.SectionTypeParagraph,
	"sub-paragraph": types.SectionTypeSubParagraph,
	"sub_paragraph": types.SectionTypeSubParagraph,
	"schedule":      types.SectionTypeSchedule,
	"annex":         types.SectionTypeSchedule,
	"commencement":  types.SectionTypeCommencement,
	"table":         types.SectionTypeTable,
	"note":          types.SectionTypeNote,
	"signed":        types.SectionTypeSigned,
}

// compoundTable overrides specific compound labels. These are explicit
// entries, never derived by splitting on comma: "article,heading" is a
// heading row that happens to sit at article level.
var compoundTable = map[string]types.SectionType{
	"article,heading":  types.SectionTypeHeading,
	"section,heading":  types.SectionTypeHeading,
	"schedule,heading": types.SectionTypeHeading,
	"part,heading":     types.SectionTypeHeading,
}

// annotationHeadings are the bookkeeping heading rows that introduce blocks
// of annotation text rather than legal content.
var annotationHeadings = map[string]bool{
	"commencement,heading": true,
	"modification,heading": true,
	"extent,heading":       true,
	"editorial,heading":    true,
	"subordinate,heading":  true,
}

// Map returns the canonical section type for a raw record-type label, or
// SectionTypeUnknown if the label is unmapped.
func Map(raw string) types.SectionType {
	label := strings.TrimSpace(raw)
	if t, ok := compoundTable[label]; ok {
		return t
	}
	if t, ok := labelTable[label]; ok {
		return t
	}
	return types.SectionTypeUnknown
}

// IsContentRow reports whether a raw record-type label identifies legal
// content rather than annotation or amendment bookkeeping. It is the gate
// upstream of every other builder: rows failing it never receive citations,
// sort keys or hierarchy paths.
func IsContentRow(raw string) bool {
	label := strings.TrimSpace(raw)
	switch {
	case label == "":
		return false
	case strings.HasSuffix(label, ",content"):
		return false
	case strings.HasPrefix(label, "amendment,"):
		return false
	case strings.HasPrefix(label, "subordinate,"):
		return false
	case strings.HasPrefix(label, "editorial,"):
		return false
	case annotationHeadings[label]:
		return false
	}
	return true
}

// FromXMLElement maps a legislation.gov.uk markup element name to the
// canonical section type. Mode changes only the P1/P2 mapping. Unknown
// elements yield SectionTypeUnknown.
func FromXMLElement(element string, mode Mode) types.SectionType {
	switch element {
	case "Part":
		return types.SectionTypePart
	case "Chapter":
		return types.SectionTypeChapter
	case "Pblock":
		return types.SectionTypeHeading
	case "P1":
		if mode == ModeArticle {
			return types.SectionTypeArticle
		}
		return types.SectionTypeSection
	case "P2":
		if mode == ModeArticle {
			return types.SectionTypeSubArticle
		}
		return types.SectionTypeSubSection
	case "P3":
		return types.SectionTypeParagraph
	case "P4":
		return types.SectionTypeSubParagraph
	case "Schedule":
		return types.SectionTypeSchedule
	case "SignedSection":
		return types.SectionTypeSigned
	case "Tabular", "Figure":
		return types.SectionTypeTable
	default:
		return types.SectionTypeUnknown
	}
}
