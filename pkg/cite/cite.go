// Package cite builds human-readable citation strings for normalized
// legal-text rows, following UK drafting abbreviations: s.25A(1) for
// sections, reg.2(1)(b) for regulations, art. for other instruments,
// sch./pt./ch./h. for structural rows and para. for schedule paragraphs.
package cite

import (
	"fmt"
	"strconv"

	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/types"
)

// Build returns the citation for a row. Every row gets a non-empty
// citation: when the type-specific coordinate is absent the row's ordinal
// position stands in. Rows inside a schedule are prefixed "sch.{n}."
// whatever their type; schedule scoping is orthogonal to section type.
func Build(sectionType types.SectionType, c types.Coordinates) string {
	citation := bareCitation(sectionType, c)
	if c.Schedule != "" && sectionType != types.SectionTypeSchedule {
		return "sch." + c.Schedule + "." + citation
	}
	return citation
}

func bareCitation(sectionType types.SectionType, c types.Coordinates) string {
	switch sectionType {
	case types.SectionTypeSection, types.SectionTypeSubSection:
		return "s." + orPosition(c.Provision, c) + subQualifiers(c)

	case types.SectionTypeArticle, types.SectionTypeSubArticle:
		prefix := "art."
		if c.Class == "Regulation" {
			prefix = "reg."
		}
		return prefix + orPosition(c.Provision, c) + subQualifiers(c)

	case types.SectionTypeSchedule:
		return "sch." + orPosition(c.Schedule, c)

	case types.SectionTypePart:
		return "pt." + orPosition(c.Part, c)

	case types.SectionTypeChapter:
		return "ch." + orPosition(c.Chapter, c)

	case types.SectionTypeHeading:
		return "h." + orPosition(c.HeadingGroup, c)

	case types.SectionTypeParagraph, types.SectionTypeSubParagraph:
		number := c.Paragraph
		if number == "" {
			number = c.Provision
		}
		citation := "para." + orPosition(number, c)
		if c.SubParagraph != "" {
			citation += "(" + c.SubParagraph + ")"
		}
		return citation

	default:
		// title, signed, commencement, table, note and anything
		// unrecognized cite by type and position alone.
		return fmt.Sprintf("%s.%d", sectionType, c.Position)
	}
}

// subQualifiers appends (sub)(paragraph)(sub_paragraph) in that order.
func subQualifiers(c types.Coordinates) string {
	qualifiers := ""
	if c.Sub != "" {
		qualifiers += "(" + c.Sub + ")"
	}
	if c.Paragraph != "" {
		qualifiers += "(" + c.Paragraph + ")"
	}
	if c.SubParagraph != "" {
		qualifiers += "(" + c.SubParagraph + ")"
	}
	return qualifiers
}

// orPosition falls back to the row position when the coordinate is absent.
func orPosition(value string, c types.Coordinates) string {
	if value != "" {
		return value
	}
	return strconv.Itoa(c.Position)
}
