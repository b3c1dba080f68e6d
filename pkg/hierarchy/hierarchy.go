// Package hierarchy reconstructs document ancestry from the flat
// structural coordinates of a row: a slash-separated path of
// "label.value" segments and an integer depth.
package hierarchy

import (
	"strings"

	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/types"
)

// Path returns the ancestor path for a row, e.g. "part.1/heading.18".
// Segments appear in the fixed order schedule, part, chapter, heading,
// provision, sub, paragraph; absent coordinates are skipped. Root-level
// rows (no coordinates at all) yield "".
func Path(c types.Coordinates) string {
	segments := make([]string, 0, 7)
	appendSegment := func(label, value string) {
		if value != "" {
			segments = append(segments, label+"."+value)
		}
	}

	appendSegment("schedule", c.Schedule)
	appendSegment("part", c.Part)
	appendSegment("chapter", c.Chapter)
	appendSegment("heading", c.HeadingGroup)
	appendSegment("provision", c.Provision)
	appendSegment("sub", c.Sub)
	appendSegment("paragraph", c.Paragraph)

	return strings.Join(segments, "/")
}

// Depth counts how many structural coordinates the row carries. It is a
// pure count over {schedule, part, chapter, heading_group, provision,
// sub, paragraph}, independent of the path labels.
func Depth(c types.Coordinates) int {
	depth := 0
	for _, value := range []string{
		c.Schedule, c.Part, c.Chapter, c.HeadingGroup,
		c.Provision, c.Sub, c.Paragraph,
	} {
		if value != "" {
			depth++
		}
	}
	return depth
}
