// Package lat builds normalized LAT (legal article text) and annotation
// records from the raw rows supplied by the CSV/XML ingestion layer. It
// composes the pure transforms (section typing, extent coding, citation,
// sort key, hierarchy) and performs no I/O itself: persistence and
// lookups belong to the surrounding collaborators.
package lat

import (
	"strings"

	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/annotate"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/cite"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/extent"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/hierarchy"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/lawname"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/sectiontype"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/sortkey"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/types"
)

// Row is one raw ingest row. Field names follow the export columns:
// RecordType is "Record_Type", Provision the merged "Section||Regulation"
// field, Region the territorial extent text, Changes the comma-separated
// footnote codes, Flow the schedule marker ("pre"/"main"/"post"/"signed"
// for main-body rows, a number for schedule rows).
type Row struct {
	RecordType   string `json:"record_type"`
	Provision    string `json:"provision"`
	Region       string `json:"region"`
	Changes      string `json:"changes"`
	Flow         string `json:"flow"`
	Part         string `json:"part"`
	Chapter      string `json:"chapter"`
	HeadingGroup string `json:"heading_group"`
	Sub          string `json:"sub"`
	Paragraph    string `json:"paragraph"`
	SubParagraph string `json:"sub_paragraph"`
	Class        string `json:"class"`
	Position     int    `json:"position"`
	Text         string `json:"text"`
}

// Builder normalizes rows for one law. Parallel holds the provisions
// known to have parallel territorial variants (extent.DetectParallel);
// only those receive an extent-qualified sort key, so ordinary rows keep
// identical keys across reissues of the same extent.
type Builder struct {
	LawName  string
	Parallel map[string]bool
}

// NewBuilder creates a builder for one law, normalizing the law name.
func NewBuilder(name string, parallel map[string]bool) *Builder {
	return &Builder{LawName: lawname.Normalize(name), Parallel: parallel}
}

// Build normalizes one row. The second return is false for rows the
// caller must drop: annotation bookkeeping rows and rows whose record
// type is unmapped.
func (b *Builder) Build(row Row) (types.LATRow, bool) {
	if !sectiontype.IsContentRow(row.RecordType) {
		return types.LATRow{}, false
	}
	sectionType := sectiontype.Map(row.RecordType)
	if !sectionType.IsKnown() {
		return types.LATRow{}, false
	}

	coords := b.coordinates(row, sectionType)

	return types.LATRow{
		LawName:       b.LawName,
		SectionType:   sectionType,
		Citation:      cite.Build(sectionType, coords),
		SortKey:       sortkey.Build(sectionType, coords),
		HierarchyPath: hierarchy.Path(coords),
		Depth:         hierarchy.Depth(coords),
		ExtentCode:    extent.Code(row.Region),
		Text:          row.Text,
		Coordinates:   coords,
	}, true
}

// coordinates assembles the coordinate bundle for one row.
func (b *Builder) coordinates(row Row, sectionType types.SectionType) types.Coordinates {
	coords := types.Coordinates{
		Schedule:     ScheduleFromFlow(row.Flow),
		Part:         row.Part,
		Chapter:      row.Chapter,
		HeadingGroup: row.HeadingGroup,
		Provision:    strings.TrimSpace(row.Provision),
		Sub:          row.Sub,
		Paragraph:    row.Paragraph,
		SubParagraph: row.SubParagraph,
		Position:     row.Position,
		Class:        row.Class,
	}

	// Schedule rows carry their number in the flow column, not the
	// provision column.
	if sectionType == types.SectionTypeSchedule && coords.Schedule == "" {
		coords.Schedule = coords.Provision
	}

	if b.Parallel[coords.Provision] {
		coords.Extent = extent.Code(row.Region)
	}
	return coords
}

// ScheduleFromFlow interprets the flow column: the reserved main-body
// markers are not schedules, a numeric value is the schedule number, and
// anything else is treated as main body.
func ScheduleFromFlow(flow string) string {
	value := strings.TrimSpace(flow)
	switch value {
	case "", "pre", "main", "post", "signed":
		return ""
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return ""
		}
	}
	return value
}

// SequenceCounter assigns annotation sequence numbers per
// (law name, code type) pair. The zero value is not usable; make one
// per ingest batch with make(SequenceCounter).
type SequenceCounter map[string]int

// Next returns the next sequence number for the pair, starting at 1.
func (c SequenceCounter) Next(lawName string, codeType types.AnnotationCodeType) int {
	key := lawName + ":" + string(codeType)
	c[key]++
	return c[key]
}

// Annotations builds annotation records from a row's Changes codes.
// Codes with unrecognized prefixes are dropped. The affected argument is
// the row's comma-separated affected-section list, shared by every code
// on the row.
func (b *Builder) Annotations(row Row, affected string, seq SequenceCounter) []types.Annotation {
	var annotations []types.Annotation
	for _, code := range strings.Split(row.Changes, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		codeType := annotate.CodeType(code)
		if codeType == types.AnnotationUnknown {
			continue
		}
		annotations = append(annotations, types.Annotation{
			ID:               annotate.BuildID(b.LawName, codeType, seq.Next(b.LawName, codeType)),
			LawName:          b.LawName,
			Code:             code,
			CodeType:         codeType,
			Text:             row.Text,
			AffectedSections: annotate.AffectedLegacyIDs(affected),
		})
	}
	return annotations
}
