// Package types defines the shared record shapes for the UK legislation
// normalization core: the canonical section-type enumeration, the structural
// coordinate bundle carried by every parsed row, and the LAT (legal article
// text) and annotation records the builders produce.
package types

// SectionType is the canonical classification of a legal-text row.
// The zero value ("") means the raw label was unrecognized and the row
// should be dropped by the caller.
type SectionType string

const (
	SectionTypeUnknown      SectionType = ""
	SectionTypeTitle        SectionType = "title"
	SectionTypePart         SectionType = "part"
	SectionTypeChapter      SectionType = "chapter"
	SectionTypeHeading      SectionType = "heading"
	SectionTypeSection      SectionType = "section"
	SectionTypeSubSection   SectionType = "sub_section"
	SectionTypeArticle      SectionType = "article"
	SectionTypeSubArticle   SectionType = "sub_article"
	SectionTypeParagraph    SectionType = "paragraph"
	SectionTypeSubParagraph SectionType = "sub_paragraph"
	SectionTypeSchedule     SectionType = "schedule"
	SectionTypeCommencement SectionType = "commencement"
	SectionTypeTable        SectionType = "table"
	SectionTypeNote         SectionType = "note"
	SectionTypeSigned       SectionType = "signed"
)

// IsKnown reports whether t is a member of the canonical enumeration.
func (t SectionType) IsKnown() bool {
	return t != SectionTypeUnknown
}

// Coordinates is the read-only structural coordinate bundle for one row.
// Empty string means the field is absent; no builder ever mutates it.
type Coordinates struct {
	Schedule     string `json:"schedule,omitempty"`
	Part         string `json:"part,omitempty"`
	Chapter      string `json:"chapter,omitempty"`
	HeadingGroup string `json:"heading_group,omitempty"`
	Provision    string `json:"provision,omitempty"`
	Sub          string `json:"sub,omitempty"`
	Paragraph    string `json:"paragraph,omitempty"`
	SubParagraph string `json:"sub_paragraph,omitempty"`

	// Position is the row's ordinal fallback, used whenever the
	// type-specific coordinate is absent.
	Position int `json:"position"`

	// Class distinguishes instrument classes; "Regulation" switches
	// article citations from "art." to "reg.".
	Class string `json:"class,omitempty"`

	// Extent is the territorial extent code, if the row carries one.
	Extent string `json:"extent,omitempty"`
}

// LATRow is a fully normalized legal-article-text record, ready for the
// persistence collaborator.
type LATRow struct {
	LawName       string      `json:"law_name"`
	SectionType   SectionType `json:"section_type"`
	Citation      string      `json:"citation"`
	SortKey       string      `json:"sort_key"`
	HierarchyPath string      `json:"hierarchy_path,omitempty"`
	Depth         int         `json:"depth"`
	ExtentCode    string      `json:"extent_code,omitempty"`
	Text          string      `json:"text,omitempty"`
	Coordinates   Coordinates `json:"coordinates"`
}

// AnnotationCodeType classifies an annotation footnote code.
// The zero value ("") means the code prefix was unrecognized.
type AnnotationCodeType string

const (
	AnnotationUnknown         AnnotationCodeType = ""
	AnnotationAmendment       AnnotationCodeType = "amendment"
	AnnotationModification    AnnotationCodeType = "modification"
	AnnotationCommencement    AnnotationCodeType = "commencement"
	AnnotationExtentEditorial AnnotationCodeType = "extent_editorial"
)

// Annotation is one amendment/modification/commencement/extent annotation,
// built once per parsed row and immutable thereafter. ID is the synthetic
// composite key "{law_name}:{code_type}:{sequence}"; sequence numbers are
// assigned per (law_name, code_type) pair by the caller.
type Annotation struct {
	ID               string             `json:"id"`
	LawName          string             `json:"law_name"`
	Code             string             `json:"code"`
	CodeType         AnnotationCodeType `json:"code_type"`
	Text             string             `json:"text,omitempty"`
	AffectedSections []string           `json:"affected_sections,omitempty"`
}
