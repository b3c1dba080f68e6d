package sortkey

import (
	"sort"
	"testing"

	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/types"
)

func TestEncodeProvision(t *testing.T) {
	tests := []struct {
		provision string
		want      string
	}{
		{"", "000.000.000"},
		{"   ", "000.000.000"},
		{"3", "003.000.000"},
		{"25", "025.000.000"},
		{"104", "104.000.000"},
		{"3ZA", "003.001.000"},
		{"3ZB", "003.002.000"},
		{"3ZZ", "003.026.000"},
		{"3A", "003.010.000"},
		{"3B", "003.020.000"},
		{"3AA", "003.010.010"},
		{"3AB", "003.010.020"},
		{"25A", "025.010.000"},
		{"3AZA", "003.010.001"},
		{"3ZAA", "003.001.010"},
		{"3za", "003.001.000"},
		{"3AAA", "003.010.010"}, // third suffix level truncates
		{"A", "000.010.000"},
		{"3-1", "003.000.000"},
		{"12345", "999.000.000"},
	}

	for _, tt := range tests {
		if got := EncodeProvision(tt.provision); got != tt.want {
			t.Errorf("EncodeProvision(%q) = %q, want %q", tt.provision, got, tt.want)
		}
	}
}

// TestEncodeProvisionOrdering is the core property: encoded keys must sort
// in UK legal-drafting order under plain string comparison.
func TestEncodeProvisionOrdering(t *testing.T) {
	provisions := []string{"3", "3ZA", "3ZB", "3A", "3AA", "3AB", "3B", "4"}

	encoded := make([]string, len(provisions))
	for i, p := range provisions {
		encoded[i] = EncodeProvision(p)
	}

	shuffled := make([]string, len(encoded))
	copy(shuffled, encoded)
	sort.Strings(shuffled)

	for i := range encoded {
		if shuffled[i] != encoded[i] {
			t.Fatalf("sorted keys diverge at %d: got %v, want %v (provisions %v)",
				i, shuffled, encoded, provisions)
		}
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		sectionType types.SectionType
		coords      types.Coordinates
		want        string
	}{
		{
			name:        "section_by_provision",
			sectionType: types.SectionTypeSection,
			coords:      types.Coordinates{Provision: "25A"},
			want:        "025.010.000~",
		},
		{
			name:        "article_by_provision",
			sectionType: types.SectionTypeArticle,
			coords:      types.Coordinates{Provision: "2"},
			want:        "002.000.000~",
		},
		{
			name:        "heading_by_heading_group",
			sectionType: types.SectionTypeHeading,
			coords:      types.Coordinates{HeadingGroup: "18"},
			want:        "018.000.000~",
		},
		{
			name:        "paragraph_prefers_paragraph",
			sectionType: types.SectionTypeParagraph,
			coords:      types.Coordinates{Paragraph: "5", Provision: "9"},
			want:        "005.000.000~",
		},
		{
			name:        "paragraph_falls_back_to_provision",
			sectionType: types.SectionTypeParagraph,
			coords:      types.Coordinates{Provision: "9"},
			want:        "009.000.000~",
		},
		{
			name:        "structural_type_constant",
			sectionType: types.SectionTypePart,
			coords:      types.Coordinates{Part: "4"},
			want:        "000.000.000~",
		},
		{
			name:        "extent_tiebreak",
			sectionType: types.SectionTypeSection,
			coords:      types.Coordinates{Provision: "1", Extent: "E+W"},
			want:        "001.000.000~E+W",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.sectionType, tt.coords)
			if got != tt.want {
				t.Errorf("Build(%q, %+v) = %q, want %q", tt.sectionType, tt.coords, got, tt.want)
			}
		})
	}
}

// Parallel provisions must sort adjacently but deterministically by extent.
func TestBuildParallelProvisionsDistinct(t *testing.T) {
	england := Build(types.SectionTypeSection, types.Coordinates{Provision: "1", Extent: "E+W"})
	scotland := Build(types.SectionTypeSection, types.Coordinates{Provision: "1", Extent: "S"})
	if england == scotland {
		t.Fatalf("parallel provisions collided: %q", england)
	}
	if england >= scotland {
		t.Errorf("expected %q < %q under string ordering", england, scotland)
	}
}

func FuzzEncodeProvision(f *testing.F) {
	seeds := []string{"", "3", "3ZA", "3A", "3AA", "25B", "104", "A", "Z", "ZZ", "3Z", "3-1", "³", "3ZAB4"}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		key := EncodeProvision(input)
		if len(key) != 11 {
			t.Fatalf("EncodeProvision(%q) = %q, want 11-byte DDD.DDD.DDD key", input, key)
		}
		if key[3] != '.' || key[7] != '.' {
			t.Fatalf("EncodeProvision(%q) = %q, malformed separators", input, key)
		}
	})
}
