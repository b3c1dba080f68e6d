package annotate

import (
	"testing"

	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/types"
)

func TestCodeType(t *testing.T) {
	tests := []struct {
		code string
		want types.AnnotationCodeType
	}{
		{"F1", types.AnnotationAmendment},
		{"F123", types.AnnotationAmendment},
		{"C42", types.AnnotationModification},
		{"I7", types.AnnotationCommencement},
		{"E2", types.AnnotationExtentEditorial},
		{"X1", types.AnnotationUnknown},
		{"f1", types.AnnotationUnknown},
		{"", types.AnnotationUnknown},
		{"1F", types.AnnotationUnknown},
	}

	for _, tt := range tests {
		if got := CodeType(tt.code); got != tt.want {
			t.Errorf("CodeType(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestBuildID(t *testing.T) {
	got := BuildID("UK_ukpga_1974_37", types.AnnotationAmendment, 12)
	want := "UK_ukpga_1974_37:amendment:12"
	if got != want {
		t.Errorf("BuildID = %q, want %q", got, want)
	}
}

func TestLawNameFromID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"amendment_suffix", "UK_ukpga_1974_37_F12", "UK_ukpga_1974_37"},
		{"modification_suffix", "UK_uksi_2002_2677_C3", "UK_uksi_2002_2677"},
		{"commencement_suffix", "UK_ukpga_1990_43_I1", "UK_ukpga_1990_43"},
		{"no_suffix", "UK_ukpga_1974_37", "UK_ukpga_1974_37"},
		{"acronym_and_suffix", "UK_ukpga_1974_37_HSWA", "UK_ukpga_1974_37"},
		{"typeless_base", "UK_1974_37_F2", "UK_1974_37"},
		{"implausibly_short", "UK_1", ""},
		{"wrong_shape", "EU_reg_2016_679", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LawNameFromID(tt.id); got != tt.want {
				t.Errorf("LawNameFromID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestAffectedLegacyIDs(t *testing.T) {
	t.Run("splits_and_trims", func(t *testing.T) {
		got := AffectedLegacyIDs("s.1, s.2 , s.3")
		want := []string{"s.1", "s.2", "s.3"}
		if len(got) != len(want) {
			t.Fatalf("AffectedLegacyIDs = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("AffectedLegacyIDs[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("drops_empties", func(t *testing.T) {
		got := AffectedLegacyIDs("s.1,, ,s.2")
		if len(got) != 2 {
			t.Fatalf("AffectedLegacyIDs = %v, want 2 entries", got)
		}
	})

	t.Run("nil_for_no_data", func(t *testing.T) {
		if got := AffectedLegacyIDs(""); got != nil {
			t.Errorf("AffectedLegacyIDs(\"\") = %v, want nil", got)
		}
		if got := AffectedLegacyIDs(" , ,"); got != nil {
			t.Errorf("AffectedLegacyIDs(\" , ,\") = %v, want nil", got)
		}
	})
}
