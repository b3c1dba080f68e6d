package hierarchy

import (
	"testing"

	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/types"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name   string
		coords types.Coordinates
		want   string
	}{
		{
			name:   "skips_absent_fields",
			coords: types.Coordinates{Part: "1", HeadingGroup: "18"},
			want:   "part.1/heading.18",
		},
		{
			name: "full_depth",
			coords: types.Coordinates{
				Schedule: "2", Part: "1", Chapter: "3", HeadingGroup: "7",
				Provision: "25A", Sub: "1", Paragraph: "b",
			},
			want: "schedule.2/part.1/chapter.3/heading.7/provision.25A/sub.1/paragraph.b",
		},
		{
			name:   "provision_only",
			coords: types.Coordinates{Provision: "4"},
			want:   "provision.4",
		},
		{
			name:   "root_level",
			coords: types.Coordinates{},
			want:   "",
		},
		{
			name:   "position_does_not_contribute",
			coords: types.Coordinates{Position: 42},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Path(tt.coords); got != tt.want {
				t.Errorf("Path(%+v) = %q, want %q", tt.coords, got, tt.want)
			}
		})
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		name   string
		coords types.Coordinates
		want   int
	}{
		{"empty", types.Coordinates{}, 0},
		{"one_field", types.Coordinates{Provision: "1"}, 1},
		{"two_fields", types.Coordinates{Part: "1", HeadingGroup: "18"}, 2},
		{
			"all_fields",
			types.Coordinates{
				Schedule: "2", Part: "1", Chapter: "3", HeadingGroup: "7",
				Provision: "25A", Sub: "1", Paragraph: "b",
			},
			7,
		},
		{"sub_paragraph_not_counted", types.Coordinates{SubParagraph: "i"}, 0},
		{"extent_not_counted", types.Coordinates{Extent: "E+W"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Depth(tt.coords); got != tt.want {
				t.Errorf("Depth(%+v) = %d, want %d", tt.coords, got, tt.want)
			}
		})
	}
}
