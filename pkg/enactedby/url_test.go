package enactedby

import "testing"

func TestParseLegislationURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.legislation.gov.uk/ukpga/1974/37", "ukpga/1974/37"},
		{"https://www.legislation.gov.uk/id/ukpga/1974/37", "ukpga/1974/37"},
		{"https://www.legislation.gov.uk/uksi/2019/419/made", "uksi/2019/419"},
		{"http://www.legislation.gov.uk/eur/2009/1221/contents", "eur/2009/1221"},
		{"https://www.legislation.gov.uk/asp/2014/3", "asp/2014/3"},
		{"  https://www.legislation.gov.uk/ukpga/1990/43  ", "ukpga/1990/43"},
		{"https://example.com/ukpga/1974/37", ""},
		{"https://www.legislation.gov.uk/ukpga/74/37", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ParseLegislationURL(tt.url); got != tt.want {
			t.Errorf("ParseLegislationURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestIsEnablingID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"ukpga/1974/37", true},
		{"asp/2014/3", true},
		{"anaw/2016/3", true},
		{"nia/2011/25", true},
		{"eur/2009/1221", true},
		{"eudr/2008/98", true},
		{"uksi/2019/419", false},
		{"ssi/2011/139", false},
		{"wsi/2018/806", false},
		{"nisr/2016/51", false},
		{"bogus", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsEnablingID(tt.id); got != tt.want {
			t.Errorf("IsEnablingID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
