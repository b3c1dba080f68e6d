// Package actors is a declarative library of regex patterns identifying
// duty-holders and other actors in UK legal text. Each entry pairs a
// classification label with one or more alternatives; compilation wraps
// every alternative in boundary guards so a match can never start or end
// mid-word. The tables are process-wide constants, built once and never
// mutated.
package actors

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Entry is one label with its compiled, boundary-guarded pattern.
type Entry struct {
	Label   string
	Pattern *regexp.Regexp
}

// rawEntry is the declarative source form: a label with its alternatives.
type rawEntry struct {
	label        string
	alternatives []string
}

// governmentActors are duty-holders on the government side. More specific
// labels share a prefix with generic catch-alls ("Gvt: Authority: Local"
// vs "Gvt: Authority"); descending-label ordering in DutyholderLibrary
// tries the specific ones first.
var governmentActors = []rawEntry{
	{"Gvt: Crown", []string{
		"[Hh]er [Mm]ajesty",
		"[Hh]is [Mm]ajesty",
		"[Tt]he Crown",
	}},
	{"Gvt: Authority", []string{
		"[Aa]uthority",
		"[Aa]uthorities",
	}},
	{"Gvt: Authority: Local", []string{
		"[Ll]ocal [Aa]uthority",
		"[Ll]ocal [Aa]uthorities",
		"[Cc]ounty [Cc]ouncil",
		"[Dd]istrict [Cc]ouncil",
	}},
	{"Gvt: Authority: Public", []string{
		"[Pp]ublic [Aa]uthority",
		"[Pp]ublic [Aa]uthorities",
		"[Pp]ublic [Bb]ody",
		"[Pp]ublic [Bb]odies",
	}},
	{"Gvt: Authority: Enforcement", []string{
		"[Ee]nforcing [Aa]uthority",
		"[Ee]nforcement [Aa]uthority",
		"[Rr]egulator",
		"[Ii]nspector",
	}},
	{"Gvt: Authority: Harbour", []string{
		"[Hh]arbour [Aa]uthority",
		"[Pp]ort [Aa]uthority",
	}},
	{"Gvt: Minister", []string{
		"[Ss]ecretary of [Ss]tate",
		"[Mm]inister",
		"[Ll]ord [Cc]hancellor",
		"[Tt]reasury",
	}},
	{"Gvt: Ministry:", []string{
		"[Mm]inistry of [Dd]efence",
		"[Mm]inistry of [Jj]ustice",
		"[Hh]ome [Oo]ffice",
	}},
	{"Gvt: Agency:", []string{
		"[Ee]nvironment [Aa]gency",
		"Health and Safety Executive",
		"Office for Environmental Protection",
		"Natural Resources Body for Wales",
		"Scottish Environment Protection Agency",
		"Food Standards Agency",
		"Office of Rail and Road",
	}},
	{"Gvt: Devolved Admin:", []string{
		"[Ww]elsh [Mm]inisters",
		"[Ss]cottish [Mm]inisters",
		"[Nn]orthern [Ii]reland [Dd]epartment",
		"[Dd]epartment of the [Ee]nvironment",
	}},
	{"Gvt: Armed Forces", []string{
		"[Aa]rmed [Ff]orces",
		"[Hh]er [Mm]ajesty's [Ff]orces",
		"[Hh]is [Mm]ajesty's [Ff]orces",
		"[Vv]isiting [Ff]orce",
	}},
	{"Gvt: Judiciary", []string{
		"[Cc]ourt",
		"[Tt]ribunal",
		"[Jj]ustice of the [Pp]eace",
		"[Ss]heriff",
	}},
	{"Gvt: Officer", []string{
		"[Cc]onstable",
		"[Aa]uthorised [Oo]fficer",
		"[Cc]oroner",
	}},
}

// governedActors are duty-holders on the governed side: organisations,
// individuals by role, supply-chain roles, specialists and the public.
var governedActors = []rawEntry{
	{"Org: Employer", []string{
		"[Ee]mployer",
		"[Ee]mployers",
	}},
	{"Org: Company", []string{
		"[Cc]ompany",
		"[Cc]ompanies",
		"[Bb]ody [Cc]orporate",
		"[Bb]odies [Cc]orporate",
		"[Uu]ndertaking",
	}},
	{"Org: Partnership", []string{
		"[Pp]artnership",
		"[Uu]nincorporated [Aa]ssociation",
	}},
	{"Org: Occupier", []string{
		"[Oo]ccupier",
		"[Pp]erson in [Cc]ontrol of [Pp]remises",
	}},
	{"Org: Owner", []string{
		"[Oo]wner",
		"[Ll]andlord",
	}},
	{"Org: Operator", []string{
		"[Oo]perator",
		"[Dd]uty [Hh]older",
		"[Ll]icence [Hh]older",
		"[Ll]icensee",
	}},
	{"Ind: Employee", []string{
		"[Ee]mployee",
		"[Ee]mployees",
	}},
	{"Ind: Worker", []string{
		"[Ww]orker",
		"[Ww]orkers",
		"[Pp]erson at [Ww]ork",
	}},
	{"Ind: Self-employed", []string{
		"[Ss]elf-employed [Pp]erson",
		"[Ss]elf-employed",
	}},
	{"Ind: Holder", []string{
		"[Hh]older",
		"[Pp]ermit [Hh]older",
	}},
	{"Ind: Person", []string{
		"[Pp]erson",
		"[Pp]ersons",
		"[Ii]ndividual",
	}},
	{"Ind: Responsible Person", []string{
		"[Rr]esponsible [Pp]erson",
		"[Aa]ppointed [Pp]erson",
		"[Cc]ompetent [Pp]erson",
	}},
	{"SC: Agent", []string{
		"[Aa]gent",
		"[Bb]roker",
		"[Dd]ealer",
	}},
	{"SC: Manufacturer", []string{
		"[Mm]anufacturer",
		"[Pp]roducer",
	}},
	{"SC: Supplier", []string{
		"[Ss]upplier",
		"[Pp]erson who [Ss]upplies",
	}},
	{"SC: Importer", []string{
		"[Ii]mporter",
		"[Pp]erson who [Ii]mports",
	}},
	{"SC: Exporter", []string{
		"[Ee]xporter",
		"[Pp]erson who [Ee]xports",
	}},
	{"SC: Distributor", []string{
		"[Dd]istributor",
		"[Rr]etailer",
		"[Ss]eller",
	}},
	{"SC: Installer", []string{
		"[Ii]nstaller",
		"[Ee]rector",
	}},
	{"SC: Carrier", []string{
		"[Cc]arrier",
		"[Cc]onsignor",
		"[Cc]onsignee",
		"[Tt]ransporter",
	}},
	{"Spc: Advisor", []string{
		"[Aa]dvis[eo]r",
		"[Cc]onsultant",
	}},
	{"Spc: Assessor", []string{
		"[Aa]ssessor",
		"[Aa]pproved [Bb]ody",
		"[Cc]onformity [Aa]ssessment [Bb]ody",
	}},
	{"Spc: OH Practitioner", []string{
		"[Mm]edical [Pp]ractitioner",
		"[Oo]ccupational [Hh]ealth",
		"[Nn]urse",
	}},
	{"Public", []string{
		"[Pp]ublic",
		"[Mm]ember of the [Pp]ublic",
		"[Ee]veryone",
		"[Cc]itizen",
	}},
}

var (
	libraryOnce sync.Once
	library     []Entry
)

// DutyholderLibrary returns the full compiled actor library, ordered by
// descending label so specific labels sharing a prefix with a generic
// catch-all ("Gvt: Authority: Local" before "Gvt: Authority") are tried
// first. The slice is built once; callers must not mutate it.
func DutyholderLibrary() []Entry {
	libraryOnce.Do(func() {
		raw := make([]rawEntry, 0, len(governmentActors)+len(governedActors))
		raw = append(raw, governmentActors...)
		raw = append(raw, governedActors...)

		sort.Slice(raw, func(i, j int) bool {
			return raw[i].label > raw[j].label
		})

		library = make([]Entry, 0, len(raw))
		for _, entry := range raw {
			library = append(library, Entry{
				Label:   entry.label,
				Pattern: regexp.MustCompile(guard(entry.alternatives)),
			})
		}
	})
	return library
}

// guard wraps every alternative with blank/punctuation boundary classes
// and joins them into a single non-capturing alternation, so "owner"
// never matches inside "landowners".
func guard(alternatives []string) string {
	guarded := make([]string, len(alternatives))
	for i, alt := range alternatives {
		guarded[i] = "[[:blank:][:punct:]]" + alt + "[[:blank:][:punct:]]"
	}
	return "(?:" + strings.Join(guarded, "|") + ")"
}
