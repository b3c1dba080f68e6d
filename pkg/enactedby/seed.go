package enactedby

// builtinEntries is the static pattern table. specific_act entries name
// the Acts that enable the bulk of UK EHS subordinate legislation and
// return a fixed law id; powers_clause entries anchor on the standard
// enabling-powers phrasings; footnote_fallback sweeps up every footnote
// code as a last resort.
func builtinEntries() []*PatternEntry {
	return []*PatternEntry{
		{
			ID:       "act-hswa-1974",
			Name:     "Health and Safety at Work etc. Act 1974",
			Type:     StrategySpecificAct,
			Priority: 100,
			Pattern:  PatternSpec{Alternatives: []string{`Health and Safety at Work etc\.? Act 1974`}},
			Output:   "ukpga/1974/37",
			Enabled:  true,
		},
		{
			ID:       "act-eca-1972",
			Name:     "European Communities Act 1972",
			Type:     StrategySpecificAct,
			Priority: 100,
			Pattern:  PatternSpec{Alternatives: []string{`European Communities Act 1972`}},
			Output:   "ukpga/1972/68",
			Enabled:  true,
		},
		{
			ID:       "act-epa-1990",
			Name:     "Environmental Protection Act 1990",
			Type:     StrategySpecificAct,
			Priority: 100,
			Pattern:  PatternSpec{Alternatives: []string{`Environmental Protection Act 1990`}},
			Output:   "ukpga/1990/43",
			Enabled:  true,
		},
		{
			ID:       "act-fsa-1990",
			Name:     "Food Safety Act 1990",
			Type:     StrategySpecificAct,
			Priority: 100,
			Pattern:  PatternSpec{Alternatives: []string{`Food Safety Act 1990`}},
			Output:   "ukpga/1990/16",
			Enabled:  true,
		},
		{
			ID:       "act-wia-1991",
			Name:     "Water Industry Act 1991",
			Type:     StrategySpecificAct,
			Priority: 100,
			Pattern:  PatternSpec{Alternatives: []string{`Water Industry Act 1991`}},
			Output:   "ukpga/1991/56",
			Enabled:  true,
		},
		{
			ID:       "act-building-1984",
			Name:     "Building Act 1984",
			Type:     StrategySpecificAct,
			Priority: 100,
			Pattern:  PatternSpec{Alternatives: []string{`Building Act 1984`}},
			Output:   "ukpga/1984/55",
			Enabled:  true,
		},
		{
			ID:       "act-euwa-2018",
			Name:     "European Union (Withdrawal) Act 2018",
			Type:     StrategySpecificAct,
			Priority: 100,
			Pattern:  PatternSpec{Alternatives: []string{`European Union \(Withdrawal\) Act 2018`}},
			Output:   "ukpga/2018/16",
			Enabled:  true,
		},
		{
			ID:       "act-env-2021",
			Name:     "Environment Act 2021",
			Type:     StrategySpecificAct,
			Priority: 100,
			Pattern:  PatternSpec{Alternatives: []string{`Environment Act 2021`}},
			Output:   "ukpga/2021/30",
			Enabled:  true,
		},

		{
			ID:       "powers-in-exercise",
			Name:     "in exercise of the powers clause",
			Type:     StrategyPowersClause,
			Priority: 60,
			Pattern:  PatternSpec{Alternatives: []string{`[Ii]n exercise of the powers(?:[\s\S]{0,400}?([cf]\d{5}))?`}},
			Enabled:  true,
		},
		{
			ID:       "powers-conferred-by",
			Name:     "powers conferred by clause",
			Type:     StrategyPowersClause,
			Priority: 55,
			Pattern:  PatternSpec{Alternatives: []string{`powers conferred(?: on [\w\s]+)? by(?:[\s\S]{0,400}?([cf]\d{5}))?`}},
			Enabled:  true,
		},
		{
			ID:       "powers-under",
			Name:     "powers under clause",
			Type:     StrategyPowersClause,
			Priority: 50,
			Pattern:  PatternSpec{Alternatives: []string{`powers under(?:[\s\S]{0,400}?([cf]\d{5}))?`}},
			Enabled:  true,
		},

		{
			ID:       "footnote-sweep",
			Name:     "all footnote codes",
			Type:     StrategyFootnoteFallback,
			Priority: 10,
			Pattern:  PatternSpec{Alternatives: []string{`f\d{5}`}},
			Enabled:  true,
		},
	}
}
