// Package enactedby resolves which prior Acts or Statutory Instruments
// empowered ("enacted") a piece of subordinate legislation, from its
// enabling-powers text and a footnote-to-URL reference map.
//
// Resolution runs a priority-ordered cascade of pattern strategies and
// short-circuits on the first that produces output:
//
//	specific_act       (100)  known enabling Act named in the text
//	powers_clause       (50)  "powers conferred by ..." clause with refs
//	footnote_fallback   (10)  every footnote code in the text
//
// The pattern tables are declarative data: entries can be disabled or
// extended (including from YAML files) without touching matcher logic.
package enactedby

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Strategy identifies one of the three matcher strategies.
type Strategy string

const (
	StrategySpecificAct      Strategy = "specific_act"
	StrategyPowersClause     Strategy = "powers_clause"
	StrategyFootnoteFallback Strategy = "footnote_fallback"
)

// Strategies lists all strategy types in cascade order.
func Strategies() []Strategy {
	return []Strategy{StrategySpecificAct, StrategyPowersClause, StrategyFootnoteFallback}
}

// PatternEntry is one declarative pattern. Within a strategy type,
// enabled entries are tried in descending priority order.
type PatternEntry struct {
	ID       string      `yaml:"id" json:"id"`
	Name     string      `yaml:"name" json:"name"`
	Type     Strategy    `yaml:"type" json:"type"`
	Priority int         `yaml:"priority" json:"priority"`
	Pattern  PatternSpec `yaml:"pattern" json:"pattern"`

	// Output is the fixed law id returned on match; only specific_act
	// entries use it.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	Enabled bool `yaml:"enabled" json:"enabled"`

	compiled *regexp.Regexp
}

// PatternSpec is a regex or a list of regex alternatives. A list is
// compiled into a single non-capturing alternation.
type PatternSpec struct {
	Alternatives []string
}

// UnmarshalYAML accepts either a scalar pattern or a sequence of
// alternatives, matching how the registry files are written.
func (p *PatternSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		p.Alternatives = []string{single}
		return nil
	case yaml.SequenceNode:
		return value.Decode(&p.Alternatives)
	default:
		return fmt.Errorf("pattern must be a string or a list of strings")
	}
}

// MarshalYAML renders single-alternative specs back as scalars.
func (p PatternSpec) MarshalYAML() (interface{}, error) {
	if len(p.Alternatives) == 1 {
		return p.Alternatives[0], nil
	}
	return p.Alternatives, nil
}

// Compile validates and compiles the entry's pattern.
func (e *PatternEntry) Compile() error {
	if len(e.Pattern.Alternatives) == 0 {
		return fmt.Errorf("pattern entry %q has no alternatives", e.ID)
	}
	expr := e.Pattern.Alternatives[0]
	if len(e.Pattern.Alternatives) > 1 {
		joined := ""
		for i, alt := range e.Pattern.Alternatives {
			if i > 0 {
				joined += "|"
			}
			joined += "(?:" + alt + ")"
		}
		expr = joined
	}
	compiled, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("compiling pattern %q: %w", e.ID, err)
	}
	e.compiled = compiled
	return nil
}

// Validate checks the entry's required fields.
func (e *PatternEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("pattern entry id is required")
	}
	switch e.Type {
	case StrategySpecificAct, StrategyPowersClause, StrategyFootnoteFallback:
	default:
		return fmt.Errorf("pattern entry %q has unknown type %q", e.ID, e.Type)
	}
	if e.Type == StrategySpecificAct && e.Output == "" {
		return fmt.Errorf("specific_act entry %q requires an output law id", e.ID)
	}
	if len(e.Pattern.Alternatives) == 0 {
		return fmt.Errorf("pattern entry %q has no pattern", e.ID)
	}
	return nil
}

// MatchResult is the outcome of one pattern attempt. Built fresh per
// attempt, never shared or mutated across calls.
type MatchResult struct {
	Matched  bool     `json:"matched"`
	Outputs  []string `json:"outputs,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// Metadata records what the match saw, for coverage observability.
type Metadata struct {
	MatchedText string   `json:"matched_text,omitempty"`
	RefsUsed    []string `json:"refs_used,omitempty"`
}

// PatternMatch pairs a pattern with the result it produced, for reports.
type PatternMatch struct {
	PatternID   string   `json:"pattern_id"`
	Strategy    Strategy `json:"strategy"`
	MatchedText string   `json:"matched_text,omitempty"`
	RefsUsed    []string `json:"refs_used,omitempty"`
}

// Report describes one resolver invocation: which single strategy
// supplied the result, every pattern that matched, and which strategy
// types produced zero matches. Observability only, never correctness.
type Report struct {
	Strategy            Strategy       `json:"strategy,omitempty"`
	Matched             bool           `json:"matched"`
	PatternMatches      []PatternMatch `json:"pattern_matches,omitempty"`
	ZeroMatchStrategies []Strategy     `json:"zero_match_strategies,omitempty"`
}
