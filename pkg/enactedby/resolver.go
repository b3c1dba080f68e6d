package enactedby

import "sync"

// Resolver runs the strategy cascade over a registry. Safe for
// concurrent use: the matchers are stateless and the registry is
// read-only during resolution.
type Resolver struct {
	registry *Registry
	matchers map[Strategy]Matcher
}

// NewResolver creates a resolver over the given registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{
		registry: registry,
		matchers: map[Strategy]Matcher{
			StrategySpecificAct:      specificActMatcher{},
			StrategyPowersClause:     powersClauseMatcher{},
			StrategyFootnoteFallback: footnoteFallbackMatcher{},
		},
	}
}

// Resolve returns the enacting law ids for a piece of enabling-powers
// text. Strategies run in fixed priority order and the cascade returns
// on the first pattern that produces output; the report records the
// winning strategy, every pattern match, and which strategy types
// produced zero matches (including those never reached, which is what
// makes strict short-circuiting observable).
func (r *Resolver) Resolve(text string, refs map[string][]string) ([]string, Report) {
	ctx := Context{Refs: refs}
	report := Report{}

	matchedStrategies := make(map[Strategy]bool)

	var outputs []string
	for _, strategy := range Strategies() {
		matcher := r.matchers[strategy]
		for _, entry := range r.registry.ByStrategy(strategy) {
			result := matcher.Match(entry, text, ctx)
			if !result.Matched {
				continue
			}
			matchedStrategies[strategy] = true
			report.PatternMatches = append(report.PatternMatches, PatternMatch{
				PatternID:   entry.ID,
				Strategy:    strategy,
				MatchedText: result.Metadata.MatchedText,
				RefsUsed:    result.Metadata.RefsUsed,
			})
			outputs = result.Outputs
			break
		}
		if outputs != nil {
			report.Strategy = strategy
			report.Matched = true
			break
		}
	}

	for _, strategy := range Strategies() {
		if !matchedStrategies[strategy] {
			report.ZeroMatchStrategies = append(report.ZeroMatchStrategies, strategy)
		}
	}

	return outputs, report
}

var (
	defaultResolverOnce sync.Once
	defaultResolver     *Resolver
)

// Resolve runs the cascade with the built-in pattern table.
func Resolve(text string, refs map[string][]string) ([]string, Report) {
	defaultResolverOnce.Do(func() {
		defaultResolver = NewResolver(BuiltinRegistry())
	})
	return defaultResolver.Resolve(text, refs)
}
