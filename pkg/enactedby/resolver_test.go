package enactedby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSpecificActShortCircuits(t *testing.T) {
	// The text names a known enabling Act AND carries a footnote-bearing
	// powers clause; the specific_act strategy must win and powers_clause
	// must record zero matches.
	text := "In exercise of the powers conferred by section 15 of the " +
		"Health and Safety at Work etc. Act 1974 f00001, the Secretary of " +
		"State makes the following Regulations. Citation and commencement 1."
	refs := map[string][]string{
		"f00001": {"https://www.legislation.gov.uk/ukpga/1974/37"},
	}

	ids, report := Resolve(text, refs)

	require.Equal(t, []string{"ukpga/1974/37"}, ids)
	assert.True(t, report.Matched)
	assert.Equal(t, StrategySpecificAct, report.Strategy)
	assert.Contains(t, report.ZeroMatchStrategies, StrategyPowersClause)
	assert.Contains(t, report.ZeroMatchStrategies, StrategyFootnoteFallback)
	require.Len(t, report.PatternMatches, 1)
	assert.Equal(t, "act-hswa-1974", report.PatternMatches[0].PatternID)
}

func TestResolvePowersClauseFootnote(t *testing.T) {
	text := "In exercise of the powers conferred by sections 15 and 43 of " +
		"the Gas Act 1986 f00001, the Secretary of State makes the following " +
		"Regulations. Citation 1."
	refs := map[string][]string{
		"f00001": {
			"https://www.legislation.gov.uk/ukpga/1986/44",
			"https://www.legislation.gov.uk/uksi/2000/100", // amendment history, discarded
		},
	}

	ids, report := Resolve(text, refs)

	require.Equal(t, []string{"ukpga/1986/44"}, ids)
	assert.Equal(t, StrategyPowersClause, report.Strategy)
	assert.Contains(t, report.ZeroMatchStrategies, StrategySpecificAct)
	require.Len(t, report.PatternMatches, 1)
	assert.Equal(t, []string{"f00001"}, report.PatternMatches[0].RefsUsed)
}

func TestResolvePrefersInlineCitations(t *testing.T) {
	text := "In exercise of the powers conferred by the 1986 Act c00002 " +
		"and section 2 f00001, the Secretary of State makes these Regulations. Next."
	refs := map[string][]string{
		"c00002": {"https://www.legislation.gov.uk/ukpga/1986/44"},
		"f00001": {"https://www.legislation.gov.uk/ukpga/1990/43"},
	}

	ids, report := Resolve(text, refs)

	require.Equal(t, []string{"ukpga/1986/44"}, ids)
	assert.Equal(t, []string{"c00002"}, report.PatternMatches[0].RefsUsed)
}

func TestResolveEnablingFilterFallsThrough(t *testing.T) {
	// The powers clause resolves only to a subordinate instrument, which
	// cannot enact; the cascade must fall through to footnote_fallback,
	// which is a bare extractor with no type filter.
	text := "In exercise of the powers conferred by regulation 3 f00009, " +
		"the Secretary of State makes the following Order. Citation 1."
	refs := map[string][]string{
		"f00009": {"https://www.legislation.gov.uk/uksi/2000/100"},
	}

	ids, report := Resolve(text, refs)

	require.Equal(t, []string{"uksi/2000/100"}, ids)
	assert.Equal(t, StrategyFootnoteFallback, report.Strategy)
	assert.Contains(t, report.ZeroMatchStrategies, StrategyPowersClause)
}

func TestResolveFootnoteFallbackSweepsAllCodes(t *testing.T) {
	text := "Textual amendments f00001 applied by f00002 and f00001 again."
	refs := map[string][]string{
		"f00001": {"https://www.legislation.gov.uk/ukpga/1974/37"},
		"f00002": {"https://www.legislation.gov.uk/uksi/2013/1471"},
	}

	ids, report := Resolve(text, refs)

	require.Equal(t, []string{"ukpga/1974/37", "uksi/2013/1471"}, ids)
	assert.Equal(t, StrategyFootnoteFallback, report.Strategy)
}

func TestResolveNoMatch(t *testing.T) {
	ids, report := Resolve("This text cites nothing at all.", nil)

	assert.Nil(t, ids)
	assert.False(t, report.Matched)
	assert.ElementsMatch(t, Strategies(), report.ZeroMatchStrategies)
	assert.Empty(t, report.PatternMatches)
}

func TestResolveDeduplicates(t *testing.T) {
	text := "In exercise of the powers conferred by c00001 and c00002, the " +
		"Secretary of State makes these Regulations. Next."
	refs := map[string][]string{
		"c00001": {"https://www.legislation.gov.uk/ukpga/1974/37"},
		"c00002": {"https://www.legislation.gov.uk/ukpga/1974/37"},
	}

	ids, _ := Resolve(text, refs)

	require.Equal(t, []string{"ukpga/1974/37"}, ids)
}

func TestResolveConcurrent(t *testing.T) {
	text := "In exercise of the powers conferred by the Environmental " +
		"Protection Act 1990, the Secretary of State makes these Regulations."

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				ids, _ := Resolve(text, nil)
				if len(ids) != 1 || ids[0] != "ukpga/1990/43" {
					t.Errorf("concurrent Resolve = %v", ids)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestExtractEnactingClause(t *testing.T) {
	t.Run("period_capital_boundary", func(t *testing.T) {
		text := "powers conferred by section 2 f00001. Citation follows here."
		clause := extractEnactingClause(text, 0)
		assert.Equal(t, "powers conferred by section 2 f00001", clause)
	})

	t.Run("secretary_of_state_boundary", func(t *testing.T) {
		text := "powers conferred by section 2 f00001 The Secretary of State makes"
		clause := extractEnactingClause(text, 0)
		assert.Equal(t, "powers conferred by section 2 f00001 ", clause)
	})

	t.Run("no_boundary_takes_rest", func(t *testing.T) {
		text := "powers conferred by section 2 f00001 and nothing else"
		clause := extractEnactingClause(text, 0)
		assert.Equal(t, text, clause)
	})
}
