package enactedby

import (
	"regexp"
	"strings"
)

// Context carries the reference material one resolution needs: the map
// from footnote ("f00123") and inline citation ("c00456") codes to the
// legislation.gov.uk URLs registered for them, in registration order.
// The first URL is the enabling reference; later URLs are amendment
// history.
type Context struct {
	Refs map[string][]string
}

// Matcher is one strategy's matching behaviour. Implementations are
// stateless; a MatchResult is built fresh per attempt.
type Matcher interface {
	Match(entry *PatternEntry, text string, ctx Context) MatchResult
}

var (
	inlineCitationCode = regexp.MustCompile(`c\d{5}`)
	footnoteCode       = regexp.MustCompile(`f\d{5}`)

	// A sentence boundary inside enacting text: a period followed by a
	// capital letter, or the formulaic "The Secretary of State" opening
	// the operative sentence.
	sentenceBoundary = regexp.MustCompile(`\.\s+[A-Z]|The Secretary of State`)
)

// specificActMatcher confirms a fixed regex against the whole text and
// returns the entry's hard-coded law id. No extraction is needed beyond
// the match itself.
type specificActMatcher struct{}

func (specificActMatcher) Match(entry *PatternEntry, text string, _ Context) MatchResult {
	matched := entry.compiled.FindString(text)
	if matched == "" {
		return MatchResult{}
	}
	return MatchResult{
		Matched:  true,
		Outputs:  []string{entry.Output},
		Metadata: Metadata{MatchedText: matched},
	}
}

// powersClauseMatcher anchors on an enabling-powers phrase, extracts the
// enacting clause up to the first sentence boundary, and resolves the
// citation codes found inside it. Inline citations are preferred;
// footnotes are consulted only when no inline citation is present, and
// only a footnote's first registered URL counts. Resolved ids are
// filtered to enabling legislation types and deduplicated; an empty
// result after filtering is no match, so the cascade can fall through.
type powersClauseMatcher struct{}

func (powersClauseMatcher) Match(entry *PatternEntry, text string, ctx Context) MatchResult {
	loc := entry.compiled.FindStringIndex(text)
	if loc == nil {
		return MatchResult{}
	}

	clause := extractEnactingClause(text, loc[0])

	codes := inlineCitationCode.FindAllString(clause, -1)
	firstURLOnly := false
	if len(codes) == 0 {
		codes = footnoteCode.FindAllString(clause, -1)
		firstURLOnly = true
	}

	var ids, refsUsed []string
	for _, code := range dedupe(codes) {
		urls := ctx.Refs[code]
		if len(urls) == 0 {
			continue
		}
		if firstURLOnly {
			urls = urls[:1]
		}
		used := false
		for _, url := range urls {
			id := ParseLegislationURL(url)
			if id == "" || !IsEnablingID(id) {
				continue
			}
			ids = append(ids, id)
			used = true
		}
		if used {
			refsUsed = append(refsUsed, code)
		}
	}

	ids = dedupe(ids)
	if len(ids) == 0 {
		return MatchResult{}
	}
	return MatchResult{
		Matched:  true,
		Outputs:  ids,
		Metadata: Metadata{MatchedText: clause, RefsUsed: refsUsed},
	}
}

// footnoteFallbackMatcher extracts every footnote code anywhere in the
// text as a last resort, resolving each through its first registered URL.
// It is a bare extractor: no year or type filtering.
type footnoteFallbackMatcher struct{}

func (footnoteFallbackMatcher) Match(entry *PatternEntry, text string, ctx Context) MatchResult {
	codes := dedupe(entry.compiled.FindAllString(text, -1))
	if len(codes) == 0 {
		return MatchResult{}
	}

	var ids, refsUsed []string
	for _, code := range codes {
		urls := ctx.Refs[code]
		if len(urls) == 0 {
			continue
		}
		if id := ParseLegislationURL(urls[0]); id != "" {
			ids = append(ids, id)
			refsUsed = append(refsUsed, code)
		}
	}

	ids = dedupe(ids)
	if len(ids) == 0 {
		return MatchResult{}
	}
	return MatchResult{
		Matched:  true,
		Outputs:  ids,
		Metadata: Metadata{MatchedText: strings.Join(codes, ","), RefsUsed: refsUsed},
	}
}

// extractEnactingClause returns the text from start to the first sentence
// boundary after it, or the rest of the text if none is found.
func extractEnactingClause(text string, start int) string {
	rest := text[start:]
	if loc := sentenceBoundary.FindStringIndex(rest); loc != nil {
		return rest[:loc[0]]
	}
	return rest
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]bool, len(values))
	out := values[:0:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
