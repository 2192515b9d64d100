// Package tailor compares a résumé against a job posting using keyword
// frequency. It fetches the posting, tokenizes the text, and reports which
// high-frequency terms the résumé's skills already cover and which are
// missing. There is no semantic analysis, only counting.
package tailor

import (
	"sort"
	"strings"
	"unicode"

	"github.com/c7harry/bayform/internal/types"
)

// DefaultKeywordLimit caps how many posting keywords a report considers.
const DefaultKeywordLimit = 25

// Keyword is a normalized term and how often it appears in the posting.
type Keyword struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Report lists posting keywords split by whether the résumé's skills
// mention them. Both slices are ordered by descending posting frequency.
type Report struct {
	Matched []Keyword `json:"matched"`
	Missing []Keyword `json:"missing"`
}

// stopwords are common English terms excluded from keyword counting.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "our": {},
	"that": {}, "the": {}, "their": {}, "this": {}, "to": {}, "we": {},
	"will": {}, "with": {}, "you": {}, "your": {}, "about": {}, "all": {},
	"also": {}, "any": {}, "can": {}, "do": {}, "if": {}, "into": {},
	"more": {}, "not": {}, "other": {}, "such": {}, "than": {}, "them": {},
	"these": {}, "they": {}, "through": {}, "us": {}, "was": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "who": {}, "work": {}, "working": {},
	"team": {}, "role": {}, "experience": {}, "years": {}, "ability": {},
	"strong": {}, "required": {}, "requirements": {}, "preferred": {},
	"skills": {}, "job": {}, "position": {}, "candidate": {}, "including": {},
}

// tokenize splits text into lowercase terms. Letters and digits form
// tokens; '+' , '#' and '.' are kept inside a token so terms like "c++",
// "c#" and "node.js" survive normalization.
func tokenize(text string) []string {
	isSep := func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		switch r {
		case '+', '#', '.':
			return false
		}
		return true
	}

	var tokens []string
	for _, raw := range strings.FieldsFunc(strings.ToLower(text), isSep) {
		token := strings.Trim(raw, ".")
		if len(token) < 2 {
			continue
		}
		if _, skip := stopwords[token]; skip {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// ExtractKeywords counts normalized term frequency in the posting text and
// returns at most limit keywords ordered by descending count. Ties break
// alphabetically so the result is deterministic.
func ExtractKeywords(text string, limit int) []Keyword {
	if limit <= 0 {
		limit = DefaultKeywordLimit
	}

	counts := make(map[string]int)
	for _, token := range tokenize(text) {
		counts[token]++
	}

	keywords := make([]Keyword, 0, len(counts))
	for term, count := range counts {
		keywords = append(keywords, Keyword{Term: term, Count: count})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Term < keywords[j].Term
	})

	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

// Match splits posting keywords by whether any of the document's skill
// names mention them. Skill names go through the same tokenizer as the
// posting, and a keyword matches on whole tokens only: "go" matches the
// skills "Go" and "Go Modules" but not "Django".
func Match(doc types.ResumeDocument, keywords []Keyword) *Report {
	skillTokens := make(map[string]struct{})
	for _, skill := range doc.Skills {
		for _, token := range tokenize(skill.Name) {
			skillTokens[token] = struct{}{}
		}
	}

	report := &Report{}
	for _, kw := range keywords {
		if _, matched := skillTokens[kw.Term]; matched {
			report.Matched = append(report.Matched, kw)
		} else {
			report.Missing = append(report.Missing, kw)
		}
	}
	return report
}

// Analyze fetches nothing; it runs extraction and matching over text the
// caller already has. The server and CLI both go through this entry point.
func Analyze(doc types.ResumeDocument, postingText string, limit int) *Report {
	return Match(doc, ExtractKeywords(postingText, limit))
}
