package grouping

import (
	"sort"
	"strings"

	"github.com/c7harry/bayform/internal/types"
)

// CompanyGroup holds the experience entries for one employer, sorted by
// parsed start date descending (most recent first).
type CompanyGroup struct {
	Company string
	Entries []types.Experience
}

// GroupByCompany buckets experience entries by employer name.
//
// The grouping key is the company name after leading/trailing whitespace
// trim; no case folding or fuzzy matching is applied. Group order follows the
// first appearance of each employer in the input, not alphabetical or
// chronological order. Within a group, entries are sorted by parsed start
// date descending with a stable sort, so entries with missing or unparseable
// dates sink to the bottom in their original relative order.
func GroupByCompany(entries []types.Experience) []CompanyGroup {
	if len(entries) == 0 {
		return nil
	}

	order := make([]string, 0, len(entries))
	buckets := make(map[string][]types.Experience, len(entries))

	for _, e := range entries {
		key := strings.TrimSpace(e.Company)
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], e)
	}

	groups := make([]CompanyGroup, 0, len(order))
	for _, key := range order {
		bucket := buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return ParseStartDate(bucket[i].StartDate).After(ParseStartDate(bucket[j].StartDate))
		})
		groups = append(groups, CompanyGroup{Company: key, Entries: bucket})
	}
	return groups
}
