package grouping

import "github.com/c7harry/bayform/internal/types"

// CategoryGroup holds the items collected under one category label.
type CategoryGroup struct {
	Category string
	Items    []string
}

// labeled is the minimal shape the category bucketing pass operates on.
type labeled struct {
	category string
	item     string
}

// groupByCategory performs a single left-to-right pass, appending each item
// to the bucket keyed by its exact category label. The first occurrence of a
// label fixes its position in the output. The empty string is a legal label.
func groupByCategory(pairs []labeled) []CategoryGroup {
	if len(pairs) == 0 {
		return nil
	}

	order := make([]string, 0, len(pairs))
	buckets := make(map[string][]string, len(pairs))

	for _, p := range pairs {
		if _, seen := buckets[p.category]; !seen {
			order = append(order, p.category)
		}
		buckets[p.category] = append(buckets[p.category], p.item)
	}

	groups := make([]CategoryGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, CategoryGroup{Category: key, Items: buckets[key]})
	}
	return groups
}

// GroupSkills buckets skills by their category label, preserving first-seen
// category order and within-category insertion order.
func GroupSkills(skills []types.Skill) []CategoryGroup {
	pairs := make([]labeled, len(skills))
	for i, s := range skills {
		pairs[i] = labeled{category: s.Category, item: s.Name}
	}
	return groupByCategory(pairs)
}

// GroupAdditional flattens user-defined sections into category groups keyed
// by section title, merging sections that repeat a title.
func GroupAdditional(sections []types.AdditionalSection) []CategoryGroup {
	var pairs []labeled
	for _, sec := range sections {
		for _, item := range sec.Items {
			pairs = append(pairs, labeled{category: sec.Title, item: item})
		}
	}
	return groupByCategory(pairs)
}
