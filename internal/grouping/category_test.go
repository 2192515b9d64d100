package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c7harry/bayform/internal/types"
)

func TestGroupSkills_FirstSeenCategoryOrder(t *testing.T) {
	skills := []types.Skill{
		{Name: "Go", Category: "Languages"},
		{Name: "Rust", Category: "Languages"},
		{Name: "AWS", Category: "Cloud"},
	}

	groups := GroupSkills(skills)
	require.Len(t, groups, 2)
	assert.Equal(t, "Languages", groups[0].Category)
	assert.Equal(t, []string{"Go", "Rust"}, groups[0].Items)
	assert.Equal(t, "Cloud", groups[1].Category)
	assert.Equal(t, []string{"AWS"}, groups[1].Items)
}

func TestGroupSkills_InterleavedCategories(t *testing.T) {
	skills := []types.Skill{
		{Name: "Go", Category: "Languages"},
		{Name: "AWS", Category: "Cloud"},
		{Name: "Rust", Category: "Languages"},
	}

	groups := GroupSkills(skills)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"Go", "Rust"}, groups[0].Items)
}

func TestGroupSkills_CaseSensitiveLabels(t *testing.T) {
	skills := []types.Skill{
		{Name: "Go", Category: "languages"},
		{Name: "Rust", Category: "Languages"},
	}
	assert.Len(t, GroupSkills(skills), 2)
}

func TestGroupSkills_EmptyCategoryIsLegalKey(t *testing.T) {
	skills := []types.Skill{
		{Name: "Go", Category: ""},
		{Name: "Rust", Category: ""},
	}

	groups := GroupSkills(skills)
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].Category)
	assert.Equal(t, []string{"Go", "Rust"}, groups[0].Items)
}

func TestGroupSkills_Empty(t *testing.T) {
	assert.Nil(t, GroupSkills(nil))
}

func TestGroupAdditional_MergesRepeatedTitles(t *testing.T) {
	sections := []types.AdditionalSection{
		{Title: "Languages", Items: []string{"English", "French"}},
		{Title: "Interests", Items: []string{"Climbing"}},
		{Title: "Languages", Items: []string{"Spanish"}},
	}

	groups := GroupAdditional(sections)
	require.Len(t, groups, 2)
	assert.Equal(t, "Languages", groups[0].Category)
	assert.Equal(t, []string{"English", "French", "Spanish"}, groups[0].Items)
	assert.Equal(t, []string{"Climbing"}, groups[1].Items)
}

func TestGroupAdditional_EmptySectionOmitted(t *testing.T) {
	sections := []types.AdditionalSection{{Title: "Languages"}}
	assert.Nil(t, GroupAdditional(sections))
}
