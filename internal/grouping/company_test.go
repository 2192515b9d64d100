package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c7harry/bayform/internal/types"
)

func TestGroupByCompany_FirstSeenOrderAndRecencySort(t *testing.T) {
	entries := []types.Experience{
		{Company: "Acme", Position: "Engineer", StartDate: "2019"},
		{Company: "Acme", Position: "Senior Engineer", StartDate: "2021"},
		{Company: "Beta", Position: "Engineer", StartDate: "2020"},
	}

	groups := GroupByCompany(entries)
	require.Len(t, groups, 2)

	assert.Equal(t, "Acme", groups[0].Company)
	assert.Equal(t, "Beta", groups[1].Company)

	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "Senior Engineer", groups[0].Entries[0].Position)
	assert.Equal(t, "Engineer", groups[0].Entries[1].Position)
}

func TestGroupByCompany_TrimsWhitespace(t *testing.T) {
	entries := []types.Experience{
		{Company: "  Acme ", StartDate: "2020"},
		{Company: "Acme", StartDate: "2021"},
	}

	groups := GroupByCompany(entries)
	require.Len(t, groups, 1)
	assert.Equal(t, "Acme", groups[0].Company)
	assert.Len(t, groups[0].Entries, 2)
}

func TestGroupByCompany_NoCaseFolding(t *testing.T) {
	entries := []types.Experience{
		{Company: "Acme"},
		{Company: "ACME"},
	}

	groups := GroupByCompany(entries)
	assert.Len(t, groups, 2)
}

func TestGroupByCompany_MissingDatesSinkStably(t *testing.T) {
	entries := []types.Experience{
		{Company: "Acme", Position: "First undated"},
		{Company: "Acme", Position: "Dated", StartDate: "2020"},
		{Company: "Acme", Position: "Second undated"},
	}

	groups := GroupByCompany(entries)
	require.Len(t, groups, 1)

	positions := make([]string, 0, 3)
	for _, e := range groups[0].Entries {
		positions = append(positions, e.Position)
	}
	assert.Equal(t, []string{"Dated", "First undated", "Second undated"}, positions)
}

func TestGroupByCompany_Empty(t *testing.T) {
	assert.Nil(t, GroupByCompany(nil))
	assert.Nil(t, GroupByCompany([]types.Experience{}))
}
