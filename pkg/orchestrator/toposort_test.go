package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func names(mappings []TableMapping) []string {
	out := make([]string, len(mappings))
	for i, m := range mappings {
		out[i] = m.TargetTable
	}
	return out
}

func TestTopoSort_OrdersParentsBeforeChildren(t *testing.T) {
	mappings := []TableMapping{
		{TargetTable: "orders"},
		{TargetTable: "customers"},
		{TargetTable: "order_items"},
	}
	fkDeps := map[string][]string{
		"orders":      {"customers"},
		"order_items": {"orders"},
	}

	ordered, ok := topoSort(mappings, fkDeps)
	require.True(t, ok)
	require.Equal(t, []string{"customers", "orders", "order_items"}, names(ordered))
}

func TestTopoSort_TiesBrokenByAscendingName(t *testing.T) {
	mappings := []TableMapping{
		{TargetTable: "zebras"},
		{TargetTable: "apples"},
		{TargetTable: "mangoes"},
	}

	ordered, ok := topoSort(mappings, nil)
	require.True(t, ok)
	require.Equal(t, []string{"apples", "mangoes", "zebras"}, names(ordered))
}

func TestTopoSort_CycleAppendedInInputOrderWithWarning(t *testing.T) {
	mappings := []TableMapping{
		{TargetTable: "a"},
		{TargetTable: "b"},
		{TargetTable: "c"},
	}
	fkDeps := map[string][]string{
		"a": {"b"},
		"b": {"a"},
	}

	ordered, ok := topoSort(mappings, fkDeps)
	require.False(t, ok)
	require.Equal(t, []string{"c", "a", "b"}, names(ordered))
}

func TestTopoSort_DeterministicAcrossRepeatedCalls(t *testing.T) {
	mappings := []TableMapping{
		{TargetTable: "d"},
		{TargetTable: "b"},
		{TargetTable: "c"},
		{TargetTable: "a"},
	}
	fkDeps := map[string][]string{
		"d": {"b", "c"},
	}

	first, _ := topoSort(mappings, fkDeps)
	second, _ := topoSort(mappings, fkDeps)
	require.Equal(t, names(first), names(second))
	require.Equal(t, []string{"a", "b", "c", "d"}, names(first))
}
