package compare_test

import (
	"testing"

	. "github.com/pseudomuto/dbmig/pkg/compare"
	"github.com/stretchr/testify/require"
)

func TestPointers(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *int
		expected bool
	}{
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "first nil",
			a:        nil,
			b:        intPtr(5),
			expected: false,
		},
		{
			name:     "second nil",
			a:        intPtr(5),
			b:        nil,
			expected: false,
		},
		{
			name:     "equal values",
			a:        intPtr(5),
			b:        intPtr(5),
			expected: true,
		},
		{
			name:     "different values",
			a:        intPtr(5),
			b:        intPtr(10),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Pointers(tt.a, tt.b)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestPointersWithEqual(t *testing.T) {
	type testStruct struct {
		value int
	}

	equalFunc := func(a, b *testStruct) bool {
		return a.value == b.value
	}

	tests := []struct {
		name     string
		a, b     *testStruct
		expected bool
	}{
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "first nil",
			a:        nil,
			b:        &testStruct{value: 5},
			expected: false,
		},
		{
			name:     "second nil",
			a:        &testStruct{value: 5},
			b:        nil,
			expected: false,
		},
		{
			name:     "equal by function",
			a:        &testStruct{value: 5},
			b:        &testStruct{value: 5},
			expected: true,
		},
		{
			name:     "not equal by function",
			a:        &testStruct{value: 5},
			b:        &testStruct{value: 10},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PointersWithEqual(tt.a, tt.b, equalFunc)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestSlices(t *testing.T) {
	equalFunc := func(a, b int) bool { return a == b }

	tests := []struct {
		name     string
		a, b     []int
		expected bool
	}{
		{
			name:     "both empty",
			a:        []int{},
			b:        []int{},
			expected: true,
		},
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "different lengths",
			a:        []int{1, 2, 3},
			b:        []int{1, 2},
			expected: false,
		},
		{
			name:     "equal elements",
			a:        []int{1, 2, 3},
			b:        []int{1, 2, 3},
			expected: true,
		},
		{
			name:     "different elements",
			a:        []int{1, 2, 3},
			b:        []int{1, 2, 4},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slices(tt.a, tt.b, equalFunc)
			require.Equal(t, tt.expected, result)
		})
	}
}

func intPtr(i int) *int {
	return &i
}
