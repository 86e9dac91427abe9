package duplicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   [][]int
	}{
		{"empty", nil, nil},
		{"single", []string{"a"}, nil},
		{"all distinct", []string{"a", "b", "c"}, nil},
		{"one pair", []string{"a", "b", "a"}, [][]int{{0, 2}}},
		{"two groups", []string{"a", "b", "a", "b", "c", "a"}, [][]int{{0, 2, 5}, {1, 3}}},
		{"all equal", []string{"x", "x", "x"}, [][]int{{0, 1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Partition(len(tt.values), func(i, j int) bool {
				return tt.values[i] == tt.values[j]
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartition_CoversEveryIndexOnce(t *testing.T) {
	values := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9}

	groups, err := Partition(len(values), func(i, j int) bool { return values[i] == values[j] })
	require.NoError(t, err)

	seen := make(map[int]int)
	for _, g := range groups {
		assert.GreaterOrEqual(t, len(g), 2)
		for _, idx := range g {
			seen[idx]++
		}
	}
	singletons := 0
	for i := range values {
		switch seen[i] {
		case 0:
			singletons++
		case 1:
		default:
			t.Errorf("index %d in %d groups", i, seen[i])
		}
	}
	assert.Equal(t, len(values), len(seen)+singletons)
}

func TestPartition_NonTransitiveRelation(t *testing.T) {
	// 0~1 and 1~2 but not 0~2: the first visitor claims its neighbours,
	// so 2 stays a singleton instead of being chained in.
	related := map[[2]int]bool{{0, 1}: true, {1, 2}: true}

	groups, err := Partition(3, func(i, j int) bool { return related[[2]int{i, j}] })
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}}, groups)
}
