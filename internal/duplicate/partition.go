package duplicate

import (
	"fmt"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Partition groups the indices 0..n-1. For each unvisited i in order, every
// later unvisited j with identical(i, j) joins i's group. Only groups of two
// or more are returned, each in ascending index order, and no index appears
// in more than one group.
func Partition(n int, identical func(i, j int) bool) ([][]int, error) {
	visited := make([]bool, n)
	var groups [][]int

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		var members []int
		for j := i + 1; j < n; j++ {
			if visited[j] {
				continue
			}
			if identical(i, j) {
				members = append(members, j)
				visited[j] = true
			}
		}
		if len(members) == 0 {
			continue
		}
		visited[i] = true
		groups = append(groups, append([]int{i}, members...))
	}

	if err := checkPartition(n, groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func checkPartition(n int, groups [][]int) error {
	seen := make([]bool, n)
	for g, group := range groups {
		if len(group) < 2 {
			return fmt.Errorf("group %d has %d members: %w", g, len(group), metaqa.ErrInvariantViolation)
		}
		for _, idx := range group {
			if idx < 0 || idx >= n {
				return fmt.Errorf("group %d holds index %d outside [0,%d): %w", g, idx, n, metaqa.ErrInvariantViolation)
			}
			if seen[idx] {
				return fmt.Errorf("index %d appears twice in the partition: %w", idx, metaqa.ErrInvariantViolation)
			}
			seen[idx] = true
		}
	}
	return nil
}
