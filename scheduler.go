package orchestrator

import "sort"

// topologyLevels partitions numNodes stage indices into maximal parallel
// levels such that every dependency of a node in level k lies in some level
// strictly earlier than k. If the dependency map describes a cycle, the
// scheduler deterministically breaks it by advancing the lowest-numbered
// remaining node — malformed dependencies (heuristically inferred from
// prose) must never block scheduling.
func topologyLevels(numNodes int, deps map[int][]int) [][]int {
	remaining := make(map[int]bool, numNodes)
	for i := 0; i < numNodes; i++ {
		remaining[i] = true
	}
	done := make(map[int]bool, numNodes)

	var levels [][]int
	for len(remaining) > 0 {
		var ready []int
		for i := range remaining {
			ok := true
			for _, d := range deps[i] {
				if !done[d] {
					ok = false
					break
				}
			}
			if ok {
				ready = append(ready, i)
			}
		}

		sort.Ints(ready)
		if len(ready) == 0 {
			min := -1
			for i := range remaining {
				if min == -1 || i < min {
					min = i
				}
			}
			ready = []int{min}
		}

		levels = append(levels, ready)
		for _, i := range ready {
			delete(remaining, i)
			done[i] = true
		}
	}
	return levels
}
