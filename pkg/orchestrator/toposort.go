package orchestrator

import "sort"

// topoSort orders mappings so that every table follows the tables its
// foreign keys reference, using Kahn's algorithm. The ready frontier is
// re-sorted by target name at every step (not only initially) so that
// ties always resolve the same way across runs. Tables involved in a
// dependency cycle are appended, in their original input order, after
// the sortable prefix, and ok is false to signal that a cycle was
// found.
func topoSort(mappings []TableMapping, fkDeps map[string][]string) (ordered []TableMapping, ok bool) {
	byName := make(map[string]TableMapping, len(mappings))
	inputOrder := make([]string, len(mappings))
	for i, m := range mappings {
		byName[m.TargetTable] = m
		inputOrder[i] = m.TargetTable
	}

	nodeSet := make(map[string]bool, len(mappings))
	for _, name := range inputOrder {
		nodeSet[name] = true
	}

	children := make(map[string][]string)
	inDegree := make(map[string]int, len(mappings))
	for _, name := range inputOrder {
		inDegree[name] = 0
	}
	for _, name := range inputOrder {
		for _, parent := range fkDeps[name] {
			if !nodeSet[parent] || parent == name {
				continue
			}
			children[parent] = append(children[parent], name)
			inDegree[name]++
		}
	}

	frontier := make([]string, 0, len(mappings))
	for _, name := range inputOrder {
		if inDegree[name] == 0 {
			frontier = append(frontier, name)
		}
	}
	sort.Strings(frontier)

	visited := make(map[string]bool, len(mappings))
	var sorted []string

	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]
		sorted = append(sorted, next)
		visited[next] = true

		for _, child := range children[next] {
			inDegree[child]--
			if inDegree[child] == 0 {
				frontier = append(frontier, child)
			}
		}
		sort.Strings(frontier)
	}

	ordered = make([]TableMapping, 0, len(mappings))
	for _, name := range sorted {
		ordered = append(ordered, byName[name])
	}

	ok = true
	for _, name := range inputOrder {
		if !visited[name] {
			ordered = append(ordered, byName[name])
			ok = false
		}
	}

	return ordered, ok
}
