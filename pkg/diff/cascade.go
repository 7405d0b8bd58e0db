package diff

import "github.com/vqltools/vqlkeeper/pkg/vql"

// cascade computes the identities in the base model that transitively
// depend on any of the removed identities, excluding the removed set
// itself.
//
// It builds a reverse-dependency index over the base model (for each
// identity, the identities that declare it as a dependency), then runs a
// breadth-first traversal seeded with the removed set. The visited set
// makes cyclic dependency declarations terminate; the result is finite
// since the identity space is finite. Dangling references contribute no
// reverse edge.
func cascade(base *vql.Codebase, removed map[vql.Identity]struct{}) []vql.Identity {
	if len(removed) == 0 {
		return nil
	}

	dependents := make(map[vql.Identity][]vql.Identity)
	for _, obj := range base.Objects() {
		for _, dep := range obj.Dependencies() {
			dependents[dep] = append(dependents[dep], obj.Identity())
		}
	}

	visited := make(map[vql.Identity]struct{}, len(removed))
	queue := make([]vql.Identity, 0, len(removed))
	for id := range removed {
		visited[id] = struct{}{}
		queue = append(queue, id)
	}

	var result []vql.Identity
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, dependent := range dependents[id] {
			if _, ok := visited[dependent]; ok {
				continue
			}
			visited[dependent] = struct{}{}
			queue = append(queue, dependent)

			if _, ok := removed[dependent]; !ok {
				result = append(result, dependent)
			}
		}
	}

	vql.SortIdentities(result)
	return result
}
