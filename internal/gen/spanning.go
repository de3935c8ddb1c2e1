package gen

import (
	"fmt"
	"sort"

	"github.com/spakin/disjoint"

	"github.com/samdwyer/dungeonforge/internal/world"
)

// SelectSpanningTree reduces the candidate corridors to a minimal connected,
// cycle-free subset using Kruskal's algorithm over a union-find of rooms.
// Candidates are taken in ascending weight order; ties keep their original
// candidate order, which preserves reproducibility under a fixed seed.
//
// When the candidate graph does not connect every room the partial forest is
// returned alongside ErrDisconnected; it is never silently accepted.
func SelectSpanningTree(candidates []world.Corridor, roomCount int) ([]world.Corridor, error) {
	if roomCount <= 0 {
		return nil, ErrNoRooms
	}

	sorted := make([]world.Corridor, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight() < sorted[j].Weight()
	})

	sets := make([]*disjoint.Element, roomCount)
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}

	accepted := make([]world.Corridor, 0, roomCount-1)
	for _, c := range sorted {
		if c.A < 0 || c.A >= roomCount || c.B < 0 || c.B >= roomCount {
			continue
		}
		if sets[c.A].Find() == sets[c.B].Find() {
			continue
		}
		disjoint.Union(sets[c.A], sets[c.B])
		accepted = append(accepted, c)
		if len(accepted) == roomCount-1 {
			break
		}
	}

	if len(accepted) < roomCount-1 {
		components := roomCount - len(accepted)
		return accepted, fmt.Errorf("%w: %d rooms form %d components",
			ErrDisconnected, roomCount, components)
	}
	return accepted, nil
}
