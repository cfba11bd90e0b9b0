package service

import (
	"sort"

	"github.com/danishayman/Timetable-Webapp-sub002/internal/models"
)

// resolveLayout partitions slots that fight over column space into lateral
// sub-columns. Clusters are connected components of the graph whose edges are
// time clashes: transitive overlap chains (A-B and B-C overlap, A-C do not)
// still form one visual cluster because they share column space. Every member
// of a cluster gets an equal-width slice; finer interval packing is a
// deliberate non-feature, equal widths read consistently. Slots without any
// time clash keep the full column.
func resolveLayout(slots []models.TimeSlot, clashes []models.Clash) map[string]models.LateralPlacement {
	adjacency := make(map[string][]string)
	for _, clash := range clashes {
		if clash.Type != models.ClashTypeTime {
			continue
		}
		adjacency[clash.Slot1.ID] = append(adjacency[clash.Slot1.ID], clash.Slot2.ID)
		adjacency[clash.Slot2.ID] = append(adjacency[clash.Slot2.ID], clash.Slot1.ID)
	}

	ids := make([]string, 0, len(slots))
	known := make(map[string]bool, len(slots))
	for _, slot := range slots {
		ids = append(ids, slot.ID)
		known[slot.ID] = true
	}
	sort.Strings(ids)

	placements := make(map[string]models.LateralPlacement, len(slots))
	seen := make(map[string]bool, len(slots))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		// BFS over the clash graph to collect the cluster.
		queue := []string{id}
		component := make([]string, 0, 1)
		for qi := 0; qi < len(queue); qi++ {
			member := queue[qi]
			component = append(component, member)
			for _, neighbour := range adjacency[member] {
				if !known[neighbour] || seen[neighbour] {
					continue
				}
				seen[neighbour] = true
				queue = append(queue, neighbour)
			}
		}

		sort.Strings(component)
		for index, member := range component {
			placements[member] = models.LateralPlacement{
				LateralIndex: index,
				LateralTotal: len(component),
			}
		}
	}
	return placements
}
