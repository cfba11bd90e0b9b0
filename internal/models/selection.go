package models

import "sort"

// Selection is the student's current set of chosen slots, keyed by slot ID
// and insertion-ordered. All mutating operations return a fresh Selection so
// downstream detection and layout passes always see an immutable snapshot.
type Selection struct {
	order []string
	slots map[string]TimeSlot
}

// NewSelection builds a selection from the given slots. Duplicate IDs are
// reported so callers can fail fast on corrupt upstream data.
func NewSelection(slots ...TimeSlot) (Selection, []string) {
	sel := Selection{
		order: make([]string, 0, len(slots)),
		slots: make(map[string]TimeSlot, len(slots)),
	}
	var duplicates []string
	for _, slot := range slots {
		if _, exists := sel.slots[slot.ID]; exists {
			duplicates = append(duplicates, slot.ID)
			continue
		}
		sel.order = append(sel.order, slot.ID)
		sel.slots[slot.ID] = slot
	}
	return sel, duplicates
}

// Len returns the number of selected slots.
func (s Selection) Len() int {
	return len(s.order)
}

// Get looks up a slot by ID.
func (s Selection) Get(id string) (TimeSlot, bool) {
	slot, ok := s.slots[id]
	return slot, ok
}

// Slots returns the selection in insertion order.
func (s Selection) Slots() []TimeSlot {
	out := make([]TimeSlot, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.slots[id])
	}
	return out
}

// SortedSlots returns the selection in lexical ID order, the canonical order
// used for deterministic pair scanning and layout tie-breaking.
func (s Selection) SortedSlots() []TimeSlot {
	out := s.Slots()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Add returns a new selection including the slot. Adding an already-present
// ID returns the receiver unchanged.
func (s Selection) Add(slot TimeSlot) Selection {
	if _, exists := s.slots[slot.ID]; exists {
		return s
	}
	next := s.clone()
	next.order = append(next.order, slot.ID)
	next.slots[slot.ID] = slot
	return next
}

// Remove returns a new selection without the given slot ID.
func (s Selection) Remove(id string) Selection {
	if _, exists := s.slots[id]; !exists {
		return s
	}
	next := Selection{
		order: make([]string, 0, len(s.order)-1),
		slots: make(map[string]TimeSlot, len(s.order)-1),
	}
	for _, existing := range s.order {
		if existing == id {
			continue
		}
		next.order = append(next.order, existing)
		next.slots[existing] = s.slots[existing]
	}
	return next
}

func (s Selection) clone() Selection {
	next := Selection{
		order: make([]string, len(s.order)),
		slots: make(map[string]TimeSlot, len(s.slots)),
	}
	copy(next.order, s.order)
	for id, slot := range s.slots {
		next.slots[id] = slot
	}
	return next
}
