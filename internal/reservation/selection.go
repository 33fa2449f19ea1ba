package reservation

import (
	"fmt"
	"sort"
)

// Entry is one selected date with its participant count and, for slotted
// offerings, the chosen time slot.
type Entry struct {
	Date             DateKey
	ParticipantCount int
	TimeSlot         *SlotRef
}

// AdjustmentKind describes what Revalidate had to change.
type AdjustmentKind string

const (
	AdjustmentRemoved     AdjustmentKind = "removed"
	AdjustmentClamped     AdjustmentKind = "clamped"
	AdjustmentSlotCleared AdjustmentKind = "slot_cleared"
)

// Adjustment records one change forced by a fresher availability snapshot.
type Adjustment struct {
	Date     DateKey
	Kind     AdjustmentKind
	Previous int
	Current  int
}

// SelectionStore holds the dates a customer picked for one checkout session.
// It is not safe for concurrent use.
type SelectionStore struct {
	index   *Index
	entries map[DateKey]*Entry
}

func NewSelectionStore(index *Index) *SelectionStore {
	return &SelectionStore{
		index:   index,
		entries: make(map[DateKey]*Entry),
	}
}

// Index returns the availability snapshot the store validates against.
func (s *SelectionStore) Index() *Index {
	return s.index
}

// ToggleDate selects an unselected date with one participant, or deselects a
// selected one. Dates that cannot be selected are ignored. It reports whether
// the date is selected afterwards.
func (s *SelectionStore) ToggleDate(date DateKey) bool {
	if _, ok := s.entries[date]; ok {
		delete(s.entries, date)
		return false
	}
	if !s.index.Selectable(date) {
		return false
	}
	s.entries[date] = &Entry{Date: date, ParticipantCount: 1}
	return true
}

// IsSelected reports whether date is part of the selection.
func (s *SelectionStore) IsSelected(date DateKey) bool {
	_, ok := s.entries[date]
	return ok
}

// SetParticipantCount updates the count for a selected date. Requests above
// the remaining capacity are clamped and reported with a *CapacityError; the
// applied count is returned either way.
func (s *SelectionStore) SetParticipantCount(date DateKey, count int) (int, error) {
	entry, ok := s.entries[date]
	if !ok {
		return 0, ErrEntryNotFound
	}
	if count < 1 {
		return entry.ParticipantCount, ErrInvalidParticipantCount
	}

	available, err := s.index.CapacityFor(date, entry.TimeSlot)
	if err != nil {
		return entry.ParticipantCount, err
	}
	if count > available {
		capErr := &CapacityError{Date: date, Requested: count, Available: available}
		if available < 1 {
			return entry.ParticipantCount, capErr
		}
		entry.ParticipantCount = available
		return available, capErr
	}

	entry.ParticipantCount = count
	return count, nil
}

// SetTimeSlot chooses or, with nil, clears the slot of a selected date. The
// participant count is left alone; callers re-clamp against the new slot.
func (s *SelectionStore) SetTimeSlot(date DateKey, slot *SlotRef) error {
	entry, ok := s.entries[date]
	if !ok {
		return ErrEntryNotFound
	}
	if !s.index.Slotted() {
		return ErrNotSlotted
	}
	if slot == nil {
		entry.TimeSlot = nil
		return nil
	}

	day, _ := s.index.Lookup(date)
	chosen, ok := day.Slot(*slot)
	if !ok {
		return ErrSlotNotFound
	}
	if chosen.Available() == 0 {
		return &CapacityError{Date: date, Requested: entry.ParticipantCount, Available: 0}
	}

	ref := chosen.Ref()
	entry.TimeSlot = &ref
	return nil
}

// Len is the number of distinct selected dates.
func (s *SelectionStore) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the selection in calendar order.
func (s *SelectionStore) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		cp := *e
		if e.TimeSlot != nil {
			slot := *e.TimeSlot
			cp.TimeSlot = &slot
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// IsComplete reports whether checkout may proceed.
func (s *SelectionStore) IsComplete() bool {
	return s.CheckComplete() == nil
}

// CheckComplete explains the first thing blocking checkout, if any.
func (s *SelectionStore) CheckComplete() error {
	if len(s.entries) == 0 {
		return &IncompleteSelectionError{Message: "Please select at least one date"}
	}

	cal := s.index.Calendar()
	for _, e := range s.Entries() {
		if s.index.Slotted() && e.TimeSlot == nil {
			return &IncompleteSelectionError{
				Message: fmt.Sprintf("Please select a time slot for %s", cal.Label(e.Date)),
			}
		}
		available, err := s.index.CapacityFor(e.Date, e.TimeSlot)
		if err != nil || available < 1 {
			return &IncompleteSelectionError{
				Message: fmt.Sprintf("%s is no longer available", cal.Label(e.Date)),
			}
		}
		if e.ParticipantCount < 1 || e.ParticipantCount > available {
			return &IncompleteSelectionError{
				Message: fmt.Sprintf("Please choose between 1 and %d participants for %s", available, cal.Label(e.Date)),
			}
		}
	}
	return nil
}

// Revalidate switches the store to a fresher snapshot. Entries that are no
// longer selectable are dropped, vanished or full slots are cleared, and counts
// are clamped to what is left.
func (s *SelectionStore) Revalidate(index *Index) []Adjustment {
	s.index = index

	var adjustments []Adjustment
	for _, e := range s.Entries() {
		entry := s.entries[e.Date]

		if !index.Selectable(e.Date) {
			delete(s.entries, e.Date)
			adjustments = append(adjustments, Adjustment{Date: e.Date, Kind: AdjustmentRemoved, Previous: e.ParticipantCount})
			continue
		}

		if entry.TimeSlot != nil {
			if n, err := index.CapacityFor(e.Date, entry.TimeSlot); err != nil || n == 0 {
				entry.TimeSlot = nil
				adjustments = append(adjustments, Adjustment{Date: e.Date, Kind: AdjustmentSlotCleared, Previous: e.ParticipantCount, Current: e.ParticipantCount})
			}
		}

		available, _ := index.CapacityFor(e.Date, entry.TimeSlot)
		if entry.ParticipantCount > available {
			adjustments = append(adjustments, Adjustment{Date: e.Date, Kind: AdjustmentClamped, Previous: entry.ParticipantCount, Current: available})
			entry.ParticipantCount = available
		}
	}
	return adjustments
}
