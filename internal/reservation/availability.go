package reservation

import (
	"sort"
	"strings"
)

// SlotRef identifies a time slot within a date.
type SlotRef struct {
	StartTime string
	EndTime   string
}

func (s SlotRef) String() string {
	return s.StartTime + "-" + s.EndTime
}

// TimeSlot is a sub-day capacity unit of a slotted offering.
type TimeSlot struct {
	StartTime       string
	EndTime         string
	IsAvailable     bool
	MaxParticipants int
	CurrentBookings int
}

// Ref returns the slot's identity.
func (s TimeSlot) Ref() SlotRef {
	return SlotRef{StartTime: s.StartTime, EndTime: s.EndTime}
}

// Available is the remaining capacity, never negative. Closed slots have none.
func (s TimeSlot) Available() int {
	if !s.IsAvailable {
		return 0
	}
	return remaining(s.MaxParticipants, s.CurrentBookings)
}

// DayRecord is one raw per-date capacity record from the backing store.
type DayRecord struct {
	Date            string
	IsAvailable     bool
	MaxParticipants int
	CurrentBookings int
	StartTime       string
	EndTime         string
	TimeSlots       []TimeSlot
}

// DayAvailability is the indexed descriptor for a date.
type DayAvailability struct {
	Date        DateKey
	Available   int
	Max         int
	IsAvailable bool
	StartTime   string
	EndTime     string
	TimeSlots   []TimeSlot
}

// Slot finds a slot by its start and end time.
func (d DayAvailability) Slot(ref SlotRef) (TimeSlot, bool) {
	for _, slot := range d.TimeSlots {
		if slot.StartTime == ref.StartTime && slot.EndTime == ref.EndTime {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// BestSlotCapacity is the largest remaining capacity among the date's slots.
func (d DayAvailability) BestSlotCapacity() int {
	best := 0
	for _, slot := range d.TimeSlots {
		if n := slot.Available(); n > best {
			best = n
		}
	}
	return best
}

// Index is a read-only availability snapshot of one offering.
type Index struct {
	cal      *Calendar
	slotted  bool
	dateRng  DateRange
	days     map[DateKey]DayAvailability
	excluded map[DateKey]struct{}
}

// BuildIndex indexes raw availability records for an offering. Excluded dates
// from the offering and from the caller are merged.
func BuildIndex(cal *Calendar, offering *Offering, records []DayRecord, excludeDates []string) (*Index, error) {
	idx := &Index{
		cal:      cal,
		slotted:  offering.TimeSlotsEnabled,
		dateRng:  offering.DateRange,
		days:     make(map[DateKey]DayAvailability, len(records)),
		excluded: make(map[DateKey]struct{}, len(excludeDates)+len(offering.ExcludeDates)),
	}

	for _, k := range offering.ExcludeDates {
		idx.excluded[k] = struct{}{}
	}
	for _, raw := range excludeDates {
		k, err := cal.ParseKey(raw)
		if err != nil {
			return nil, &ConfigurationError{Date: raw, Reason: "unparseable excluded date"}
		}
		idx.excluded[k] = struct{}{}
	}

	for _, rec := range records {
		k, err := cal.ParseKey(rec.Date)
		if err != nil {
			return nil, &ConfigurationError{Date: rec.Date, Reason: "unparseable date"}
		}
		if _, dup := idx.days[k]; dup {
			return nil, &ConfigurationError{Date: k.String(), Reason: "duplicate availability record"}
		}

		day := DayAvailability{
			Date:        k,
			IsAvailable: rec.IsAvailable,
			Max:         rec.MaxParticipants,
		}

		if idx.slotted {
			if strings.TrimSpace(rec.StartTime) != "" || strings.TrimSpace(rec.EndTime) != "" {
				return nil, &ConfigurationError{Date: k.String(), Reason: "whole-day hours on a time-slot offering"}
			}
			slots, err := validSlots(k, rec.TimeSlots)
			if err != nil {
				return nil, err
			}
			day.TimeSlots = slots
			if rec.IsAvailable {
				day.Available = day.BestSlotCapacity()
			}
		} else {
			if len(rec.TimeSlots) > 0 {
				return nil, &ConfigurationError{Date: k.String(), Reason: "time slots on a whole-day offering"}
			}
			day.StartTime = rec.StartTime
			day.EndTime = rec.EndTime
			if rec.IsAvailable {
				day.Available = remaining(rec.MaxParticipants, rec.CurrentBookings)
			}
		}

		idx.days[k] = day
	}

	return idx, nil
}

func validSlots(date DateKey, slots []TimeSlot) ([]TimeSlot, error) {
	out := make([]TimeSlot, 0, len(slots))
	seen := make(map[SlotRef]struct{}, len(slots))
	for _, slot := range slots {
		start, err := ParseClock(slot.StartTime)
		if err != nil {
			return nil, &ConfigurationError{Date: date.String(), Reason: err.Error()}
		}
		end, err := ParseClock(slot.EndTime)
		if err != nil {
			return nil, &ConfigurationError{Date: date.String(), Reason: err.Error()}
		}
		if end <= start {
			return nil, &ConfigurationError{Date: date.String(), Reason: "time slot ends before it starts: " + slot.Ref().String()}
		}
		if _, dup := seen[slot.Ref()]; dup {
			return nil, &ConfigurationError{Date: date.String(), Reason: "duplicate time slot " + slot.Ref().String()}
		}
		seen[slot.Ref()] = struct{}{}
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func remaining(capacity, booked int) int {
	if booked >= capacity {
		return 0
	}
	return capacity - booked
}

// Calendar returns the calendar the index was normalized with.
func (x *Index) Calendar() *Calendar {
	return x.cal
}

// Slotted reports whether dates resolve to time slots rather than whole days.
func (x *Index) Slotted() bool {
	return x.slotted
}

// Lookup returns the availability descriptor for a date.
func (x *Index) Lookup(k DateKey) (DayAvailability, bool) {
	day, ok := x.days[k]
	return day, ok
}

func (x *Index) IsExcluded(k DateKey) bool {
	_, ok := x.excluded[k]
	return ok
}

func (x *Index) InRange(k DateKey) bool {
	return x.dateRng.Contains(k)
}

// Selectable reports whether a date can be added to a selection: inside the
// offering's range, not excluded, open, and with capacity left.
func (x *Index) Selectable(k DateKey) bool {
	if !x.InRange(k) || x.IsExcluded(k) {
		return false
	}
	day, ok := x.days[k]
	if !ok || !day.IsAvailable {
		return false
	}
	return day.Available > 0
}

// CapacityFor returns the remaining capacity of a date, or of one of its slots
// when slot is non-nil. A slotted date without a slot reports its best slot.
func (x *Index) CapacityFor(k DateKey, slot *SlotRef) (int, error) {
	day, ok := x.days[k]
	if !ok || !x.InRange(k) || x.IsExcluded(k) || !day.IsAvailable {
		return 0, nil
	}
	if slot == nil {
		return day.Available, nil
	}
	if !x.slotted {
		return 0, ErrNotSlotted
	}
	s, ok := day.Slot(*slot)
	if !ok {
		return 0, ErrSlotNotFound
	}
	return s.Available(), nil
}

// Dates returns every indexed date in calendar order.
func (x *Index) Dates() []DateKey {
	keys := make([]DateKey, 0, len(x.days))
	for k := range x.days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Excluded returns the excluded dates in calendar order.
func (x *Index) Excluded() []DateKey {
	keys := make([]DateKey, 0, len(x.excluded))
	for k := range x.excluded {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
