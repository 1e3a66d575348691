package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidInterval = errors.New("slot start time must be before end time")
	ErrInvalidClock    = errors.New("time must be in HH:MM 24h format")
	ErrInvalidCapacity = errors.New("max bookings must be at least 1")
	ErrSlotOverlap     = errors.New("slot overlaps an existing slot on the same day")
	ErrUnknownDay      = errors.New("unknown day of week")
	ErrSameDay         = errors.New("source and target day are the same")
)

// TimeSlot is one recurring weekly time window with a booking capacity.
// Times are "HH:MM" 24h strings, half-open [StartTime, EndTime).
type TimeSlot struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	MaxBookings int    `json:"max_bookings"`
}

type DaySlots []TimeSlot

// WeekSchedule is a garage's recurring availability template, keyed by
// lowercase weekday name. It is stored as a single JSONB column on the
// garage and always replaced as a whole, never patched per day.
type WeekSchedule map[string]DaySlots

var WeekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// EmptyWeek returns the all-empty template a garage starts with.
func EmptyWeek() WeekSchedule {
	week := make(WeekSchedule, len(WeekDays))
	for _, day := range WeekDays {
		week[day] = DaySlots{}
	}
	return week
}

// DayName maps a calendar date to the template key for that weekday.
func DayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, ErrInvalidClock
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidClock
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidClock
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}
	return hour*60 + minute, nil
}

// Validate checks a single slot: well-formed times, strictly positive
// length (no overnight wraparound) and a positive capacity.
func (s TimeSlot) Validate() error {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return fmt.Errorf("start time %q: %w", s.StartTime, err)
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return fmt.Errorf("end time %q: %w", s.EndTime, err)
	}
	if start >= end {
		return ErrInvalidInterval
	}
	if s.MaxBookings < 1 {
		return ErrInvalidCapacity
	}
	return nil
}

// Contains reports whether the clock time (minutes since midnight) falls
// inside the slot's half-open window.
func (s TimeSlot) Contains(minutes int) bool {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return false
	}
	return start <= minutes && minutes < end
}

// Overlaps reports whether two half-open intervals share any instant:
// [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	s1, err := ParseClock(s.StartTime)
	if err != nil {
		return false
	}
	e1, err := ParseClock(s.EndTime)
	if err != nil {
		return false
	}
	s2, err := ParseClock(other.StartTime)
	if err != nil {
		return false
	}
	e2, err := ParseClock(other.EndTime)
	if err != nil {
		return false
	}
	return s1 < e2 && s2 < e1
}

// HasOverlap applies the pairwise overlap test against every existing
// slot on the same day.
func (d DaySlots) HasOverlap(candidate TimeSlot) bool {
	for _, slot := range d {
		if slot.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// Add validates the candidate and inserts it, keeping the day sorted by
// start time. On any rejection the day is left unchanged.
func (d DaySlots) Add(candidate TimeSlot) (DaySlots, error) {
	if err := candidate.Validate(); err != nil {
		return d, err
	}
	if d.HasOverlap(candidate) {
		return d, ErrSlotOverlap
	}
	out := make(DaySlots, 0, len(d)+1)
	out = append(out, d...)
	out = append(out, candidate)
	out.sortByStart()
	return out, nil
}

func (d DaySlots) sortByStart() {
	sort.SliceStable(d, func(i, j int) bool {
		a, _ := ParseClock(d[i].StartTime)
		b, _ := ParseClock(d[j].StartTime)
		return a < b
	})
}

// Validate checks the whole template: known day keys only, every slot
// valid, and no two slots on the same day overlapping. Each day's list
// is sorted by start time as a side effect.
func (w WeekSchedule) Validate() error {
	for day, slots := range w {
		if !isWeekDay(day) {
			return fmt.Errorf("%w: %q", ErrUnknownDay, day)
		}
		for i, slot := range slots {
			if err := slot.Validate(); err != nil {
				return fmt.Errorf("%s slot %d: %w", day, i, err)
			}
			for j := i + 1; j < len(slots); j++ {
				if slot.Overlaps(slots[j]) {
					return fmt.Errorf("%s: %w", day, ErrSlotOverlap)
				}
			}
		}
		slots.sortByStart()
	}
	return nil
}

// Normalize fills in any missing weekday with an empty slot list so a
// stored template always carries all seven days.
func (w WeekSchedule) Normalize() {
	for _, day := range WeekDays {
		if _, ok := w[day]; !ok {
			w[day] = DaySlots{}
		}
	}
}

// CopyDay replaces the target day's slot list with a copy of the source
// day's. No merge semantics.
func (w WeekSchedule) CopyDay(from, to string) error {
	if !isWeekDay(from) || !isWeekDay(to) {
		return ErrUnknownDay
	}
	if from == to {
		return ErrSameDay
	}
	copied := make(DaySlots, len(w[from]))
	copy(copied, w[from])
	w[to] = copied
	return nil
}

func isWeekDay(day string) bool {
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

// Value implements the driver.Valuer interface for the JSONB column.
func (w WeekSchedule) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface.
func (w *WeekSchedule) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal WeekSchedule: unsupported type %T", value)
	}

	return json.Unmarshal(data, w)
}
