package offer

import (
	"regexp"
	"sort"
	"strings"
)

const (
	MinDiscount = 1
	MaxDiscount = 100

	Sunday   = 0
	Saturday = 6
)

type Discount struct {
	value int
}

func NewDiscount(v int) (Discount, error) {
	if v < MinDiscount || v > MaxDiscount {
		return Discount{}, ErrInvalidDiscount
	}
	return Discount{value: v}, nil
}

func (d Discount) Value() int { return d.value }

// ValidDays is a set of weekdays, Sunday=0.
type ValidDays struct {
	days []int
}

// NewValidDays clamps every value into [0,6], drops duplicates and sorts.
func NewValidDays(in []int) ValidDays {
	seen := make(map[int]struct{}, len(in))
	days := make([]int, 0, len(in))
	for _, d := range in {
		d = min(max(d, Sunday), Saturday)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Ints(days)
	return ValidDays{days: days}
}

// rawValidDays keeps stored values untouched; out-of-range days simply never match.
func rawValidDays(in []int) ValidDays {
	days := make([]int, len(in))
	copy(days, in)
	return ValidDays{days: days}
}

func (v ValidDays) Contains(weekday int) bool {
	for _, d := range v.days {
		if d == weekday {
			return true
		}
	}
	return false
}

func (v ValidDays) Values() []int {
	out := make([]int, len(v.days))
	copy(out, v.days)
	return out
}

func (v ValidDays) IsEmpty() bool { return len(v.days) == 0 }

var hourPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// HourWindow holds zero-padded HH:MM bounds, both inclusive.
// Windows that cross midnight (start > end) are accepted but match no minute
// except possibly a boundary.
type HourWindow struct {
	start string
	end   string
}

func NewHourWindow(start, end string) (HourWindow, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if !hourPattern.MatchString(start) || !hourPattern.MatchString(end) {
		return HourWindow{}, ErrInvalidHour
	}
	return HourWindow{start: start, end: end}, nil
}

func (w HourWindow) Start() string { return w.start }
func (w HourWindow) End() string   { return w.end }

// Contains compares HH:MM strings lexicographically.
func (w HourWindow) Contains(hhmm string) bool {
	return hhmm >= w.start && hhmm <= w.end
}

func (w HourWindow) SpansMidnight() bool { return w.start > w.end }

func (w HourWindow) String() string { return w.start + " - " + w.end }
