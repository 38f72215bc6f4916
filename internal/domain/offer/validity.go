package offer

import "time"

const clockLayout = "15:04"

// IsCurrentlyValid reports whether the offer should be shown at now.
//
// The check uses now's wall clock as given, without any zone conversion:
// the offer must be active, now's weekday must be one of the valid days and
// the HH:MM truncation of now must lie within the inclusive hour window.
// A window whose start equals its end matches that single minute only.
// Windows crossing midnight are not supported.
func (o *Offer) IsCurrentlyValid(now time.Time) bool {
	if o == nil || !o.isActive {
		return false
	}
	if !o.validDays.Contains(int(now.Weekday())) {
		return false
	}
	return o.validHours.Contains(now.Format(clockLayout))
}

// FilterDisplayable keeps active offers in their original order.
// Day and hour windows are not checked.
func FilterDisplayable(offers []*Offer) []*Offer {
	out := make([]*Offer, 0, len(offers))
	for _, o := range offers {
		if o != nil && o.isActive {
			out = append(out, o)
		}
	}
	return out
}

// FilterCurrentlyValid keeps offers for which IsCurrentlyValid(now) holds.
func FilterCurrentlyValid(offers []*Offer, now time.Time) []*Offer {
	out := make([]*Offer, 0, len(offers))
	for _, o := range offers {
		if o.IsCurrentlyValid(now) {
			out = append(out, o)
		}
	}
	return out
}

// Selector names which of the two filters a caller wants.
type Selector string

const (
	SelectActive Selector = "active"
	SelectStrict Selector = "strict"
)

func ParseSelector(s string) (Selector, error) {
	switch Selector(s) {
	case "", SelectActive:
		return SelectActive, nil
	case SelectStrict:
		return SelectStrict, nil
	default:
		return "", ErrInvalidSelector
	}
}

func (s Selector) Select(offers []*Offer, now time.Time) []*Offer {
	if s == SelectStrict {
		return FilterCurrentlyValid(offers, now)
	}
	return FilterDisplayable(offers)
}
