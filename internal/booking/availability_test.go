package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(h, m int) time.Time {
	return time.Date(2030, 1, 2, h, m, 0, 0, time.UTC)
}

func TestIsFree(t *testing.T) {
	existing := []*Booking{{Start: at(10, 0), End: at(11, 0), Status: StatusApproved}}

	tests := []struct {
		name       string
		start, end time.Time
		free       bool
	}{
		{"start inside", at(10, 30), at(12, 0), false},
		{"end inside", at(9, 0), at(10, 30), false},
		{"both inside", at(10, 15), at(10, 45), false},
		{"before", at(9, 0), at(9, 30), true},
		{"after", at(11, 30), at(12, 0), true},
		{"touching start", at(9, 0), at(10, 0), true},
		{"touching end", at(11, 0), at(12, 0), true},
		{"same bounds", at(10, 0), at(11, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.free, IsFree(existing, tt.start, tt.end))
		})
	}
}

// The check looks only at the proposed bounds, so an interval that
// swallows an existing booking is accepted.
func TestIsFree_ContainingIntervalIsAccepted(t *testing.T) {
	existing := []*Booking{{Start: at(10, 0), End: at(11, 0), Status: StatusApproved}}

	assert.True(t, IsFree(existing, at(8, 0), at(12, 0)))
}

func TestIsFree_NoBookings(t *testing.T) {
	assert.True(t, IsFree(nil, at(8, 0), at(12, 0)))
}
