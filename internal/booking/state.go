package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

// State is a coarse bucket used to filter booking lists.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var states = []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

// ParseState parses s case-insensitively. An empty string means ALL.
func ParseState(s string) (State, error) {
	if s == "" {
		return StateAll, nil
	}
	upper := State(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range states {
		if st == upper {
			return st, nil
		}
	}
	return "", apperror.InvalidArgument(fmt.Sprintf("Unknown state: %s", s))
}

// Apply narrows f to the bookings in state st relative to now.
func (st State) Apply(f Filter, now time.Time) Filter {
	switch st {
	case StateCurrent:
		f.StartBefore = &now
		f.EndAfter = &now
	case StatePast:
		f.StartBefore = &now
		f.EndBefore = &now
	case StateFuture:
		f.StartAfter = &now
	case StateWaiting:
		f.Statuses = []Status{StatusWaiting}
	case StateRejected:
		f.Statuses = []Status{StatusRejected}
	}
	return f
}
