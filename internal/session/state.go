// Package session models the interaction state of a tip calculation as an
// explicit immutable value reduced over events. Nothing here touches a
// clock or mutates in place: every user action is an Event carrying the
// data it needs (including timestamps), and Reduce maps the current State
// plus one Event to the next State.
package session

import (
	"strconv"
	"time"

	"github.com/adhishthite/tippr/internal/engine"
)

// TipDebounceInterval is the minimum gap between two accepted tip
// selections. A selection arriving sooner than this after the previous
// accepted one is treated as button bounce and dropped.
const TipDebounceInterval = 300 * time.Millisecond

// DefaultSplitCount is the participant count a fresh session starts with.
const DefaultSplitCount = 2

// State is one snapshot of a calculation session. It is a plain value:
// reducers return modified copies and callers keep whichever version they
// need. Raw inputs are stored as entered; validation and arithmetic happen
// on demand in Compute.
type State struct {
	BillRaw           string           `json:"bill_raw"`
	TipRaw            string           `json:"tip_raw"`
	RoundMode         engine.RoundMode `json:"round_mode"`
	SplitActive       bool             `json:"split_active"`
	SplitCount        int              `json:"split_count"`
	LastTipSelectedAt time.Time        `json:"last_tip_selected_at"`
}

// New returns the state of a fresh session.
func New() State {
	return State{
		RoundMode:  engine.RoundNone,
		SplitCount: DefaultSplitCount,
	}
}

// Event is a single user action applied to a session.
type Event interface {
	isEvent()
}

// BillEntered replaces the raw bill text.
type BillEntered struct {
	Raw string
}

// TipSelected picks a preset tip percentage. At is when the press
// happened; presses within TipDebounceInterval of the previous accepted
// selection are dropped.
type TipSelected struct {
	Percent float64
	At      time.Time
}

// TipEntered replaces the raw tip text with free-form input. Typed input
// is not debounced.
type TipEntered struct {
	Raw string
}

// RoundToggled presses one of the rounding buttons. Pressing the mode
// that is already active switches rounding off, so up and down are
// mutually exclusive.
type RoundToggled struct {
	Mode engine.RoundMode
}

// SplitToggled switches bill splitting on or off.
type SplitToggled struct{}

// SplitCountChanged sets the number of participants, clamped to the
// split bounds.
type SplitCountChanged struct {
	Count int
}

// Cleared resets the session to its initial state.
type Cleared struct{}

func (BillEntered) isEvent()       {}
func (TipSelected) isEvent()       {}
func (TipEntered) isEvent()        {}
func (RoundToggled) isEvent()      {}
func (SplitToggled) isEvent()      {}
func (SplitCountChanged) isEvent() {}
func (Cleared) isEvent()           {}

// Reduce applies one event to a state and returns the next state. The
// input state is never mutated and no ambient clock is consulted; the
// debounce rule reads only the timestamps the events carry, which keeps
// the whole transition deterministic and testable.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case BillEntered:
		s.BillRaw = ev.Raw
	case TipSelected:
		if !s.LastTipSelectedAt.IsZero() && ev.At.Sub(s.LastTipSelectedAt) < TipDebounceInterval {
			return s
		}
		s.TipRaw = strconv.FormatFloat(ev.Percent, 'f', -1, 64)
		s.LastTipSelectedAt = ev.At
	case TipEntered:
		s.TipRaw = ev.Raw
	case RoundToggled:
		if s.RoundMode == ev.Mode {
			s.RoundMode = engine.RoundNone
		} else {
			s.RoundMode = ev.Mode
		}
	case SplitToggled:
		s.SplitActive = !s.SplitActive
	case SplitCountChanged:
		s.SplitCount = engine.ClampSplitCount(ev.Count)
	case Cleared:
		s = New()
	}
	return s
}
