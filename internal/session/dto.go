package session

import (
	"fmt"
	"time"

	"github.com/adhishthite/tippr/internal/engine"
)

// Wire names for the event types accepted by POST /sessions/reduce.
const (
	EventBillEntered       = "bill_entered"
	EventTipSelected       = "tip_selected"
	EventTipEntered        = "tip_entered"
	EventRoundToggled      = "round_toggled"
	EventSplitToggled      = "split_toggled"
	EventSplitCountChanged = "split_count_changed"
	EventCleared           = "cleared"
)

// ReduceRequest carries the current session state and one event to apply.
// Omitting the state starts a fresh session.
type ReduceRequest struct {
	State State    `json:"state"`
	Event EventDTO `json:"event"`
}

// EventDTO is the wire form of an Event: a type discriminator plus the
// union of all event fields. Each event type reads only its own fields.
type EventDTO struct {
	Type    string    `json:"type" validate:"required,oneof=bill_entered tip_selected tip_entered round_toggled split_toggled split_count_changed cleared"`
	Raw     string    `json:"raw"`
	Percent float64   `json:"percent" validate:"gte=0"`
	Mode    string    `json:"mode" validate:"omitempty,oneof=none up down"`
	Count   int       `json:"count"`
	At      time.Time `json:"at"`
}

// ToEvent converts the wire form into the reducer event it names.
func (d EventDTO) ToEvent() (Event, error) {
	switch d.Type {
	case EventBillEntered:
		return BillEntered{Raw: d.Raw}, nil
	case EventTipSelected:
		return TipSelected{Percent: d.Percent, At: d.At}, nil
	case EventTipEntered:
		return TipEntered{Raw: d.Raw}, nil
	case EventRoundToggled:
		mode, err := engine.ParseRoundMode(d.Mode)
		if err != nil {
			return nil, err
		}
		return RoundToggled{Mode: mode}, nil
	case EventSplitToggled:
		return SplitToggled{}, nil
	case EventSplitCountChanged:
		return SplitCountChanged{Count: d.Count}, nil
	case EventCleared:
		return Cleared{}, nil
	default:
		return nil, fmt.Errorf("unknown event type: %q", d.Type)
	}
}

// ReduceResponse carries the next state and the snapshot recomputed from
// it. Clients echo the state back on their next event.
type ReduceResponse struct {
	State    State    `json:"state"`
	Snapshot Snapshot `json:"snapshot"`
}
