package session

import "github.com/adhishthite/tippr/internal/engine"

// Snapshot is everything derivable from a State: both validation outcomes,
// the tip arithmetic, the rounding policy applied to the total, and the
// split when splitting is active.
type Snapshot struct {
	Bill         engine.ValidationResult `json:"bill"`
	Tip          engine.ValidationResult `json:"tip"`
	TipAmount    float64                 `json:"tip_amount"`
	Total        float64                 `json:"total"`
	RoundedTotal float64                 `json:"rounded_total"`
	Split        *engine.SplitResult     `json:"split,omitempty"`
}

// Compute derives the snapshot for a state. Amounts are produced only when
// both inputs validate; otherwise the validation results carry the errors
// and the amounts stay zero. The split divides the rounded total, so
// rounding to whole dollars happens before pennies are distributed.
func Compute(s State) Snapshot {
	snap := Snapshot{
		Bill: engine.ValidateBillAmount(s.BillRaw),
		Tip:  engine.ValidateTipPercent(s.TipRaw),
	}
	if !snap.Bill.Valid || !snap.Tip.Valid {
		return snap
	}

	snap.TipAmount = engine.CalculateTip(snap.Bill.Value, snap.Tip.Value)
	snap.Total = engine.CalculateTotal(snap.Bill.Value, snap.TipAmount)
	snap.RoundedTotal = engine.ApplyRounding(snap.Total, s.RoundMode)

	if s.SplitActive {
		split := engine.CalculateSplit(snap.RoundedTotal, s.SplitCount)
		snap.Split = &split
	}
	return snap
}
