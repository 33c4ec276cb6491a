package calculation

import "github.com/adhishthite/tippr/internal/engine"

// CalculateRequest carries one full calculation: both raw inputs, the
// rounding mode, and an optional participant count. Bill and tip arrive as
// the raw text the user typed; the engine sanitizes and validates them.
type CalculateRequest struct {
	Bill       string   `json:"bill"`
	Tip        string   `json:"tip"`
	RoundMode  string   `json:"round_mode" validate:"omitempty,oneof=none up down"`
	SplitCount *float64 `json:"split_count,omitempty" validate:"omitempty,gte=0"`
}

// CalculateResponse is the full pipeline result: validation outcomes for
// both inputs, the computed amounts, the optional split, and the
// display-ready strings. Amounts are zero whenever either input is
// invalid; the validation results carry the error text.
type CalculateResponse struct {
	Bill         engine.ValidationResult `json:"bill"`
	Tip          engine.ValidationResult `json:"tip"`
	TipAmount    float64                 `json:"tip_amount"`
	Total        float64                 `json:"total"`
	RoundedTotal float64                 `json:"rounded_total"`
	Split        *engine.SplitResult     `json:"split,omitempty"`
	Display      *DisplayStrings         `json:"display,omitempty"`
}

// DisplayStrings holds every monetary output formatted with thousands
// separators and two decimals, ready for a label.
type DisplayStrings struct {
	TipAmount    string `json:"tip_amount"`
	Total        string `json:"total"`
	RoundedTotal string `json:"rounded_total"`
	PerPerson    string `json:"per_person,omitempty"`
}

// ValidateInputRequest carries one raw text field to validate.
type ValidateInputRequest struct {
	Raw string `json:"raw"`
}

// SplitRequest divides a known-good total among participants. Fractional
// counts are floored before the engine clamps them to the split bounds.
type SplitRequest struct {
	Total      float64 `json:"total" validate:"gte=0"`
	SplitCount float64 `json:"split_count" validate:"gte=0"`
}

// FormatResponse pairs a value with its separator-formatted rendering.
type FormatResponse struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}
