package engine

import (
	"strconv"
	"strings"
)

// Messages surfaced verbatim to the user by the presentation layer.
const (
	// MsgInvalidBill is the error for any rejected bill input.
	MsgInvalidBill = "Please enter a valid bill amount"

	// MsgInvalidTip is the error for any rejected tip input.
	MsgInvalidTip = "Please enter a valid tip percentage"

	// MsgLargeBill is the warning attached to an accepted but unusually
	// large bill.
	MsgLargeBill = "That's a large amount - continue?"

	// MsgTipCapped is the warning attached when a tip percentage is
	// clamped to MaxTipPercent.
	MsgTipCapped = "Maximum tip is 100%"
)

// ValidationResult reports the outcome of validating one raw input.
// Invalid results always carry a zero Value and a populated Err; valid
// results are usable regardless of whether a Warning is present.
type ValidationResult struct {
	Valid   bool    `json:"valid"`
	Value   float64 `json:"value"`
	Warning string  `json:"warning,omitempty"`
	Err     string  `json:"error,omitempty"`
	Capped  bool    `json:"capped,omitempty"`
}

// ValidateBillAmount checks raw bill input and returns the sanitized
// amount rounded to the cent.
//
// Empty or all-whitespace input is the "not yet entered" state: valid with
// a zero amount and no messages. Input whose digits-only view reaches
// cardDigitThreshold digits with no decimal point anywhere is rejected
// before any parsing happens; that shape is a pasted card number, not a
// bill. Amounts above MaxBillAmount are rejected as implausible, amounts
// above LargeBillThreshold are accepted with a warning.
func ValidateBillAmount(raw string) ValidationResult {
	if strings.TrimSpace(raw) == "" {
		return ValidationResult{Valid: true}
	}

	if looksLikeCardNumber(raw) {
		return ValidationResult{Err: MsgInvalidBill}
	}

	value, err := strconv.ParseFloat(SanitizeNumericText(raw), 64)
	if err != nil || value < 0 {
		return ValidationResult{Err: MsgInvalidBill}
	}
	if value > MaxBillAmount {
		return ValidationResult{Err: MsgInvalidBill}
	}

	result := ValidationResult{Valid: true, Value: Round2(value)}
	if value > LargeBillThreshold {
		result.Warning = MsgLargeBill
	}
	return result
}

// ValidateTipPercent checks raw tip input and returns the sanitized
// percentage rounded to two decimals. Values above MaxTipPercent are not
// rejected but clamped, with Capped set so callers can tell the
// difference.
//
// Unlike ValidateBillAmount there is no empty-input special case: an empty
// string fails to parse and is rejected.
func ValidateTipPercent(raw string) ValidationResult {
	value, err := strconv.ParseFloat(SanitizeNumericText(raw), 64)
	if err != nil || value < 0 {
		return ValidationResult{Err: MsgInvalidTip}
	}
	if value > MaxTipPercent {
		return ValidationResult{Valid: true, Value: MaxTipPercent, Warning: MsgTipCapped, Capped: true}
	}
	return ValidationResult{Valid: true, Value: Round2(value)}
}

// looksLikeCardNumber reports whether raw has enough digits to be a pasted
// card number. A decimal point anywhere disarms the check: people type
// decimal points into amounts, not into card numbers.
func looksLikeCardNumber(raw string) bool {
	if strings.ContainsRune(raw, '.') {
		return false
	}
	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= cardDigitThreshold
}
