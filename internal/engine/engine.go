// Package engine implements the calculation core of tippr: numeric input
// sanitization, bill and tip validation, tip arithmetic, whole-dollar
// rounding, and the fair-penny split of a total among participants.
//
// Every function is pure and stateless: values go in, results come out,
// nothing is retained between calls, so any function may be called from any
// goroutine without synchronization.
//
// Monetary amounts are float64 dollars kept honest by rounding to the
// nearest cent after every operation that can introduce binary
// floating-point error. The split engine works in integer cents end to end
// so the per-person shares always reconcile exactly with the total.
package engine

import "math"

// Policy thresholds for validation and splitting.
const (
	// LargeBillThreshold is the amount above which a bill is still accepted
	// but flagged with a warning.
	LargeBillThreshold = 10_000

	// MaxBillAmount is the largest accepted bill; anything above it is
	// rejected as a fat-finger entry. The boundary itself is accepted.
	MaxBillAmount = 1_000_000

	// MaxTipPercent is the ceiling a tip percentage is clamped to.
	MaxTipPercent = 100

	// MinSplitCount and MaxSplitCount bound how many people a total can be
	// split among.
	MinSplitCount = 1
	MaxSplitCount = 50

	// cardDigitThreshold is the digit count at which decimal-point-free
	// input is treated as a pasted card number rather than an amount.
	cardDigitThreshold = 13
)

// Round2 rounds a dollar amount to the nearest cent, halves away from zero:
// Round2(0.005) is 0.01. It is applied after every multiplication or
// division on amounts so float error never accumulates into a visible
// off-by-one-cent defect.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// centsToAmount converts integer cents back to a display dollar amount.
func centsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
