package engine

import (
	"fmt"
	"math"
)

// SplitResult describes how a total divides among participants.
//
// When the total does not divide evenly, RemainderCents of the
// participants pay one cent more than PerPerson and Distribution spells
// that out; for an even split RemainderCents is zero and Distribution is
// empty.
type SplitResult struct {
	PerPerson      float64 `json:"per_person"`
	RemainderCents int64   `json:"remainder_cents"`
	Distribution   string  `json:"distribution,omitempty"`
}

// CalculateSplit divides a total among splitCount people, clamping the
// count to [MinSplitCount, MaxSplitCount] first.
//
// All arithmetic happens in integer cents: the per-person share is the
// floor of totalCents/count and the remainder is whatever cents are left
// over, so base shares plus one-cent extras always reconcile exactly to
// the total. Deriving PerPerson from the floored cents (instead of
// rounding the float quotient independently) is what keeps the remainder
// from ever going negative.
func CalculateSplit(total float64, splitCount int) SplitResult {
	count := int64(ClampSplitCount(splitCount))

	totalCents := int64(math.Round(total * 100))
	if totalCents < 0 {
		// Negative totals have no meaningful split.
		totalCents = 0
	}

	perPersonCents := totalCents / count
	remainderCents := totalCents - perPersonCents*count

	result := SplitResult{
		PerPerson:      centsToAmount(perPersonCents),
		RemainderCents: remainderCents,
	}
	if remainderCents > 0 {
		result.Distribution = describeDistribution(count, perPersonCents, remainderCents)
	}
	return result
}

// ClampSplitCount forces a participant count into the allowed split
// bounds.
func ClampSplitCount(n int) int {
	if n < MinSplitCount {
		return MinSplitCount
	}
	if n > MaxSplitCount {
		return MaxSplitCount
	}
	return n
}

// describeDistribution renders the uneven-split summary, e.g.
// "1 person pays $19.66, 2 people pay $19.67". The remainder is always
// smaller than the count, so at least one participant pays the base share.
func describeDistribution(count, perPersonCents, remainderCents int64) string {
	base := count - remainderCents
	return fmt.Sprintf("%s $%s, %s $%s",
		payers(base), FormatWithSeparators(centsToAmount(perPersonCents)),
		payers(remainderCents), FormatWithSeparators(centsToAmount(perPersonCents+1)),
	)
}

// payers renders a participant count with the matching verb form.
func payers(n int64) string {
	if n == 1 {
		return "1 person pays"
	}
	return fmt.Sprintf("%d people pay", n)
}
