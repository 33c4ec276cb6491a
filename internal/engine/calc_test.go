package engine

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"already at cent precision", 13.5, 13.5},
		{"half rounds away from zero", 0.005, 0.01},
		{"half rounds away from zero above one", 2.675, 2.68},
		{"below half rounds down", 1.994, 1.99},
		{"float noise collapses", 0.1 + 0.2, 0.3},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.value); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Round2(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestCalculateTip(t *testing.T) {
	tests := []struct {
		name       string
		bill       float64
		tipPercent float64
		want       float64
	}{
		{"twenty percent of 45", 45, 20, 9},
		{"eighteen percent of 50", 50, 18, 9},
		{"rounds to nearest cent", 10.55, 18, 1.9},
		{"zero bill yields zero", 0, 20, 0},
		{"zero percent yields zero", 50, 0, 0},
		{"negative bill yields zero", -5, 20, 0},
		{"negative percent yields zero", 50, -1, 0},
		{"cap-sized inputs", 1000000, 100, 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateTip(tt.bill, tt.tipPercent); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateTip(%v, %v) = %v, want %v", tt.bill, tt.tipPercent, got, tt.want)
			}
		})
	}
}

// CalculateTip must agree with Round2(bill*percent/100) across the whole
// non-negative input plane, not just hand-picked points.
func TestCalculateTipMatchesRoundedProduct(t *testing.T) {
	bills := []float64{0.01, 0.99, 1, 9.99, 45, 59.13, 100, 2048.77, 10000, 999999.99}
	percents := []float64{0, 0.01, 1, 10, 12.5, 15, 18, 20, 33.33, 100}

	for _, bill := range bills {
		for _, pct := range percents {
			want := Round2(bill * pct / 100)
			if got := CalculateTip(bill, pct); got != want {
				t.Errorf("CalculateTip(%v, %v) = %v, want Round2 product %v", bill, pct, got, want)
			}
		}
	}
}

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name string
		bill float64
		tip  float64
		want float64
	}{
		{"whole amounts", 45, 9, 54},
		{"cents survive", 19.99, 3.6, 23.59},
		{"float noise collapses", 0.1, 0.2, 0.3},
		{"zero bill", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateTotal(tt.bill, tt.tip); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateTotal(%v, %v) = %v, want %v", tt.bill, tt.tip, got, tt.want)
			}
		})
	}
}
