package calculation

import (
	"math"
	"testing"

	"github.com/adhishthite/tippr/internal/engine"
)

func floatPtr(v float64) *float64 { return &v }

func TestCalculate(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name         string
		req          CalculateRequest
		wantTip      float64
		wantTotal    float64
		wantRounded  float64
		validateFunc func(t *testing.T, res *CalculateResponse)
	}{
		{
			name:        "dinner for four rounds up and splits evenly",
			req:         CalculateRequest{Bill: "45.00", Tip: "20", RoundMode: "up", SplitCount: floatPtr(4)},
			wantTip:     9,
			wantTotal:   54,
			wantRounded: 54,
			validateFunc: func(t *testing.T, res *CalculateResponse) {
				if res.Split == nil {
					t.Fatal("Split = nil, want a result")
				}
				if res.Split.PerPerson != 13.5 || res.Split.RemainderCents != 0 {
					t.Errorf("Split = %+v, want 13.50 per person with no remainder", res.Split)
				}
				if res.Split.Distribution != "" {
					t.Errorf("Distribution = %q, want empty for an even split", res.Split.Distribution)
				}
				if res.Display.PerPerson != "13.50" {
					t.Errorf("Display.PerPerson = %q, want %q", res.Display.PerPerson, "13.50")
				}
			},
		},
		{
			name:        "uneven three-way split distributes two pennies",
			req:         CalculateRequest{Bill: "50.00", Tip: "18", SplitCount: floatPtr(3)},
			wantTip:     9,
			wantTotal:   59,
			wantRounded: 59,
			validateFunc: func(t *testing.T, res *CalculateResponse) {
				if res.Split == nil {
					t.Fatal("Split = nil, want a result")
				}
				if res.Split.PerPerson != 19.66 || res.Split.RemainderCents != 2 {
					t.Errorf("Split = %+v, want 19.66 per person with remainder 2", res.Split)
				}
				if res.Split.Distribution != "1 person pays $19.66, 2 people pay $19.67" {
					t.Errorf("Distribution = %q", res.Split.Distribution)
				}
			},
		},
		{
			name:        "round down shaves the cents before splitting",
			req:         CalculateRequest{Bill: "41.37", Tip: "15", RoundMode: "down", SplitCount: floatPtr(2)},
			wantTip:     6.21,
			wantTotal:   47.58,
			wantRounded: 47,
			validateFunc: func(t *testing.T, res *CalculateResponse) {
				if res.Split.PerPerson != 23.5 {
					t.Errorf("Split.PerPerson = %v, want 23.50", res.Split.PerPerson)
				}
			},
		},
		{
			name:        "capped tip computes at one hundred percent",
			req:         CalculateRequest{Bill: "40", Tip: "150"},
			wantTip:     40,
			wantTotal:   80,
			wantRounded: 80,
			validateFunc: func(t *testing.T, res *CalculateResponse) {
				if !res.Tip.Capped || res.Tip.Value != 100 {
					t.Errorf("Tip = %+v, want capped at 100", res.Tip)
				}
				if res.Split != nil {
					t.Error("Split set without a split count")
				}
			},
		},
		{
			name: "fractional split count floors before clamping",
			req:  CalculateRequest{Bill: "30", Tip: "0", SplitCount: floatPtr(3.9)},
			validateFunc: func(t *testing.T, res *CalculateResponse) {
				if res.Split.PerPerson != 10 {
					t.Errorf("Split.PerPerson = %v, want 10 from a 3-way split", res.Split.PerPerson)
				}
			},
			wantTip:     0,
			wantTotal:   30,
			wantRounded: 30,
		},
		{
			name: "large bill keeps separators in display strings",
			req:  CalculateRequest{Bill: "12345.67", Tip: "10"},
			validateFunc: func(t *testing.T, res *CalculateResponse) {
				if res.Bill.Warning == "" {
					t.Error("Bill.Warning empty, want the large-amount warning")
				}
				if res.Display.Total != "13,580.24" {
					t.Errorf("Display.Total = %q, want %q", res.Display.Total, "13,580.24")
				}
			},
			wantTip:     1234.57,
			wantTotal:   13580.24,
			wantRounded: 13580.24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Calculate(&tt.req)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if math.Abs(res.TipAmount-tt.wantTip) > 1e-9 {
				t.Errorf("TipAmount = %v, want %v", res.TipAmount, tt.wantTip)
			}
			if math.Abs(res.Total-tt.wantTotal) > 1e-9 {
				t.Errorf("Total = %v, want %v", res.Total, tt.wantTotal)
			}
			if math.Abs(res.RoundedTotal-tt.wantRounded) > 1e-9 {
				t.Errorf("RoundedTotal = %v, want %v", res.RoundedTotal, tt.wantRounded)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, res)
			}
		})
	}
}

func TestCalculateInvalidInputIsNotAnError(t *testing.T) {
	svc := NewService()

	res, err := svc.Calculate(&CalculateRequest{Bill: "4111111111111111", Tip: "20"})
	if err != nil {
		t.Fatalf("Calculate() error = %v, rejected input must come back as data", err)
	}
	if res.Bill.Valid {
		t.Error("Bill.Valid = true, want the card-shaped input rejected")
	}
	if res.Bill.Err != engine.MsgInvalidBill {
		t.Errorf("Bill.Err = %q, want %q", res.Bill.Err, engine.MsgInvalidBill)
	}
	if res.TipAmount != 0 || res.Total != 0 || res.RoundedTotal != 0 {
		t.Errorf("amounts = %v/%v/%v, want all zero when an input is invalid",
			res.TipAmount, res.Total, res.RoundedTotal)
	}
	if res.Split != nil || res.Display != nil {
		t.Error("Split/Display set, want neither when an input is invalid")
	}
}

func TestCalculateRejectsUnknownRoundMode(t *testing.T) {
	svc := NewService()

	if _, err := svc.Calculate(&CalculateRequest{Bill: "10", Tip: "10", RoundMode: "sideways"}); err == nil {
		t.Error("Calculate() error = nil, want rejection of the unknown round mode")
	}
}

func TestSplit(t *testing.T) {
	svc := NewService()

	res, err := svc.Split(&SplitRequest{Total: 59, SplitCount: 3})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if res.PerPerson != 19.66 || res.RemainderCents != 2 {
		t.Errorf("Split() = %+v, want 19.66 per person with remainder 2", res)
	}

	if _, err := svc.Split(&SplitRequest{Total: -1, SplitCount: 2}); err == nil {
		t.Error("Split() with negative total: error = nil, want validation failure")
	}
}

func TestFormat(t *testing.T) {
	svc := NewService()

	got := svc.Format(1234.5)
	if got.Formatted != "1,234.50" {
		t.Errorf("Format(1234.5).Formatted = %q, want %q", got.Formatted, "1,234.50")
	}
	if got.Value != 1234.5 {
		t.Errorf("Format(1234.5).Value = %v, want 1234.5", got.Value)
	}
}
