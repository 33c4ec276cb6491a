package engine

import (
	"fmt"
	"math"
)

// RoundMode selects whether and how a total is snapped to a whole currency
// unit.
type RoundMode string

const (
	RoundNone RoundMode = "none"
	RoundUp   RoundMode = "up"
	RoundDown RoundMode = "down"
)

// ParseRoundMode converts a wire string into a RoundMode. The empty string
// means no rounding.
func ParseRoundMode(s string) (RoundMode, error) {
	switch mode := RoundMode(s); mode {
	case RoundNone, RoundUp, RoundDown:
		return mode, nil
	case "":
		return RoundNone, nil
	default:
		return "", fmt.Errorf("unknown round mode: %q", s)
	}
}

// ApplyRounding snaps a total to a whole currency unit: up takes the
// ceiling, down the floor, none leaves the total untouched. This is
// whole-dollar granularity, distinct from the cent granularity of Round2.
func ApplyRounding(total float64, mode RoundMode) float64 {
	switch mode {
	case RoundUp:
		return math.Ceil(total)
	case RoundDown:
		return math.Floor(total)
	default:
		return total
	}
}
