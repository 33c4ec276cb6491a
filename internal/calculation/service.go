// Package calculation exposes the engine over HTTP: one endpoint running
// the whole validate-compute-round-split pipeline plus endpoints for each
// stage on its own.
package calculation

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/adhishthite/tippr/internal/engine"
	"github.com/adhishthite/tippr/pkg/validate"
)

// Service handles calculation business logic. The engine itself is
// stateless, so the service only owns request validation.
type Service struct {
	validate *validator.Validate
}

// NewService creates a new calculation service
func NewService() *Service {
	return &Service{validate: validate.New()}
}

// Calculate runs the full pipeline: validate both inputs, compute tip and
// total, apply the rounding mode, and split when a participant count is
// present. Invalid bill or tip input is not an error here; the response
// carries the validation outcome and zero amounts, matching how the
// original shell showed a prompt instead of numbers.
func (s *Service) Calculate(req *CalculateRequest) (*CalculateResponse, error) {
	if err := validate.Flatten(s.validate.Struct(req)); err != nil {
		return nil, err
	}
	mode, err := engine.ParseRoundMode(req.RoundMode)
	if err != nil {
		return nil, err
	}

	res := &CalculateResponse{
		Bill: engine.ValidateBillAmount(req.Bill),
		Tip:  engine.ValidateTipPercent(req.Tip),
	}
	if !res.Bill.Valid || !res.Tip.Valid {
		return res, nil
	}

	res.TipAmount = engine.CalculateTip(res.Bill.Value, res.Tip.Value)
	res.Total = engine.CalculateTotal(res.Bill.Value, res.TipAmount)
	res.RoundedTotal = engine.ApplyRounding(res.Total, mode)

	if req.SplitCount != nil {
		split := engine.CalculateSplit(res.RoundedTotal, int(math.Floor(*req.SplitCount)))
		res.Split = &split
	}

	res.Display = &DisplayStrings{
		TipAmount:    engine.FormatWithSeparators(res.TipAmount),
		Total:        engine.FormatWithSeparators(res.Total),
		RoundedTotal: engine.FormatWithSeparators(res.RoundedTotal),
	}
	if res.Split != nil {
		res.Display.PerPerson = engine.FormatWithSeparators(res.Split.PerPerson)
	}
	return res, nil
}

// ValidateBill validates raw bill text on its own.
func (s *Service) ValidateBill(req *ValidateInputRequest) engine.ValidationResult {
	return engine.ValidateBillAmount(req.Raw)
}

// ValidateTip validates raw tip text on its own.
func (s *Service) ValidateTip(req *ValidateInputRequest) engine.ValidationResult {
	return engine.ValidateTipPercent(req.Raw)
}

// Split divides a total among participants without rerunning input
// validation.
func (s *Service) Split(req *SplitRequest) (*engine.SplitResult, error) {
	if err := validate.Flatten(s.validate.Struct(req)); err != nil {
		return nil, err
	}
	split := engine.CalculateSplit(req.Total, int(math.Floor(req.SplitCount)))
	return &split, nil
}

// Format renders a value with thousands separators and two decimals.
func (s *Service) Format(value float64) *FormatResponse {
	return &FormatResponse{
		Value:     value,
		Formatted: engine.FormatWithSeparators(value),
	}
}
