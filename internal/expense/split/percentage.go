package split

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/pkg/money"
)

// =============================================================================
// PERCENTAGE SPLIT STRATEGY
// Each participant pays a percentage of the total
// =============================================================================

// PercentageStrategy implements the Strategy interface for percentage-based splits
type PercentageStrategy struct{}

// Method returns the split method identifier
func (s *PercentageStrategy) Method() Method {
	return MethodPercentage
}

// Validate checks that every participant has a percentage in [0, 100] and
// that the percentages add up to 100 within one hundredth
func (s *PercentageStrategy) Validate(req Request) error {
	if err := validateBase(req); err != nil {
		return err
	}
	if err := validateShareKeys(req); err != nil {
		return err
	}

	for _, sh := range req.Shares {
		if sh.Value.IsNegative() || sh.Value.GreaterThan(money.Hundred) {
			return &SplitError{Kind: ErrInvalidPercentage, ParticipantID: sh.ParticipantID, Value: sh.Value}
		}
	}

	sum := shareTotal(req.Shares)
	if !money.WithinTolerance(sum, money.Hundred) {
		return &SplitError{Kind: ErrPercentagesDoNotSum100, Value: sum, Expected: money.Hundred}
	}

	return nil
}

// Calculate walks the shares in order, rounding each portion to cents.
// The last share gets whatever is left of the total.
func (s *PercentageStrategy) Calculate(req Request) (Result, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	amount := total(req)
	allocated := decimal.Zero
	amounts := make(map[string]decimal.Decimal, len(req.Shares))

	last := len(req.Shares) - 1
	for i, sh := range req.Shares {
		if i == last {
			amounts[sh.ParticipantID] = amount.Sub(allocated)
			break
		}
		portion := money.Round(amount.Mul(sh.Value).Div(money.Hundred))
		amounts[sh.ParticipantID] = portion
		allocated = allocated.Add(portion)
	}

	return inParticipantOrder(req.ParticipantIDs, amounts), nil
}
