package split

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/pkg/money"
)

// =============================================================================
// EXACT SPLIT STRATEGY
// Each participant owes an amount entered by the user
// =============================================================================

// ExactStrategy implements the Strategy interface for exact amount splits
type ExactStrategy struct{}

// Method returns the split method identifier
func (s *ExactStrategy) Method() Method {
	return MethodExact
}

// Validate checks that no amount is negative and that the amounts match the
// total within one cent
func (s *ExactStrategy) Validate(req Request) error {
	if err := validateBase(req); err != nil {
		return err
	}
	if err := validateShareKeys(req); err != nil {
		return err
	}

	for _, sh := range req.Shares {
		if sh.Value.IsNegative() {
			return &SplitError{Kind: ErrInvalidExactAmount, ParticipantID: sh.ParticipantID, Value: sh.Value}
		}
	}

	amount := total(req)
	sum := shareTotal(req.Shares)
	if !money.WithinTolerance(sum, amount) {
		return &SplitError{Kind: ErrExactAmountsDoNotSumToTotal, Value: sum, Expected: amount}
	}

	return nil
}

// Calculate rounds each amount to cents. Amounts are never shifted between
// participants, so the result may differ from the total by the tolerance.
func (s *ExactStrategy) Calculate(req Request) (Result, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	amounts := make(map[string]decimal.Decimal, len(req.Shares))
	for _, sh := range req.Shares {
		amounts[sh.ParticipantID] = money.Round(sh.Value)
	}

	return inParticipantOrder(req.ParticipantIDs, amounts), nil
}
