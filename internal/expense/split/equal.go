package split

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/pkg/money"
)

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the expense equally; the last participant absorbs the rounding
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct{}

// Method returns the split method identifier
func (s *EqualStrategy) Method() Method {
	return MethodEqual
}

// Validate checks if the request is valid for an equal split.
// Shares are ignored for this method.
func (s *EqualStrategy) Validate(req Request) error {
	return validateBase(req)
}

// Calculate gives everyone round2(total/n) and the last participant
// total - base*(n-1), so the allocations always add up to the total
func (s *EqualStrategy) Calculate(req Request) (Result, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	amount := total(req)
	n := len(req.ParticipantIDs)
	base := money.Round(amount.Div(decimal.NewFromInt(int64(n))))
	remainder := amount.Sub(base.Mul(decimal.NewFromInt(int64(n - 1))))

	out := make(Result, n)
	for i, id := range req.ParticipantIDs {
		share := base
		if i == n-1 {
			share = remainder
		}
		out[i] = Allocation{ParticipantID: id, Amount: share}
	}

	return out, nil
}
