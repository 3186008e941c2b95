package split

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Method defines how an expense is divided between its participants
type Method string

const (
	MethodEqual      Method = "EQUAL"
	MethodPercentage Method = "PERCENTAGE"
	MethodExact      Method = "EXACT"
)

// ParseMethod converts API input into a Method. Matching is case-insensitive
// and EVEN is accepted as an older name for EQUAL.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EQUAL", "EVEN":
		return MethodEqual, nil
	case "PERCENTAGE":
		return MethodPercentage, nil
	case "EXACT":
		return MethodExact, nil
	default:
		return Method(s), &SplitError{Kind: ErrUnknownMethod, Method: Method(s)}
	}
}

// Share is the raw value supplied for one participant: percentage points for
// PERCENTAGE, a currency amount for EXACT
type Share struct {
	ParticipantID string          `json:"participant_id"`
	Value         decimal.Decimal `json:"value"`
}

// Request is the input of a split calculation.
// Shares keeps the caller's order; the last entry absorbs rounding.
// A nil Shares slice means the caller did not provide any.
type Request struct {
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ParticipantIDs []string        `json:"participant_ids"`
	Method         Method          `json:"split_method"`
	Shares         []Share         `json:"shares,omitempty"`
}

// Allocation is the amount a single participant owes for the expense
type Allocation struct {
	ParticipantID string          `json:"participant_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// Result lists allocations in participant order
type Result []Allocation

// Sum returns the total of all allocations
func (r Result) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, a := range r {
		total = total.Add(a.Amount)
	}
	return total
}

// Amount returns the allocation for id, or zero when id is not part of the result
func (r Result) Amount(id string) decimal.Decimal {
	for _, a := range r {
		if a.ParticipantID == id {
			return a.Amount
		}
	}
	return decimal.Zero
}

// Map returns the allocations keyed by participant
func (r Result) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(r))
	for _, a := range r {
		m[a.ParticipantID] = a.Amount
	}
	return m
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Method returns the method this strategy implements
	Method() Method

	// Validate checks the request without computing anything
	Validate(req Request) error

	// Calculate computes the allocation for every participant
	Calculate(req Request) (Result, error)
}

// Factory creates split strategies based on the requested method
type Factory struct {
	strategies map[Method]Strategy
}

// NewSplitStrategyFactory creates a new factory instance
func NewSplitStrategyFactory() *Factory {
	return &Factory{
		strategies: map[Method]Strategy{
			MethodEqual:      &EqualStrategy{},
			MethodPercentage: &PercentageStrategy{},
			MethodExact:      &ExactStrategy{},
		},
	}
}

// Create returns the strategy registered for method
func (f *Factory) Create(method Method) (Strategy, error) {
	s, ok := f.strategies[method]
	if !ok {
		return nil, &SplitError{Kind: ErrUnknownMethod, Method: method}
	}
	return s, nil
}

// CreateFromString creates a strategy from a string method (useful for API requests)
func (f *Factory) CreateFromString(method string) (Strategy, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return f.Create(m)
}
