package split

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/pkg/money"
)

// validateBase runs the checks shared by every method
func validateBase(req Request) error {
	if !total(req).IsPositive() {
		return &SplitError{Kind: ErrInvalidAmount, Value: req.TotalAmount}
	}
	if len(req.ParticipantIDs) == 0 {
		return &SplitError{Kind: ErrEmptyParticipants}
	}

	seen := make(map[string]struct{}, len(req.ParticipantIDs))
	for _, id := range req.ParticipantIDs {
		if _, ok := seen[id]; ok {
			return &SplitError{Kind: ErrDuplicateParticipant, ParticipantID: id}
		}
		seen[id] = struct{}{}
	}
	return nil
}

// validateShareKeys checks that shares name exactly the participants, once each
func validateShareKeys(req Request) error {
	if req.Shares == nil {
		return &SplitError{Kind: ErrMissingShares, Method: req.Method}
	}

	byID := make(map[string]struct{}, len(req.Shares))
	duplicate := ""
	for _, s := range req.Shares {
		if _, ok := byID[s.ParticipantID]; ok && duplicate == "" {
			duplicate = s.ParticipantID
		}
		byID[s.ParticipantID] = struct{}{}
	}

	participants := make(map[string]struct{}, len(req.ParticipantIDs))
	for _, id := range req.ParticipantIDs {
		participants[id] = struct{}{}
		if _, ok := byID[id]; !ok {
			return &SplitError{Kind: ErrMissingShareFor, ParticipantID: id}
		}
	}
	for _, s := range req.Shares {
		if _, ok := participants[s.ParticipantID]; !ok {
			return &SplitError{Kind: ErrExtraShareFor, ParticipantID: s.ParticipantID}
		}
	}
	if duplicate != "" {
		return &SplitError{Kind: ErrDuplicateShare, ParticipantID: duplicate}
	}
	return nil
}

// shareTotal adds up the raw share values
func shareTotal(shares []Share) decimal.Decimal {
	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Value)
	}
	return total
}

// inParticipantOrder reorders amounts keyed by participant into a Result
func inParticipantOrder(ids []string, amounts map[string]decimal.Decimal) Result {
	out := make(Result, len(ids))
	for i, id := range ids {
		out[i] = Allocation{ParticipantID: id, Amount: amounts[id]}
	}
	return out
}

func total(req Request) decimal.Decimal {
	return money.Round(req.TotalAmount)
}
