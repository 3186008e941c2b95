package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount               = errors.New("invalid amount")
	ErrEmptyParticipants           = errors.New("empty participants")
	ErrDuplicateParticipant        = errors.New("duplicate participant")
	ErrUnknownMethod               = errors.New("unknown split method")
	ErrMissingShares               = errors.New("missing shares")
	ErrMissingShareFor             = errors.New("missing share for participant")
	ErrExtraShareFor               = errors.New("extra share for participant")
	ErrDuplicateShare              = errors.New("duplicate share")
	ErrInvalidPercentage           = errors.New("invalid percentage")
	ErrPercentagesDoNotSum100      = errors.New("percentages do not sum to 100")
	ErrInvalidExactAmount          = errors.New("invalid exact amount")
	ErrExactAmountsDoNotSumToTotal = errors.New("exact amounts do not sum to total")
)

// SplitError describes why a split request was rejected.
// Kind is one of the sentinel errors above and is what errors.Is matches.
type SplitError struct {
	Kind          error
	Method        Method
	ParticipantID string
	Value         decimal.Decimal
	Expected      decimal.Decimal
}

// Error returns a message suitable for showing to the person who entered the split
func (e *SplitError) Error() string {
	switch e.Kind {
	case ErrInvalidAmount:
		return "Amount must be greater than 0"
	case ErrEmptyParticipants:
		return "At least one participant required"
	case ErrDuplicateParticipant:
		return fmt.Sprintf("Duplicate participants: %s", e.ParticipantID)
	case ErrUnknownMethod:
		return fmt.Sprintf("Unknown split method: %s", e.Method)
	case ErrMissingShares:
		return fmt.Sprintf("Splits required for %s method", e.Method)
	case ErrMissingShareFor:
		return fmt.Sprintf("Missing split for participant: %s", e.ParticipantID)
	case ErrExtraShareFor:
		return fmt.Sprintf("Extra participant in splits: %s", e.ParticipantID)
	case ErrDuplicateShare:
		return fmt.Sprintf("Duplicate split for participant: %s", e.ParticipantID)
	case ErrInvalidPercentage:
		return fmt.Sprintf("Percentage for %s must be between 0 and 100, got %s", e.ParticipantID, e.Value)
	case ErrPercentagesDoNotSum100:
		return fmt.Sprintf("Percentages must sum to 100, got %s", e.Value)
	case ErrInvalidExactAmount:
		return fmt.Sprintf("Exact amount for %s must not be negative, got %s", e.ParticipantID, e.Value)
	case ErrExactAmountsDoNotSumToTotal:
		return fmt.Sprintf("Amounts must sum to %s, got %s", e.Expected, e.Value)
	default:
		return fmt.Sprintf("invalid split: %v", e.Kind)
	}
}

// Unwrap exposes the sentinel kind to errors.Is
func (e *SplitError) Unwrap() error {
	return e.Kind
}
