package settlement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/internal/settlement/debts"
)

// CreateSettlementRequest records a payment from the caller to another member
type CreateSettlementRequest struct {
	ToUserID int64           `json:"to_user_id" validate:"required,gt=0"`
	Amount   decimal.Decimal `json:"amount"`
	Date     *time.Time      `json:"date,omitempty"`
	Comment  *string         `json:"comment,omitempty" validate:"omitempty,max=500"`
}

// SettlementResponse represents the response for a settlement
type SettlementResponse struct {
	ID         int64           `json:"id"`
	GroupID    int64           `json:"group_id"`
	FromUserID int64           `json:"from_user_id"`
	FromName   string          `json:"from_name,omitempty"`
	ToUserID   int64           `json:"to_user_id"`
	ToName     string          `json:"to_name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Comment    *string         `json:"comment,omitempty"`
	Date       string          `json:"date"`
	CreatedAt  string          `json:"created_at"`
}

// BalancesResponse is who owes whom in a group
type BalancesResponse struct {
	Balances       []debts.Balance       `json:"balances"`
	OptimizedDebts []debts.OptimizedDebt `json:"optimized_debts"`
	Summary        debts.Summary         `json:"summary"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:         s.ID,
		GroupID:    s.GroupID,
		FromUserID: s.FromUserID,
		FromName:   s.FromName,
		ToUserID:   s.ToUserID,
		ToName:     s.ToName,
		Amount:     s.Amount,
		Comment:    s.Comment,
		Date:       s.Date.UTC().Format("2006-01-02T15:04:05Z"),
		CreatedAt:  s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// NewBalancesResponse drops the report fields that are only used internally
func NewBalancesResponse(report *debts.Report) *BalancesResponse {
	return &BalancesResponse{
		Balances:       report.Balances,
		OptimizedDebts: report.OptimizedDebts,
		Summary:        report.Summary,
	}
}
