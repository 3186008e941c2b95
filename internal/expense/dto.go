package expense

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/internal/expense/split"
)

// ShareInput is the raw split value for one participant
type ShareInput struct {
	UserID int64           `json:"user_id"`
	Value  decimal.Decimal `json:"value"`
}

// SplitInput describes how an amount is divided. Its checks are left to the
// split calculator so clients get its messages.
type SplitInput struct {
	Amount         decimal.Decimal `json:"amount"`
	SplitMethod    string          `json:"split_method"`
	ParticipantIDs []int64         `json:"participant_ids"`
	Shares         []ShareInput    `json:"shares,omitempty"`
}

// SplitRequest converts the input into a calculator request. Unknown methods
// are passed through so the calculator reports them in order.
func (in *SplitInput) SplitRequest() split.Request {
	method, _ := split.ParseMethod(in.SplitMethod)

	ids := make([]string, len(in.ParticipantIDs))
	for i, id := range in.ParticipantIDs {
		ids[i] = userKey(id)
	}

	var shares []split.Share
	if in.Shares != nil {
		shares = make([]split.Share, len(in.Shares))
		for i, s := range in.Shares {
			shares[i] = split.Share{ParticipantID: userKey(s.UserID), Value: s.Value}
		}
	}

	return split.Request{
		TotalAmount:    in.Amount,
		ParticipantIDs: ids,
		Method:         method,
		Shares:         shares,
	}
}

func userKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// CreateExpenseRequest represents the request to create an expense paid by the caller
type CreateExpenseRequest struct {
	GroupID     int64      `json:"group_id" validate:"required,gt=0"`
	Description string     `json:"description" validate:"required,min=1,max=200"`
	Category    Category   `json:"category,omitempty" validate:"omitempty,oneof=FOOD TRANSPORT ACCOMMODATION ENTERTAINMENT BILLS OTHER"`
	Date        *time.Time `json:"date,omitempty"`
	SplitInput
}

// UpdateExpenseRequest changes the descriptive fields of an expense. The
// amount and split are fixed once recorded.
type UpdateExpenseRequest struct {
	Description *string    `json:"description,omitempty" validate:"omitempty,min=1,max=200"`
	Category    *Category  `json:"category,omitempty" validate:"omitempty,oneof=FOOD TRANSPORT ACCOMMODATION ENTERTAINMENT BILLS OTHER"`
	Date        *time.Time `json:"date,omitempty"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          int64            `json:"id"`
	GroupID     int64            `json:"group_id"`
	PayerID     int64            `json:"payer_id"`
	PayerName   string           `json:"payer_name,omitempty"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Category    Category         `json:"category"`
	SplitMethod split.Method     `json:"split_method"`
	Date        string           `json:"date"`
	CreatedAt   string           `json:"created_at"`
	Shares      []*ShareResponse `json:"shares,omitempty"`
}

// ShareResponse represents one participant's share
type ShareResponse struct {
	UserID   int64           `json:"user_id"`
	UserName string          `json:"user_name,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		PayerID:     e.PayerID,
		PayerName:   e.PayerName,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		SplitMethod: e.SplitMethod,
		Date:        e.Date.UTC().Format("2006-01-02T15:04:05Z"),
		CreatedAt:   e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts an expense and its shares to a single response
func (e *ExpenseWithShares) ToResponse() *ExpenseResponse {
	resp := e.Expense.ToResponse()
	resp.Shares = make([]*ShareResponse, len(e.Shares))
	for i, s := range e.Shares {
		resp.Shares[i] = &ShareResponse{UserID: s.UserID, UserName: s.UserName, Amount: s.Amount}
	}
	return resp
}
