package expense

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/internal/expense/split"
)

// Category classifies an expense for reporting and search
type Category string

const (
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryAccommodation Category = "ACCOMMODATION"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryBills         Category = "BILLS"
	CategoryOther         Category = "OTHER"
)

// ParseCategory returns the category named by s, case-insensitively
func ParseCategory(s string) (Category, bool) {
	switch c := Category(strings.ToUpper(strings.TrimSpace(s))); c {
	case CategoryFood, CategoryTransport, CategoryAccommodation, CategoryEntertainment, CategoryBills, CategoryOther:
		return c, true
	default:
		return "", false
	}
}

// Expense represents an expense in the system
type Expense struct {
	ID          int64           `json:"id"`
	GroupID     int64           `json:"group_id"`
	PayerID     int64           `json:"payer_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	SplitMethod split.Method    `json:"split_method"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`

	// Populated via JOIN
	PayerName string `json:"payer_name,omitempty"`
}

// Share is one participant's portion of an expense
type Share struct {
	ID        int64           `json:"id"`
	ExpenseID int64           `json:"expense_id"`
	UserID    int64           `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Position  int             `json:"position"`

	// Populated via JOIN
	UserName string `json:"user_name,omitempty"`
}

// ExpenseWithShares combines an expense with its computed shares
type ExpenseWithShares struct {
	Expense *Expense
	Shares  []*Share
}

// SearchFilter narrows an expense search to the groups UserID belongs to
type SearchFilter struct {
	UserID    int64
	Query     string
	Category  Category
	GroupID   int64
	From      *time.Time
	To        *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Limit     int
	Offset    int
}
