package expense

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/internal/group"
)

//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go

// Store persists expenses together with their shares.
type Store interface {
	// Create writes the expense and its shares in one transaction.
	Create(ctx context.Context, e *Expense, shares []*Share) (*ExpenseWithShares, error)
	GetByID(ctx context.Context, id int64) (*Expense, error)
	GetShares(ctx context.Context, expenseID int64) ([]*Share, error)
	ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error)
	ListWithSharesByGroupID(ctx context.Context, groupID int64) ([]*ExpenseWithShares, error)
	Search(ctx context.Context, filter SearchFilter) ([]*Expense, int, error)
	Update(ctx context.Context, id int64, req *UpdateExpenseRequest) (*Expense, error)
	Delete(ctx context.Context, id int64) error
}

// GroupAccess answers membership questions about groups.
type GroupAccess interface {
	CheckAccess(ctx context.Context, groupID, userID int64) (*group.Group, error)
	CheckWritable(ctx context.Context, groupID, userID int64) (*group.Group, error)
	IsActiveMember(ctx context.Context, groupID, userID int64) (bool, error)
}

// Notifier tells participants about new expenses.
type Notifier interface {
	NotifyExpenseAdded(ctx context.Context, recipientID int64, payerName, description string, share decimal.Decimal, expenseID int64) error
}
