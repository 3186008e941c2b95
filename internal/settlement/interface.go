package settlement

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/internal/expense"
	"github.com/fkhayef/splitbill/internal/group"
)

//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go

// Store persists settlements.
type Store interface {
	Create(ctx context.Context, s *Settlement) (*Settlement, error)
	GetByID(ctx context.Context, id int64) (*Settlement, error)
	// ListByGroupID returns settlements newest first.
	ListByGroupID(ctx context.Context, groupID int64) ([]*Settlement, error)
	// LedgerByGroupID returns settlements in the order they were recorded.
	LedgerByGroupID(ctx context.Context, groupID int64) ([]*Settlement, error)
}

// GroupAccess answers membership questions about groups.
type GroupAccess interface {
	CheckAccess(ctx context.Context, groupID, userID int64) (*group.Group, error)
	CheckWritable(ctx context.Context, groupID, userID int64) (*group.Group, error)
	IsActiveMember(ctx context.Context, groupID, userID int64) (bool, error)
}

// ExpenseLedger supplies a group's expenses with their stored shares.
type ExpenseLedger interface {
	LedgerExpenses(ctx context.Context, groupID int64) ([]*expense.ExpenseWithShares, error)
}

// Notifier tells the receiver about a recorded payment.
type Notifier interface {
	NotifySettlementRecorded(ctx context.Context, recipientID int64, payerName string, amount decimal.Decimal, settlementID int64) error
}
