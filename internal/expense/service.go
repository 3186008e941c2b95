package expense

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/internal/events"
	"github.com/fkhayef/splitbill/internal/expense/split"
	"github.com/fkhayef/splitbill/pkg/money"
)

// Common errors
var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrNotPayer             = errors.New("only the payer or the group owner can change this expense")
	ErrParticipantNotMember = errors.New("all participants must be group members")
	ErrAmountTooLarge       = errors.New("amount must not exceed 999999.99")
)

// MaxAmount is the largest amount a single expense may record
var MaxAmount = decimal.RequireFromString("999999.99")

// Service handles expense business logic
type Service struct {
	repo       Store
	calculator *split.Calculator
	groups     GroupAccess
	notifier   Notifier
	events     events.Logger
}

// NewService creates a new expense service with dependencies injected
func NewService(repo Store, calculator *split.Calculator, groups GroupAccess, notifier Notifier, logger events.Logger) *Service {
	if calculator == nil {
		calculator = split.NewCalculator(nil)
	}
	if logger == nil {
		logger = events.Discard
	}
	return &Service{
		repo:       repo,
		calculator: calculator,
		groups:     groups,
		notifier:   notifier,
		events:     logger,
	}
}

// ValidateSplit checks a split without persisting anything
func (s *Service) ValidateSplit(in *SplitInput) split.ValidationResult {
	return s.calculator.ValidateSplit(in.SplitRequest())
}

// CreateExpense records an expense paid by payerID and its computed shares
func (s *Service) CreateExpense(ctx context.Context, payerID int64, req *CreateExpenseRequest) (*ExpenseWithShares, error) {
	if _, err := s.groups.CheckWritable(ctx, req.GroupID, payerID); err != nil {
		return nil, err
	}

	splitReq := req.SplitRequest()
	result, err := s.calculator.CalculateSplit(splitReq)
	if err != nil {
		return nil, err
	}
	if splitReq.TotalAmount.GreaterThan(MaxAmount) {
		return nil, ErrAmountTooLarge
	}

	for _, id := range req.ParticipantIDs {
		ok, err := s.groups.IsActiveMember(ctx, req.GroupID, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrParticipantNotMember
		}
	}

	category := req.Category
	if category == "" {
		category = CategoryOther
	}
	date := time.Now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}

	expense := &Expense{
		GroupID:     req.GroupID,
		PayerID:     payerID,
		Description: req.Description,
		Amount:      money.Round(splitReq.TotalAmount),
		Category:    category,
		SplitMethod: splitReq.Method,
		Date:        date,
	}

	shares := make([]*Share, len(req.ParticipantIDs))
	for i, id := range req.ParticipantIDs {
		shares[i] = &Share{
			UserID:   id,
			Amount:   result.Amount(userKey(id)),
			Position: i,
		}
	}

	created, err := s.repo.Create(ctx, expense, shares)
	if err != nil {
		return nil, err
	}

	for _, share := range created.Shares {
		if share.UserID == payerID {
			continue
		}
		err := s.notifier.NotifyExpenseAdded(ctx, share.UserID, created.Expense.PayerName, created.Expense.Description, share.Amount, created.Expense.ID)
		if err != nil {
			slog.Warn("failed to send expense notification", "expense_id", created.Expense.ID, "user_id", share.UserID, "error", err)
		}
	}

	s.events.Log(events.NewEvent(
		events.WithType(events.TypeExpenseCreated),
		events.WithActor(payerID),
		events.WithGroup(req.GroupID),
		events.WithData(map[string]any{
			"expense_id":   created.Expense.ID,
			"amount":       created.Expense.Amount.StringFixed(money.Places),
			"split_method": created.Expense.SplitMethod,
		}),
	))

	return created, nil
}

// GetExpense retrieves an expense with its shares for a group member
func (s *Service) GetExpense(ctx context.Context, id, userID int64) (*ExpenseWithShares, error) {
	expense, err := s.getExpense(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.groups.CheckAccess(ctx, expense.GroupID, userID); err != nil {
		return nil, err
	}

	shares, err := s.repo.GetShares(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithShares{Expense: expense, Shares: shares}, nil
}

// ListByGroupID retrieves expenses for a group, newest first
func (s *Service) ListByGroupID(ctx context.Context, groupID, userID int64, page, perPage int) ([]*Expense, int, error) {
	if _, err := s.groups.CheckAccess(ctx, groupID, userID); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByGroupID(ctx, groupID, perPage, offset)
}

// Search finds expenses in the caller's groups
func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]*Expense, int, error) {
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.Search(ctx, filter)
}

// Update changes an expense's description, category or date
func (s *Service) Update(ctx context.Context, id, userID int64, req *UpdateExpenseRequest) (*Expense, error) {
	if _, err := s.authorizeChange(ctx, id, userID); err != nil {
		return nil, err
	}
	if req.Date != nil {
		date := req.Date.UTC()
		req.Date = &date
	}
	return s.repo.Update(ctx, id, req)
}

// Delete removes an expense and its shares
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	expense, err := s.authorizeChange(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Log(events.NewEvent(
		events.WithType(events.TypeExpenseDeleted),
		events.WithActor(userID),
		events.WithGroup(expense.GroupID),
		events.WithData(map[string]any{"expense_id": id}),
	))

	return nil
}

// LedgerExpenses returns every expense of a group with its shares, oldest first
func (s *Service) LedgerExpenses(ctx context.Context, groupID int64) ([]*ExpenseWithShares, error) {
	return s.repo.ListWithSharesByGroupID(ctx, groupID)
}

func (s *Service) getExpense(ctx context.Context, id int64) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// authorizeChange allows the payer or the group owner on a writable group
func (s *Service) authorizeChange(ctx context.Context, id, userID int64) (*Expense, error) {
	expense, err := s.getExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	group, err := s.groups.CheckWritable(ctx, expense.GroupID, userID)
	if err != nil {
		return nil, err
	}
	if expense.PayerID != userID && group.CreatedBy != userID {
		return nil, ErrNotPayer
	}

	return expense, nil
}
