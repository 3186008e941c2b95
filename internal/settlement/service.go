package settlement

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/internal/events"
	"github.com/fkhayef/splitbill/internal/group"
	"github.com/fkhayef/splitbill/internal/settlement/debts"
	"github.com/fkhayef/splitbill/pkg/money"
)

// Common errors
var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrCannotSettleSelf   = errors.New("cannot settle debt with yourself")
	ErrInvalidAmount      = errors.New("amount must be positive and not exceed 999999.99")
	ErrReceiverNotMember  = errors.New("receiver must be a member of this group")
)

// MaxAmount is the largest amount a single settlement may record
var MaxAmount = decimal.RequireFromString("999999.99")

// Service handles settlement business logic
type Service struct {
	repo     Store
	groups   GroupAccess
	expenses ExpenseLedger
	notifier Notifier
	events   events.Logger
}

// NewService creates a new settlement service with dependencies injected
func NewService(repo Store, groups GroupAccess, expenses ExpenseLedger, notifier Notifier, logger events.Logger) *Service {
	if logger == nil {
		logger = events.Discard
	}
	return &Service{
		repo:     repo,
		groups:   groups,
		expenses: expenses,
		notifier: notifier,
		events:   logger,
	}
}

// RecordSettlement records that fromUserID paid req.ToUserID
func (s *Service) RecordSettlement(ctx context.Context, groupID, fromUserID int64, req *CreateSettlementRequest) (*Settlement, error) {
	if _, err := s.groups.CheckWritable(ctx, groupID, fromUserID); err != nil {
		return nil, err
	}

	if req.ToUserID == fromUserID {
		return nil, ErrCannotSettleSelf
	}
	amount := money.Round(req.Amount)
	if !amount.IsPositive() || amount.GreaterThan(MaxAmount) {
		return nil, ErrInvalidAmount
	}

	ok, err := s.groups.IsActiveMember(ctx, groupID, req.ToUserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrReceiverNotMember
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}

	var comment *string
	if req.Comment != nil {
		if c := strings.TrimSpace(*req.Comment); c != "" {
			comment = &c
		}
	}

	created, err := s.repo.Create(ctx, &Settlement{
		GroupID:    groupID,
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Amount:     amount,
		Comment:    comment,
		Date:       date,
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.NotifySettlementRecorded(ctx, created.ToUserID, created.FromName, created.Amount, created.ID); err != nil {
		slog.Warn("failed to send settlement notification", "settlement_id", created.ID, "user_id", created.ToUserID, "error", err)
	}

	s.events.Log(events.NewEvent(
		events.WithType(events.TypeSettlementRecorded),
		events.WithActor(fromUserID),
		events.WithGroup(groupID),
		events.WithData(map[string]any{
			"settlement_id": created.ID,
			"to_user_id":    created.ToUserID,
			"amount":        created.Amount.StringFixed(money.Places),
		}),
	))

	return created, nil
}

// GetByID retrieves a settlement for a member of its group
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*Settlement, error) {
	settlement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, ErrSettlementNotFound
	}

	if _, err := s.groups.CheckAccess(ctx, settlement.GroupID, userID); err != nil {
		return nil, err
	}

	return settlement, nil
}

// List retrieves a group's settlements, newest first
func (s *Service) List(ctx context.Context, groupID, userID int64) ([]*Settlement, error) {
	if _, err := s.groups.CheckAccess(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByGroupID(ctx, groupID)
}

// GetBalances computes the balances and suggested payments for a group
func (s *Service) GetBalances(ctx context.Context, groupID, userID int64) (*debts.Report, error) {
	if _, err := s.groups.CheckAccess(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.report(ctx, groupID)
}

// ExportBalances returns the group together with its balances report
func (s *Service) ExportBalances(ctx context.Context, groupID, userID int64) (*group.Group, *debts.Report, error) {
	g, err := s.groups.CheckAccess(ctx, groupID, userID)
	if err != nil {
		return nil, nil, err
	}

	report, err := s.report(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	return g, report, nil
}

// report recomputes everything from the full ledger on every call
func (s *Service) report(ctx context.Context, groupID int64) (*debts.Report, error) {
	expenses, err := s.expenses.LedgerExpenses(ctx, groupID)
	if err != nil {
		return nil, err
	}
	settlements, err := s.repo.LedgerByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	report := debts.GetOptimizedDebts(buildLedger(expenses, settlements))
	if !report.Balanced() {
		slog.Warn("group ledger does not balance", "group_id", groupID, "imbalance", report.Imbalance.String())
	}

	return &report, nil
}
