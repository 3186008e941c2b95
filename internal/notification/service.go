package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/pkg/money"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("not the recipient of this notification")
)

// Service handles notification business logic
type Service struct {
	repo Store
}

// NewService creates a new notification service
func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

// Create creates a new notification
func (s *Service) Create(ctx context.Context, recipientID int64, message string, entityType *string, entityID *int64) (*Notification, error) {
	return s.repo.Create(ctx, recipientID, message, entityType, entityID)
}

// GetByID retrieves a notification by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Notification, error) {
	notification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	return notification, nil
}

// ListByRecipientID retrieves all notifications for a user
func (s *Service) ListByRecipientID(ctx context.Context, recipientID int64, page, perPage int, unreadOnly bool) ([]*Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByRecipientID(ctx, recipientID, perPage, offset, unreadOnly)
}

// MarkAsRead marks a notification as read
func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	notification, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.RecipientID != userID {
		return ErrNotRecipient
	}

	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user
func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

// GetUnreadCount returns the count of unread notifications
func (s *Service) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// Helper methods for creating specific notification types

// NotifyGroupInvite tells a user they were invited to a group
func (s *Service) NotifyGroupInvite(ctx context.Context, recipientID int64, groupName string, groupID int64) error {
	message := "You have been invited to join group: " + groupName
	return s.notify(ctx, recipientID, message, EntityGroup, groupID)
}

// NotifyExpenseAdded tells a participant what they owe for a new expense
func (s *Service) NotifyExpenseAdded(ctx context.Context, recipientID int64, payerName, description string, share decimal.Decimal, expenseID int64) error {
	message := fmt.Sprintf("%s added %q and your share is %s", payerName, description, money.Format(share))
	return s.notify(ctx, recipientID, message, EntityExpense, expenseID)
}

// NotifySettlementRecorded tells the receiver that a payment was recorded
func (s *Service) NotifySettlementRecorded(ctx context.Context, recipientID int64, payerName string, amount decimal.Decimal, settlementID int64) error {
	message := fmt.Sprintf("%s paid you %s", payerName, money.Format(amount))
	return s.notify(ctx, recipientID, message, EntitySettlement, settlementID)
}

func (s *Service) notify(ctx context.Context, recipientID int64, message, entityType string, entityID int64) error {
	_, err := s.repo.Create(ctx, recipientID, message, &entityType, &entityID)
	return err
}
