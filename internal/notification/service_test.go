package notification_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitbill/internal/notification"
	mock_notification "github.com/fkhayef/splitbill/internal/notification/mocks"
)

func TestService_MarkAsRead(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(store *mock_notification.MockStore)
		wantErr error
	}{
		{
			name: "recipient marks as read",
			setup: func(store *mock_notification.MockStore) {
				store.EXPECT().GetByID(ctx, int64(3)).Return(&notification.Notification{ID: 3, RecipientID: 7}, nil)
				store.EXPECT().MarkAsRead(ctx, int64(3)).Return(nil)
			},
		},
		{
			name: "someone else's notification",
			setup: func(store *mock_notification.MockStore) {
				store.EXPECT().GetByID(ctx, int64(3)).Return(&notification.Notification{ID: 3, RecipientID: 8}, nil)
			},
			wantErr: notification.ErrNotRecipient,
		},
		{
			name: "missing notification",
			setup: func(store *mock_notification.MockStore) {
				store.EXPECT().GetByID(ctx, int64(3)).Return(nil, nil)
			},
			wantErr: notification.ErrNotificationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_notification.NewMockStore(ctrl)
			tt.setup(store)

			err := notification.NewService(store).MarkAsRead(ctx, 3, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_NotifyMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := mock_notification.NewMockStore(ctrl)
	var messages, entities []string
	store.EXPECT().
		Create(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, message string, entityType *string, _ *int64) (*notification.Notification, error) {
			messages = append(messages, message)
			entities = append(entities, *entityType)
			return &notification.Notification{}, nil
		}).
		Times(3)

	svc := notification.NewService(store)
	require.NoError(t, svc.NotifyGroupInvite(ctx, 2, "Trip", 1))
	require.NoError(t, svc.NotifyExpenseAdded(ctx, 2, "Ana", "Dinner", decimal.RequireFromString("1234.5"), 10))
	require.NoError(t, svc.NotifySettlementRecorded(ctx, 2, "Ana", decimal.NewFromInt(50), 4))

	assert.Equal(t, []string{
		"You have been invited to join group: Trip",
		`Ana added "Dinner" and your share is $1,234.50`,
		"Ana paid you $50.00",
	}, messages)
	assert.Equal(t, []string{notification.EntityGroup, notification.EntityExpense, notification.EntitySettlement}, entities)
}

func TestService_ListClampsPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := mock_notification.NewMockStore(ctrl)
	store.EXPECT().ListByRecipientID(ctx, int64(1), 20, 0, true).Return(nil, 0, nil)

	_, _, err := notification.NewService(store).ListByRecipientID(ctx, 1, -1, 0, true)
	assert.NoError(t, err)
}
