package notification_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitbill/internal/database"
	"github.com/fkhayef/splitbill/internal/notification"
	"github.com/fkhayef/splitbill/internal/user"
)

func TestRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenInMemory(ctx)
	require.NoError(t, err)
	defer db.Close()

	u, err := user.NewRepository(db).Create(ctx, &user.CreateUserRequest{Name: "Dee", Email: "dee@example.com"})
	require.NoError(t, err)

	repo := notification.NewRepository(db)
	svc := notification.NewService(repo)

	require.NoError(t, svc.NotifyGroupInvite(ctx, u.ID, "Flat", 1))
	first, err := repo.Create(ctx, u.ID, "hello", nil, nil)
	require.NoError(t, err)
	assert.False(t, first.IsRead)
	assert.Nil(t, first.RelatedEntityType)

	count, err := repo.GetUnreadCount(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkAsRead(ctx, first.ID, u.ID))

	unread, total, err := repo.ListByRecipientID(ctx, u.ID, 10, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, unread, 1)
	assert.Equal(t, notification.EntityGroup, *unread[0].RelatedEntityType)

	require.NoError(t, repo.MarkAllAsRead(ctx, u.ID))
	count, err = repo.GetUnreadCount(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	all, total, err := repo.ListByRecipientID(ctx, u.ID, 10, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)
}
