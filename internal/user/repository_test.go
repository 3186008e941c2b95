package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitbill/internal/database"
	"github.com/fkhayef/splitbill/internal/user"
)

func newRepository(t *testing.T) *user.Repository {
	t.Helper()
	db, err := database.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return user.NewRepository(db)
}

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	created, err := repo.Create(ctx, &user.CreateUserRequest{Name: "Bea", Email: "bea@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.Create(ctx, &user.CreateUserRequest{Name: "Al", Email: "al@example.com"})
	require.NoError(t, err)

	byEmail, err := repo.GetByEmail(ctx, "bea@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	users, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, users, 2)
	assert.Equal(t, "Al", users[0].Name)

	name := "Beatrice"
	updated, err := repo.Update(ctx, created.ID, &user.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Beatrice", updated.Name)
	assert.Equal(t, "bea@example.com", updated.Email)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), user.ErrUserNotFound)
}

func TestRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	_, err := repo.Create(ctx, &user.CreateUserRequest{Name: "A", Email: "same@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &user.CreateUserRequest{Name: "B", Email: "same@example.com"})
	assert.Error(t, err)
}
