package group_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitbill/internal/database"
	"github.com/fkhayef/splitbill/internal/group"
	"github.com/fkhayef/splitbill/internal/user"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedUsers(t *testing.T, db *sql.DB, names ...string) []int64 {
	t.Helper()
	repo := user.NewRepository(db)
	ids := make([]int64, len(names))
	for i, name := range names {
		u, err := repo.Create(context.Background(), &user.CreateUserRequest{Name: name, Email: name + "@example.com"})
		require.NoError(t, err)
		ids[i] = u.ID
	}
	return ids
}

func TestRepository_GroupLifecycle(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	ids := seedUsers(t, db, "ana", "ben", "cy")
	repo := group.NewRepository(db)

	g, err := repo.Create(ctx, &group.CreateGroupRequest{Name: "Flat"}, ids[0], "invite-1")
	require.NoError(t, err)
	assert.Equal(t, ids[0], g.CreatedBy)
	assert.False(t, g.IsArchived)

	admin, err := repo.GetMember(ctx, g.ID, ids[0])
	require.NoError(t, err)
	assert.Equal(t, group.MemberRoleAdmin, admin.Role)
	assert.Equal(t, group.MemberStatusJoined, admin.Status)
	assert.Equal(t, "ana", admin.Name)

	byCode, err := repo.GetByInviteCode(ctx, "invite-1")
	require.NoError(t, err)
	assert.Equal(t, g.ID, byCode.ID)

	missing, err := repo.GetByInviteCode(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	invited, err := repo.AddMember(ctx, g.ID, ids[1], group.MemberRoleMember, group.MemberStatusInvited)
	require.NoError(t, err)
	assert.Equal(t, group.MemberStatusInvited, invited.Status)

	accepted, err := repo.UpdateMemberStatus(ctx, g.ID, ids[1], group.MemberStatusJoined)
	require.NoError(t, err)
	assert.True(t, accepted.Active())

	_, err = repo.UpdateMemberStatus(ctx, g.ID, ids[2], group.MemberStatusJoined)
	assert.ErrorIs(t, err, group.ErrMemberNotFound)

	members, err := repo.GetMembers(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	archived, err := repo.SetArchived(ctx, g.ID, true)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)

	name := "Flat 2"
	updated, err := repo.Update(ctx, g.ID, &group.UpdateGroupRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Flat 2", updated.Name)

	transferred, err := repo.TransferOwnership(ctx, g.ID, ids[0], ids[1])
	require.NoError(t, err)
	assert.Equal(t, ids[1], transferred.CreatedBy)
	formerAdmin, err := repo.GetMember(ctx, g.ID, ids[0])
	require.NoError(t, err)
	assert.Equal(t, group.MemberRoleMember, formerAdmin.Role)

	groups, total, err := repo.ListByUserID(ctx, ids[1], 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, groups, 1)

	require.NoError(t, repo.RemoveMember(ctx, g.ID, ids[0]))
	assert.ErrorIs(t, repo.RemoveMember(ctx, g.ID, ids[0]), group.ErrMemberNotFound)

	require.NoError(t, repo.Delete(ctx, g.ID))
	assert.ErrorIs(t, repo.Delete(ctx, g.ID), group.ErrGroupNotFound)
}
