package expense_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitbill/internal/database"
	"github.com/fkhayef/splitbill/internal/expense"
	"github.com/fkhayef/splitbill/internal/expense/split"
	"github.com/fkhayef/splitbill/internal/group"
	"github.com/fkhayef/splitbill/internal/user"
)

type world struct {
	db    *sql.DB
	users []int64
	group *group.Group
}

// newWorld creates users ana, ben and cy who have all joined one group
func newWorld(t *testing.T) *world {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenInMemory(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := user.NewRepository(db)
	var ids []int64
	for _, name := range []string{"ana", "ben", "cy"} {
		u, err := users.Create(ctx, &user.CreateUserRequest{Name: name, Email: name + "@example.com"})
		require.NoError(t, err)
		ids = append(ids, u.ID)
	}

	groups := group.NewRepository(db)
	g, err := groups.Create(ctx, &group.CreateGroupRequest{Name: "Trip"}, ids[0], "trip-code")
	require.NoError(t, err)
	for _, id := range ids[1:] {
		_, err := groups.AddMember(ctx, g.ID, id, group.MemberRoleMember, group.MemberStatusJoined)
		require.NoError(t, err)
	}

	return &world{db: db, users: ids, group: g}
}

func TestRepository_CreateAndLedger(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	repo := expense.NewRepository(w.db)
	date := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, &expense.Expense{
		GroupID:     w.group.ID,
		PayerID:     w.users[0],
		Description: "Taxi",
		Amount:      dec("10.01"),
		Category:    expense.CategoryTransport,
		SplitMethod: split.MethodEqual,
		Date:        date,
	}, []*expense.Share{
		{UserID: w.users[0], Amount: dec("3.33"), Position: 0},
		{UserID: w.users[1], Amount: dec("3.33"), Position: 1},
		{UserID: w.users[2], Amount: dec("3.35"), Position: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", created.Expense.PayerName)
	assert.True(t, created.Expense.Amount.Equal(dec("10.01")))
	assert.True(t, created.Expense.Date.Equal(date))
	require.Len(t, created.Shares, 3)
	assert.Equal(t, "cy", created.Shares[2].UserName)
	assert.True(t, created.Shares[2].Amount.Equal(dec("3.35")))

	_, err = repo.Create(ctx, &expense.Expense{
		GroupID:     w.group.ID,
		PayerID:     w.users[1],
		Description: "Hotel",
		Amount:      dec("90"),
		Category:    expense.CategoryAccommodation,
		SplitMethod: split.MethodExact,
		Date:        date.Add(24 * time.Hour),
	}, []*expense.Share{
		{UserID: w.users[1], Amount: dec("45"), Position: 0},
		{UserID: w.users[2], Amount: dec("45"), Position: 1},
	})
	require.NoError(t, err)

	ledger, err := repo.ListWithSharesByGroupID(ctx, w.group.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, "Taxi", ledger[0].Expense.Description)
	assert.Len(t, ledger[0].Shares, 3)
	assert.Len(t, ledger[1].Shares, 2)

	page, total, err := repo.ListByGroupID(ctx, w.group.ID, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, page, 1)
	assert.Equal(t, "Hotel", page[0].Description)

	desc := "Airport taxi"
	updated, err := repo.Update(ctx, created.Expense.ID, &expense.UpdateExpenseRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Airport taxi", updated.Description)
	assert.Equal(t, expense.CategoryTransport, updated.Category)

	require.NoError(t, repo.Delete(ctx, created.Expense.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.Expense.ID), expense.ErrExpenseNotFound)

	shares, err := repo.GetShares(ctx, created.Expense.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestRepository_Search(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	repo := expense.NewRepository(w.db)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, e := range []struct {
		desc     string
		amount   string
		category expense.Category
	}{
		{"Groceries", "42.10", expense.CategoryFood},
		{"Pizza night", "18.00", expense.CategoryFood},
		{"Electricity", "120.00", expense.CategoryBills},
	} {
		_, err := repo.Create(ctx, &expense.Expense{
			GroupID:     w.group.ID,
			PayerID:     w.users[0],
			Description: e.desc,
			Amount:      dec(e.amount),
			Category:    e.category,
			SplitMethod: split.MethodExact,
			Date:        base.AddDate(0, 0, i),
		}, []*expense.Share{{UserID: w.users[0], Amount: dec(e.amount)}})
		require.NoError(t, err)
	}

	minAmount := dec("20")
	from := base.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		filter expense.SearchFilter
		want   []string
	}{
		{name: "all", filter: expense.SearchFilter{}, want: []string{"Electricity", "Pizza night", "Groceries"}},
		{name: "text", filter: expense.SearchFilter{Query: "PIZZA"}, want: []string{"Pizza night"}},
		{name: "category", filter: expense.SearchFilter{Category: expense.CategoryFood}, want: []string{"Pizza night", "Groceries"}},
		{name: "amount", filter: expense.SearchFilter{MinAmount: &minAmount}, want: []string{"Electricity", "Groceries"}},
		{name: "date", filter: expense.SearchFilter{From: &from}, want: []string{"Electricity", "Pizza night"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.UserID = w.users[1]
			tt.filter.Limit = 10

			got, total, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), total)

			var names []string
			for _, e := range got {
				names = append(names, e.Description)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	t.Run("outsider sees nothing", func(t *testing.T) {
		outsider, err := user.NewRepository(w.db).Create(ctx, &user.CreateUserRequest{Name: "zed", Email: "zed@example.com"})
		require.NoError(t, err)

		got, total, err := repo.Search(ctx, expense.SearchFilter{UserID: outsider.ID, Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, got)
	})
}
