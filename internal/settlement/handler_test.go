package settlement_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fkhayef/splitbill/internal/database"
	"github.com/fkhayef/splitbill/internal/events"
	"github.com/fkhayef/splitbill/internal/expense"
	"github.com/fkhayef/splitbill/internal/group"
	"github.com/fkhayef/splitbill/internal/notification"
	"github.com/fkhayef/splitbill/internal/settlement"
	"github.com/fkhayef/splitbill/internal/user"
	"github.com/fkhayef/splitbill/pkg/middleware"
)

type app struct {
	router   http.Handler
	expenses *expense.Service
	groupID  int64
	users    []int64
	notes    *notification.Repository
}

// newApp wires the real services over sqlite with ana, ben and cy in one group
func newApp(t *testing.T) *app {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenInMemory(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := user.NewService(user.NewRepository(db))
	var ids []int64
	for _, name := range []string{"ana", "ben", "cy"} {
		u, err := users.Create(ctx, &user.CreateUserRequest{Name: name, Email: name + "@example.com"})
		require.NoError(t, err)
		ids = append(ids, u.ID)
	}

	notes := notification.NewRepository(db)
	notifications := notification.NewService(notes)
	groups := group.NewService(group.NewRepository(db), users, notifications, events.Discard)

	g, err := groups.Create(ctx, ids[0], &group.CreateGroupRequest{Name: "Ski trip"})
	require.NoError(t, err)
	for _, id := range ids[1:] {
		_, err := groups.JoinByInviteCode(ctx, id, g.InviteCode)
		require.NoError(t, err)
	}

	expenses := expense.NewService(expense.NewRepository(db), nil, groups, notifications, events.Discard)
	settlements := settlement.NewHandler(
		settlement.NewService(settlement.NewRepository(db), groups, expenses, notifications, events.Discard),
	)

	r := chi.NewRouter()
	r.Use(middleware.Identity)
	r.Mount("/groups", group.NewHandler(groups).Routes(settlements.RegisterGroupRoutes))
	r.Mount("/settlements", settlements.Routes())

	return &app{router: r, expenses: expenses, groupID: g.ID, users: ids, notes: notes}
}

func (a *app) call(t *testing.T, method, path string, userID int64, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, fmt.Sprint(userID))
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	if out != nil {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return rec
}

func TestHandler_SettleUp(t *testing.T) {
	a := newApp(t)
	ana, ben, cy := a.users[0], a.users[1], a.users[2]
	base := fmt.Sprintf("/groups/%d", a.groupID)

	_, err := a.expenses.CreateExpense(context.Background(), ana, &expense.CreateExpenseRequest{
		GroupID:     a.groupID,
		Description: "Chalet",
		SplitInput: expense.SplitInput{
			Amount:         dec("150"),
			SplitMethod:    "EQUAL",
			ParticipantIDs: []int64{ana, ben, cy},
		},
	})
	require.NoError(t, err)

	var before settlement.BalancesResponse
	require.Equal(t, http.StatusOK, a.call(t, http.MethodGet, base+"/balances", cy, "", &before).Code)
	require.Len(t, before.Balances, 3)
	assert.Equal(t, 2, before.Summary.TransactionsNeeded)

	var recorded settlement.SettlementResponse
	rec := a.call(t, http.MethodPost, base+"/settlements", ben,
		fmt.Sprintf(`{"to_user_id":%d,"amount":"50","comment":"chalet"}`, ana), &recorded)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ben", recorded.FromName)
	assert.Equal(t, "ana", recorded.ToName)

	unread, err := a.notes.GetUnreadCount(context.Background(), ana)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	var after settlement.BalancesResponse
	require.Equal(t, http.StatusOK, a.call(t, http.MethodGet, base+"/balances", cy, "", &after).Code)
	require.Len(t, after.Balances, 2)
	assert.Equal(t, ana, after.Balances[0].UserID)
	assert.True(t, after.Balances[0].Balance.Equal(dec("50")))
	require.Len(t, after.OptimizedDebts, 1)
	assert.Equal(t, cy, after.OptimizedDebts[0].From)
	assert.Equal(t, ana, after.OptimizedDebts[0].To)

	var listed []settlement.SettlementResponse
	require.Equal(t, http.StatusOK, a.call(t, http.MethodGet, base+"/settlements", cy, "", &listed).Code)
	require.Len(t, listed, 1)

	var fetched settlement.SettlementResponse
	require.Equal(t, http.StatusOK,
		a.call(t, http.MethodGet, fmt.Sprintf("/settlements/%d", recorded.ID), ana, "", &fetched).Code)
	require.NotNil(t, fetched.Comment)
	assert.Equal(t, "chalet", *fetched.Comment)

	export := a.call(t, http.MethodGet, base+"/balances/export", ana, "", nil)
	require.Equal(t, http.StatusOK, export.Code)
	assert.Equal(t, settlement.XLSXContentType, export.Header().Get("Content-Type"))
	assert.Contains(t, export.Header().Get("Content-Disposition"), "Ski_trip_balances_")

	book, err := excelize.OpenReader(bytes.NewReader(export.Body.Bytes()))
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(settlement.SheetSettleUp)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "cy", rows[1][0])
}

func TestHandler_SettlementRejections(t *testing.T) {
	a := newApp(t)
	ana, ben := a.users[0], a.users[1]
	path := fmt.Sprintf("/groups/%d/settlements", a.groupID)

	tests := []struct {
		name   string
		userID int64
		body   string
		want   int
	}{
		{"self", ana, fmt.Sprintf(`{"to_user_id":%d,"amount":"5"}`, ana), http.StatusBadRequest},
		{"negative amount", ana, fmt.Sprintf(`{"to_user_id":%d,"amount":"-5"}`, ben), http.StatusBadRequest},
		{"too large", ana, fmt.Sprintf(`{"to_user_id":%d,"amount":"1000000"}`, ben), http.StatusBadRequest},
		{"unknown receiver", ana, `{"to_user_id":999,"amount":"5"}`, http.StatusBadRequest},
		{"long comment", ana, fmt.Sprintf(`{"to_user_id":%d,"amount":"5","comment":%q}`, ben, strings.Repeat("x", 501)), http.StatusBadRequest},
		{"outsider", 999, fmt.Sprintf(`{"to_user_id":%d,"amount":"5"}`, ben), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.call(t, http.MethodPost, path, tt.userID, tt.body, nil).Code)
		})
	}

	assert.Equal(t, http.StatusNotFound, a.call(t, http.MethodGet, "/settlements/42", ana, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, a.call(t, http.MethodGet, "/groups/999/balances", ana, "", nil).Code)
}
