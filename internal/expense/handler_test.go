package expense_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitbill/internal/events"
	"github.com/fkhayef/splitbill/internal/expense"
	"github.com/fkhayef/splitbill/internal/group"
	"github.com/fkhayef/splitbill/internal/notification"
	"github.com/fkhayef/splitbill/internal/user"
	"github.com/fkhayef/splitbill/pkg/middleware"
)

func call(t *testing.T, h http.Handler, method, path string, userID int64, body string, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, fmt.Sprint(userID))
	rec := httptest.NewRecorder()
	middleware.Identity(h).ServeHTTP(rec, req)

	if out != nil {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return rec.Code
}

func newHandler(t *testing.T, w *world) http.Handler {
	t.Helper()
	notifications := notification.NewService(notification.NewRepository(w.db))
	groups := group.NewService(
		group.NewRepository(w.db),
		user.NewService(user.NewRepository(w.db)),
		notifications,
		events.Discard,
	)
	svc := expense.NewService(expense.NewRepository(w.db), nil, groups, notifications, events.Discard)
	return expense.NewHandler(svc).Routes()
}

func TestHandler_ExpenseLifecycle(t *testing.T) {
	w := newWorld(t)
	h := newHandler(t, w)
	ana, ben, cy := w.users[0], w.users[1], w.users[2]

	body := fmt.Sprintf(`{
		"group_id": %d,
		"description": "Dinner",
		"category": "FOOD",
		"amount": "100",
		"split_method": "percentage",
		"participant_ids": [%d, %d, %d],
		"shares": [
			{"user_id": %d, "value": "50"},
			{"user_id": %d, "value": "25"},
			{"user_id": %d, "value": "25"}
		]
	}`, w.group.ID, ana, ben, cy, ana, ben, cy)

	var created expense.ExpenseResponse
	require.Equal(t, http.StatusCreated, call(t, h, http.MethodPost, "/", ana, body, &created))
	assert.Equal(t, "PERCENTAGE", string(created.SplitMethod))
	require.Len(t, created.Shares, 3)
	assert.Equal(t, "50", created.Shares[0].Amount.String())
	assert.Equal(t, "25", created.Shares[2].Amount.String())

	unread, err := notification.NewRepository(w.db).GetUnreadCount(context.Background(), ben)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	path := fmt.Sprintf("/%d", created.ID)

	var fetched expense.ExpenseResponse
	require.Equal(t, http.StatusOK, call(t, h, http.MethodGet, path, cy, "", &fetched))
	assert.Equal(t, "Dinner", fetched.Description)
	assert.Equal(t, "ana", fetched.PayerName)

	var listed []expense.ExpenseResponse
	require.Equal(t, http.StatusOK,
		call(t, h, http.MethodGet, fmt.Sprintf("/group/%d", w.group.ID), ben, "", &listed))
	assert.Len(t, listed, 1)

	var found []expense.ExpenseResponse
	require.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/search?q=dinn&category=food", cy, "", &found))
	assert.Len(t, found, 1)
	assert.Equal(t, http.StatusBadRequest, call(t, h, http.MethodGet, "/search?category=boats", cy, "", nil))
	assert.Equal(t, http.StatusBadRequest, call(t, h, http.MethodGet, "/search?from=yesterday", cy, "", nil))

	assert.Equal(t, http.StatusForbidden,
		call(t, h, http.MethodPut, path, ben, `{"description":"Lunch"}`, nil))
	var updated expense.ExpenseResponse
	require.Equal(t, http.StatusOK, call(t, h, http.MethodPut, path, ana, `{"description":"Lunch"}`, &updated))
	assert.Equal(t, "Lunch", updated.Description)
	assert.Equal(t, expense.CategoryFood, updated.Category)

	assert.Equal(t, http.StatusForbidden, call(t, h, http.MethodDelete, path, cy, "", nil))
	assert.Equal(t, http.StatusOK, call(t, h, http.MethodDelete, path, ana, "", nil))
	assert.Equal(t, http.StatusNotFound, call(t, h, http.MethodGet, path, ana, "", nil))
	assert.Equal(t, http.StatusBadRequest, call(t, h, http.MethodGet, "/abc", ana, "", nil))
}

func TestHandler_CreateRejections(t *testing.T) {
	w := newWorld(t)
	h := newHandler(t, w)
	ana := w.users[0]

	outsider, err := user.NewRepository(w.db).Create(context.Background(), &user.CreateUserRequest{Name: "zed", Email: "zed@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "unbalanced exact shares",
			body: fmt.Sprintf(`{"group_id":%d,"description":"Cab","amount":"30","split_method":"EXACT","participant_ids":[%d],"shares":[{"user_id":%d,"value":"20"}]}`,
				w.group.ID, ana, ana),
			want: http.StatusBadRequest,
		},
		{
			name: "participant outside the group",
			body: fmt.Sprintf(`{"group_id":%d,"description":"Cab","amount":"30","split_method":"EQUAL","participant_ids":[%d,%d]}`,
				w.group.ID, ana, outsider.ID),
			want: http.StatusBadRequest,
		},
		{
			name: "missing description",
			body: fmt.Sprintf(`{"group_id":%d,"amount":"30","split_method":"EQUAL","participant_ids":[%d]}`, w.group.ID, ana),
			want: http.StatusBadRequest,
		},
		{
			name: "unknown group",
			body: fmt.Sprintf(`{"group_id":999,"description":"Cab","amount":"30","split_method":"EQUAL","participant_ids":[%d]}`, ana),
			want: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, call(t, h, http.MethodPost, "/", ana, tt.body, nil))
		})
	}

	t.Run("outsider cannot record", func(t *testing.T) {
		body := fmt.Sprintf(`{"group_id":%d,"description":"Cab","amount":"30","split_method":"EQUAL","participant_ids":[%d]}`,
			w.group.ID, outsider.ID)
		assert.Equal(t, http.StatusForbidden, call(t, h, http.MethodPost, "/", outsider.ID, body, nil))
	})
}

func TestHandler_ValidateSplit(t *testing.T) {
	w := newWorld(t)
	h := newHandler(t, w)

	var result struct {
		Valid bool   `json:"valid"`
		Error string `json:"error"`
	}
	require.Equal(t, http.StatusOK, call(t, h, http.MethodPost, "/validate-split", w.users[0],
		`{"amount":"10","split_method":"EQUAL","participant_ids":[]}`, &result))
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Error)

	require.Equal(t, http.StatusOK, call(t, h, http.MethodPost, "/validate-split", w.users[0],
		`{"amount":"10","split_method":"EQUAL","participant_ids":[1,2]}`, &result))
	assert.True(t, result.Valid)
}
