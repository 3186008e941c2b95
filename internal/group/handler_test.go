package group_test

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

func TestHandler_InviteAndJoin(t *testing.T) {
	db := openDB(t)
	ids := seedUsers(t, db, "ana", "ben", "cy")
	ana, ben, cy := ids[0], ids[1], ids[2]

	svc := group.NewService(
		group.NewRepository(db),
		user.NewService(user.NewRepository(db)),
		notification.NewService(notification.NewRepository(db)),
		events.Discard,
	)
	h := group.NewHandler(svc).Routes()

	var created group.GroupResponse
	require.Equal(t, http.StatusCreated, call(t, h, http.MethodPost, "/", ana, `{"name":"Trip"}`, &created))
	assert.NotEmpty(t, created.InviteCode)
	path := fmt.Sprintf("/%d", created.ID)

	assert.Equal(t, http.StatusBadRequest, call(t, h, http.MethodPost, "/", ana, `{"name":""}`, nil))
	assert.Equal(t, http.StatusForbidden, call(t, h, http.MethodGet, path, ben, "", nil))

	require.Equal(t, http.StatusCreated,
		call(t, h, http.MethodPost, path+"/members", ana, fmt.Sprintf(`{"user_id":%d}`, ben), nil))
	assert.Equal(t, http.StatusConflict,
		call(t, h, http.MethodPost, path+"/members", ana, fmt.Sprintf(`{"user_id":%d}`, ben), nil))
	assert.Equal(t, http.StatusNotFound,
		call(t, h, http.MethodPost, path+"/members", ana, `{"user_id":999}`, nil))

	unread, err := notification.NewRepository(db).GetUnreadCount(context.Background(), ben)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	var member group.MemberResponse
	require.Equal(t, http.StatusOK, call(t, h, http.MethodPost, path+"/accept", ben, "", &member))
	assert.Equal(t, group.MemberStatusJoined, member.Status)

	var joinedGroup group.GroupResponse
	require.Equal(t, http.StatusOK,
		call(t, h, http.MethodPost, "/join", cy, fmt.Sprintf(`{"invite_code":%q}`, created.InviteCode), &joinedGroup))
	assert.Equal(t, created.ID, joinedGroup.ID)
	assert.Equal(t, http.StatusNotFound, call(t, h, http.MethodPost, "/join", cy, `{"invite_code":"bogus"}`, nil))

	var detail group.GroupResponse
	require.Equal(t, http.StatusOK, call(t, h, http.MethodGet, path, cy, "", &detail))
	assert.Len(t, detail.Members, 3)

	assert.Equal(t, http.StatusForbidden, call(t, h, http.MethodPost, path+"/archive", ben, "", nil))
	var archived group.GroupResponse
	require.Equal(t, http.StatusOK, call(t, h, http.MethodPost, path+"/archive", ana, "", &archived))
	assert.True(t, archived.IsArchived)

	assert.Equal(t, http.StatusForbidden,
		call(t, h, http.MethodDelete, fmt.Sprintf("%s/members/%d", path, ana), ben, "", nil))
	assert.Equal(t, http.StatusOK,
		call(t, h, http.MethodDelete, fmt.Sprintf("%s/members/%d", path, cy), cy, "", nil))

	var list []group.GroupResponse
	require.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/", ben, "", &list))
	assert.Len(t, list, 1)
}
