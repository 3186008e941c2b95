package notification_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitbill/internal/notification"
	mock_notification "github.com/fkhayef/splitbill/internal/notification/mocks"
	"github.com/fkhayef/splitbill/pkg/middleware"
)

func serve(h http.Handler, method, path string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_notification.NewMockStore(ctrl)
	h := notification.NewHandler(notification.NewService(store)).Routes()

	t.Run("unread count", func(t *testing.T) {
		store.EXPECT().GetUnreadCount(gomock.Any(), int64(4)).Return(3, nil)

		rec := serve(h, http.MethodGet, "/unread-count", 4)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data map[string]int `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 3, body.Data["unread_count"])
	})

	t.Run("mark other user's notification", func(t *testing.T) {
		store.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&notification.Notification{ID: 9, RecipientID: 5}, nil)

		rec := serve(h, http.MethodPost, "/9/read", 4)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/x/read", 4)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list unread only", func(t *testing.T) {
		store.EXPECT().ListByRecipientID(gomock.Any(), int64(4), 20, 0, true).
			DoAndReturn(func(context.Context, int64, int, int, bool) ([]*notification.Notification, int, error) {
				return []*notification.Notification{{ID: 1, RecipientID: 4, Message: "hi"}}, 1, nil
			})

		rec := serve(h, http.MethodGet, "/?unread_only=true", 4)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"hi"`)
		assert.Contains(t, rec.Body.String(), `"total":1`)
	})
}
