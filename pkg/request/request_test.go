package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string   `json:"name" validate:"required,min=2,max=5"`
	Email  string   `json:"email" validate:"omitempty,email"`
	Tags   []string `json:"tags" validate:"max=2"`
	Method string   `json:"method" validate:"omitempty,oneof=A B"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecodeJSON(t *testing.T) {
	var s sample
	require.NoError(t, DecodeJSON(post(`{"name":"bob","email":"bob@example.com"}`), &s))
	assert.Equal(t, "bob", s.Name)
}

func TestDecodeJSON_InvalidBody(t *testing.T) {
	var s sample
	assert.ErrorIs(t, DecodeJSON(post(`{"name":`), &s), ErrInvalidBody)
}

func TestDecodeJSON_ValidationMessages(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{}`, "name is required"},
		{`{"name":"b"}`, "name must be at least 2 characters"},
		{`{"name":"bobbybob"}`, "name must be at most 5 characters"},
		{`{"name":"bob","email":"nope"}`, "email must be a valid email address"},
		{`{"name":"bob","tags":["a","b","c"]}`, "tags must contain at most 2 items"},
		{`{"name":"bob","method":"C"}`, "method must be one of: A B"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var s sample
			err := DecodeJSON(post(tt.body), &s)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestPage(t *testing.T) {
	tests := []struct {
		query       string
		page, limit int
	}{
		{"", 1, 20},
		{"page=3&per_page=50", 3, 50},
		{"page=-1&per_page=1000", 1, 20},
		{"page=x", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			page, perPage := Page(httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil))
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.limit, perPage)
		})
	}
}

func TestID(t *testing.T) {
	id, err := ID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"", "0", "-3", "abc"} {
		_, err := ID(bad)
		assert.Error(t, err, bad)
	}
}

func TestLimitOffset(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{query: "", wantLimit: 50},
		{query: "limit=10&offset=30", wantLimit: 10, wantOffset: 30},
		{query: "limit=500", wantLimit: 100},
		{query: "limit=0", wantErr: true},
		{query: "offset=-1", wantErr: true},
		{query: "limit=ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			limit, offset, err := LimitOffset(r, 50)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
