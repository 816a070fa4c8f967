package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "linkvault/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockMiddleware_Extract(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		query  string
		want   string
	}{
		{name: "bearer", header: map[string]string{"Authorization": "Bearer abc"}, want: "abc"},
		{name: "custom header", header: map[string]string{HeaderUnlockToken: "def"}, want: "def"},
		{name: "query", query: "?token=ghi", want: "ghi"},
		{name: "bearer wins", header: map[string]string{"Authorization": "Bearer abc", HeaderUnlockToken: "def"}, query: "?token=ghi", want: "abc"},
		{name: "non bearer authorization ignored", header: map[string]string{"Authorization": "Basic xyz"}, want: ""},
		{name: "none", want: ""},
	}

	e := echo.New()
	m := NewUnlockMiddleware()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/p/doc"+tt.query, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			var got string
			err := m.Extract(func(c echo.Context) error {
				got = GetUnlockToken(c)

				return nil
			})(c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrUsernameNotFound, "resolve"),
			wantStatus: http.StatusNotFound,
			wantCode:   "USERNAME_NOT_FOUND",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusTooManyRequests, "slow down"),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	e := echo.New()
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body domainerrors.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}
