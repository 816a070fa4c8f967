package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpmiddleware "linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/validator"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const (
	testAddress = "tx-profile-1"
	testWallet  = "0x1111111111111111111111111111111111111111"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	return e
}

type envelope struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Data    json.RawMessage         `json:"data"`
	Error   *domainerrors.ErrorInfo `json:"error"`
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func testProfile() *entity.Profile {
	p := entity.NewProfile(testWallet, testNow)
	p.Name = "Alice"
	p.Username = "alice"
	p.Links = []entity.Link{
		{ID: "l2", Title: "Shop", URL: "https://shop.example.com", IsActive: true, Order: 2,
			Style: entity.LinkStyle{BackgroundColor: "#000000", TextColor: "#111111"}},
		{ID: "l1", Title: "Blog", URL: "https://alice.dev", IsActive: true, Order: 1,
			Style: entity.LinkStyle{BackgroundColor: "#ffffff", TextColor: "#000000"}},
		{ID: "l3", Title: "Hidden", URL: "https://hidden.example.com", IsActive: false, Order: 3},
	}

	return p
}
