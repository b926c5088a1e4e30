package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	apphttp "printmarket/internal/adapters/in/http"
	"printmarket/internal/core/domain/model/participant"
)

type stubTokenManager struct {
	stubVerifier
}

func (s stubTokenManager) IssueToken(context.Context, *participant.Participant) (string, error) {
	return "token", nil
}

func (s stubTokenManager) Revoke(context.Context, string) error {
	return nil
}

func TestServer_OversizedUploadIsRejectedBeforeHandling(t *testing.T) {
	e := echo.New()
	server := apphttp.NewServer(apphttp.Handlers{}, stubTokenManager{})
	server.RegisterRoutes(e)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/models", strings.NewReader("solid"))
	req.Header.Set(echo.HeaderAuthorization, "Bearer any")
	req.ContentLength = 65 << 20

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusRequestEntityTooLarge, rec.Code)
}
