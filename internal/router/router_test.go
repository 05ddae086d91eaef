package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hiking-planner/internal/cache"
	"hiking-planner/internal/database"
	"hiking-planner/internal/email"
	"hiking-planner/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, &email.FakeSender{}, worker.NewPool(1), "http://localhost")

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/auth/admin/login",
		http.MethodPost + " /api/auth/forgot-password",
		http.MethodPost + " /api/auth/verify-reset-password-code",
		http.MethodPost + " /api/auth/reset-password",
		http.MethodPost + " /api/auth/get-user",
		http.MethodGet + " /api/account/me",
		http.MethodPut + " /api/account",
		http.MethodDelete + " /api/account",
		http.MethodPut + " /api/account/change-password",
		http.MethodPost + " /api/account/verify-email/generate",
		http.MethodPost + " /api/account/verify-email/:token",
		http.MethodGet + " /api/users",
		http.MethodPost + " /api/users",
		http.MethodGet + " /api/users/:id",
		http.MethodPut + " /api/users/:id",
		http.MethodDelete + " /api/users/:id",
		http.MethodGet + " /api/countries",
		http.MethodPost + " /api/countries",
		http.MethodPut + " /api/countries/:id",
		http.MethodDelete + " /api/countries/:id",
		http.MethodGet + " /api/community",
		http.MethodPost + " /api/community",
		http.MethodGet + " /api/community/:id",
		http.MethodPut + " /api/community/:id",
		http.MethodDelete + " /api/community/:id",
		http.MethodPost + " /api/community/:id/join",
		http.MethodPost + " /api/community/:id/leave",
		http.MethodGet + " /api/community/:id/members",
		http.MethodPost + " /api/community/:id/events",
		http.MethodPost + " /api/community/event/:eventId/join",
		http.MethodPost + " /api/community/event/:eventId/leave",
		http.MethodPost + " /api/community/event/:eventId/addComment",
		http.MethodPost + " /api/comments",
		http.MethodGet + " /api/comments",
		http.MethodDelete + " /api/comments",
		http.MethodGet + " /api/comments/:id",
		http.MethodPut + " /api/comments/:id",
		http.MethodDelete + " /api/comments/:id",
	}

	// e.Routes() 還包含 echo 為群組中介層註冊的 catch-all 路由，僅驗證成員
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestWelcomeIsPublic(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, &email.FakeSender{}, worker.NewPool(1), "http://localhost")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Welcome to The Hiking API.")
}

func TestProtectedRouteRejectsMissingToken(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, &email.FakeSender{}, worker.NewPool(1), "http://localhost")

	req := httptest.NewRequest(http.MethodGet, "/api/account/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":false`)
}
