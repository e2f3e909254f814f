package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servilink/internal/adapter/api"
	adapter "servilink/internal/adapter/repository"
	"servilink/internal/infrastructure/auth"
	"servilink/internal/usecase"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *echo.Echo) {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := adapter.NewBadgerUserRepository(db)
	ratingRepo := adapter.NewBadgerRatingRepository(db)
	chatRepo := adapter.NewBadgerChatRepository(db)
	require.NoError(t, adapter.SeedDemoData(context.Background(), userRepo, ratingRepo, chatRepo))

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, usecase.NewSession())

	e := echo.New()
	e.Validator = api.NewValidator()

	return NewAuthHandler(authUseCase), e
}

func TestAuthHandler_Login(t *testing.T) {
	h, e := newTestAuthHandler(t)

	body := `{"email":"user@example.com","password":"` + adapter.SeedPassword + `"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.Login(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"redirect_to":"/painel-usuario"`)
		assert.Contains(t, rec.Body.String(), `"token"`)
		assert.NotContains(t, rec.Body.String(), "password_hash")
	}
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	h, e := newTestAuthHandler(t)

	body := `{"email":"user@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.Login(c)) {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	}
}

func TestAuthHandler_RegisterWorkerRedirect(t *testing.T) {
	h, e := newTestAuthHandler(t)

	body := `{"name":"New Worker","email":"w@new.example.com","password":"a-strong-password","role":"worker"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.Register(c)) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"redirect_to":"/perfil-trabalhador"`)
		assert.Contains(t, rec.Body.String(), `"profile_complete":false`)
	}
}

func TestAuthHandler_RegisterRejectsUnknownRole(t *testing.T) {
	h, e := newTestAuthHandler(t)

	body := `{"name":"Odd","email":"odd@example.com","password":"a-strong-password","role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.Register(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	}
}
