package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"staybook/pkg/auth"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

type mockAdminService struct{}

func (mockAdminService) Register(ctx context.Context, callerID string, req *model.AdminRegistration) (*model.Admin, error) {
	return &model.Admin{ID: "a1", UserID: callerID}, nil
}

func (mockAdminService) ValidateSecret(ctx context.Context, secretCode string) error {
	if secretCode != "s3cret" {
		return apperrors.Unauthorized("Invalid secret code")
	}
	return nil
}

type stubGuard struct{ admin bool }

func (g stubGuard) IsAdmin(ctx context.Context, userID string) (bool, error) { return g.admin, nil }

func (g stubGuard) RequireAdmin(ctx context.Context) (string, error) { return "", nil }

func do(t *testing.T, guard stubGuard, userID, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := httprouter.New()
	NewAdminHandler(mockAdminService{}, guard, logger.Discard()).RegisterRoutes(router)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(auth.WithIdentity(req.Context(), &auth.Identity{UserID: userID}))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	rec := do(t, stubGuard{}, "", http.MethodPost, "/api/admin/register", `{"secretCode":"s3cret"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, stubGuard{}, "u1", http.MethodPost, "/api/admin/register", `{"userId":"u1","secretCode":"s3cret"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"admin":{"id":"a1","userId":"u1","createdAt":"0001-01-01T00:00:00Z"}}`, rec.Body.String())
}

func TestValidate(t *testing.T) {
	rec := do(t, stubGuard{}, "u1", http.MethodPost, "/api/admin/validate", `{"secretCode":"s3cret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true}`, rec.Body.String())

	rec = do(t, stubGuard{}, "u1", http.MethodPost, "/api/admin/validate", `{"secretCode":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheck(t *testing.T) {
	rec := do(t, stubGuard{admin: true}, "u1", http.MethodGet, "/api/admin/check", "")
	assert.JSONEq(t, `{"isAdmin":true}`, rec.Body.String())

	rec = do(t, stubGuard{}, "u1", http.MethodGet, "/api/admin/check", "")
	assert.JSONEq(t, `{"isAdmin":false}`, rec.Body.String())

	rec = do(t, stubGuard{}, "", http.MethodGet, "/api/admin/check", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
