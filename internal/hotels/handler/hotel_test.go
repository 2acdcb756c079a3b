package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHotelService struct {
	created  *model.Hotel
	deleted  string
	filter   model.HotelFilter
	limit    int
	updateFn func(ctx context.Context, id string, u *model.HotelUpdate) (*model.Hotel, error)
}

func (m *mockHotelService) Create(ctx context.Context, hotel *model.Hotel) error {
	hotel.ID = "h-new"
	m.created = hotel
	return nil
}

func (m *mockHotelService) GetByID(ctx context.Context, id string) (*model.Hotel, error) {
	if id == "missing" {
		return nil, apperrors.NotFound("Hotel")
	}
	return &model.Hotel{ID: id, Name: "Mountain View Lodge"}, nil
}

func (m *mockHotelService) GetAll(ctx context.Context, filter model.HotelFilter, limit int, offset int64) ([]*model.Hotel, int64, error) {
	m.filter = filter
	m.limit = limit
	return []*model.Hotel{{ID: "h1"}}, 1, nil
}

func (m *mockHotelService) Update(ctx context.Context, id string, u *model.HotelUpdate) (*model.Hotel, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, u)
	}
	return &model.Hotel{ID: id}, nil
}

func (m *mockHotelService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Hotel ID is required")
	}
	m.deleted = id
	return nil
}

// stubGuard admits every caller unless err is set.
type stubGuard struct {
	err error
}

func (g stubGuard) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return g.err == nil, nil
}

func (g stubGuard) RequireAdmin(ctx context.Context) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return "admin_1", nil
}

func newRouter(svc *mockHotelService, guard stubGuard) *httprouter.Router {
	router := httprouter.New()
	NewHotelHandler(svc, guard, logger.Discard()).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetAll_Filters(t *testing.T) {
	svc := &mockHotelService{}
	rec := serve(newRouter(svc, stubGuard{}), http.MethodGet, "/api/hotels?deals=true&destination=d1&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.filter.DealsOnly)
	assert.Equal(t, "d1", svc.filter.DestinationID)
	assert.Equal(t, 5, svc.limit)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["total_count"])
}

func TestGetAll_InvalidLimit(t *testing.T) {
	rec := serve(newRouter(&mockHotelService{}, stubGuard{}), http.MethodGet, "/api/hotels?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetByID_NotFound(t *testing.T) {
	rec := serve(newRouter(&mockHotelService{}, stubGuard{}), http.MethodGet, "/api/hotels/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Hotel not found"}`, rec.Body.String())
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		guard      stubGuard
		body       string
		wantStatus int
	}{
		{"anonymous", stubGuard{err: apperrors.Unauthorized("Unauthorized")}, `{}`, http.StatusUnauthorized},
		{"not admin", stubGuard{err: apperrors.Forbidden("Forbidden")}, `{}`, http.StatusForbidden},
		{"missing price", stubGuard{}, `{"name":"Lodge"}`, http.StatusBadRequest},
		{"malformed", stubGuard{}, `{`, http.StatusBadRequest},
		{"created", stubGuard{}, `{"name":"Lodge","price":0,"image":"https://x.io/a.jpg","location":"Alps","description":"d"}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockHotelService{}
			rec := serve(newRouter(svc, tt.guard), http.MethodPost, "/api/admin/hotels", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				require.NotNil(t, svc.created)
				assert.Equal(t, "Lodge", svc.created.Name)
			} else {
				assert.Nil(t, svc.created)
			}
		})
	}
}

func TestUpdate_Response(t *testing.T) {
	svc := &mockHotelService{}
	rec := serve(newRouter(svc, stubGuard{}), http.MethodPatch, "/api/hotels/h1", `{"discountPercentage":10}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Message string      `json:"message"`
		Hotel   model.Hotel `json:"hotel"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Hotel updated successfully", body.Message)
	assert.Equal(t, "h1", body.Hotel.ID)
}

func TestDelete(t *testing.T) {
	svc := &mockHotelService{}
	router := newRouter(svc, stubGuard{})

	rec := serve(router, http.MethodDelete, "/api/hotels/h1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "h1", svc.deleted)

	rec = serve(router, http.MethodDelete, "/api/admin/hotels?id=h2", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "h2", svc.deleted)

	rec = serve(router, http.MethodDelete, "/api/admin/hotels", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Hotel ID is required"}`, rec.Body.String())
}
