package handler

import (
	"bytes"
	"net/http"
	"staybook/internal/bookings/export"
	"staybook/internal/bookings/service"
	"staybook/pkg/auth"
	"staybook/pkg/contracts"
	apperrors "staybook/pkg/errors"
	httputil "staybook/pkg/http"
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"time"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	guard   contracts.AdminGuard
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, guard contracts.AdminGuard, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

type statusUpdateResponse struct {
	Message string             `json:"message"`
	Booking *model.BookingView `json:"booking"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, err := auth.RequireUser(r.Context())
	if err != nil {
		h.writeError(w, r, "Create", err)
		return
	}

	var req model.BookingRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		h.writeError(w, r, "Create", err)
		return
	}

	booking, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.writeError(w, r, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, err := auth.RequireUser(r.Context())
	if err != nil {
		h.writeError(w, r, "ListMine", err)
		return
	}

	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, r, "ListMine", err)
		return
	}

	views, total, err := h.service.ListForUser(r.Context(), userID, limit, offset)
	if err != nil {
		h.writeError(w, r, "ListMine", err)
		return
	}

	if err := httputil.WritePaginated(w, views, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "ListMine", "operation", "WritePaginated", "error", err)
	}
}

// UpdateStatus serves PATCH /api/bookings/:id and PATCH /api/bookings. The
// id comes from the path when present, otherwise from bookingId in the body.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, err := auth.RequireUser(r.Context())
	if err != nil {
		h.writeError(w, r, "UpdateStatus", err)
		return
	}

	id, status, err := decodeStatusUpdate(r, ps)
	if err != nil {
		h.writeError(w, r, "UpdateStatus", err)
		return
	}

	isAdmin, err := h.guard.IsAdmin(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, "UpdateStatus", err)
		return
	}

	view, err := h.service.UpdateStatus(r.Context(), userID, isAdmin, id, status)
	if err != nil {
		h.writeError(w, r, "UpdateStatus", err)
		return
	}

	h.writeStatusUpdated(w, "UpdateStatus", view)
}

func (h *BookingHandler) AdminList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := h.guard.RequireAdmin(r.Context()); err != nil {
		h.writeError(w, r, "AdminList", err)
		return
	}

	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, r, "AdminList", err)
		return
	}

	views, total, err := h.service.ListAll(r.Context(), listFilter(r), limit, offset)
	if err != nil {
		h.writeError(w, r, "AdminList", err)
		return
	}

	if err := httputil.WritePaginated(w, views, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "AdminList", "operation", "WritePaginated", "error", err)
	}
}

func (h *BookingHandler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	adminID, err := h.guard.RequireAdmin(r.Context())
	if err != nil {
		h.writeError(w, r, "AdminUpdateStatus", err)
		return
	}

	id, status, err := decodeStatusUpdate(r, ps)
	if err != nil {
		h.writeError(w, r, "AdminUpdateStatus", err)
		return
	}

	view, err := h.service.AdminUpdateStatus(r.Context(), adminID, id, status)
	if err != nil {
		h.writeError(w, r, "AdminUpdateStatus", err)
		return
	}

	h.writeStatusUpdated(w, "AdminUpdateStatus", view)
}

func (h *BookingHandler) Export(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := h.guard.RequireAdmin(r.Context()); err != nil {
		h.writeError(w, r, "Export", err)
		return
	}

	views, err := h.service.Export(r.Context(), listFilter(r))
	if err != nil {
		h.writeError(w, r, "Export", err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteBookings(&buf, views); err != nil {
		h.writeError(w, r, "Export", apperrors.Internal("Failed to export bookings", err))
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Error("failed to write export", "handler", "Export", "error", err)
	}
}

func listFilter(r *http.Request) model.BookingFilter {
	query := r.URL.Query()
	return model.BookingFilter{
		Status:  query.Get("status"),
		HotelID: query.Get("hotelId"),
		UserID:  query.Get("userId"),
	}
}

func decodeStatusUpdate(r *http.Request, ps httprouter.Params) (string, string, error) {
	var body model.StatusUpdate
	if err := httputil.DecodeBody(r, &body); err != nil {
		return "", "", err
	}
	id := ps.ByName("id")
	if id == "" {
		id = body.BookingID
	}
	if id == "" {
		return "", "", apperrors.InvalidInput("Booking ID is required")
	}
	return id, body.Status, nil
}

func (h *BookingHandler) writeStatusUpdated(w http.ResponseWriter, handler string, view *model.BookingView) {
	if err := httputil.WriteJSON(w, http.StatusOK, statusUpdateResponse{
		Message: "Booking status updated successfully",
		Booking: view,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "operation", "WriteJSON", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	if appErr := apperrors.AsAppError(err); appErr.StatusCode() >= http.StatusInternalServerError {
		h.log.Ctx(r.Context()).Error("request failed", "handler", handler, "error", err)
	}
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/bookings", h.Create)
	router.GET("/api/bookings", h.ListMine)
	router.PATCH("/api/bookings", h.UpdateStatus)
	router.PATCH("/api/bookings/:id", h.UpdateStatus)
	router.GET("/api/admin/bookings", h.AdminList)
	router.PATCH("/api/admin/bookings", h.AdminUpdateStatus)
	router.PATCH("/api/admin/bookings/:id", h.AdminUpdateStatus)
	router.GET("/api/admin/exports/bookings", h.Export)
}
