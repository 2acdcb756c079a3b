package handler

import (
	"net/http"
	"staybook/internal/destinations/service"
	"staybook/pkg/contracts"
	apperrors "staybook/pkg/errors"
	httputil "staybook/pkg/http"
	"staybook/pkg/logger"
	"staybook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type DestinationHandler struct {
	service service.DestinationService
	guard   contracts.AdminGuard
	log     *logger.Logger
}

func NewDestinationHandler(service service.DestinationService, guard contracts.AdminGuard, log *logger.Logger) *DestinationHandler {
	return &DestinationHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

func (h *DestinationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := h.guard.RequireAdmin(r.Context()); err != nil {
		h.writeError(w, r, "Create", err)
		return
	}

	var destination model.Destination
	if err := httputil.DecodeBody(r, &destination); err != nil {
		h.writeError(w, r, "Create", err)
		return
	}

	if err := h.service.Create(r.Context(), &destination); err != nil {
		h.writeError(w, r, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, destination); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *DestinationHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	destination, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, r, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, destination); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DestinationHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, r, "GetAll", err)
		return
	}

	destinations, total, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, r, "GetAll", err)
		return
	}

	if err := httputil.WritePaginated(w, destinations, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *DestinationHandler) Replace(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if _, err := h.guard.RequireAdmin(r.Context()); err != nil {
		h.writeError(w, r, "Replace", err)
		return
	}

	var destination model.Destination
	if err := httputil.DecodeBody(r, &destination); err != nil {
		h.writeError(w, r, "Replace", err)
		return
	}

	updated, err := h.service.Replace(r.Context(), ps.ByName("id"), &destination)
	if err != nil {
		h.writeError(w, r, "Replace", err)
		return
	}

	if err := httputil.WriteSuccess(w, updated); err != nil {
		h.log.Error("failed to write success response", "handler", "Replace", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DestinationHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if _, err := h.guard.RequireAdmin(r.Context()); err != nil {
		h.writeError(w, r, "Delete", err)
		return
	}

	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, r, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *DestinationHandler) writeError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	if appErr := apperrors.AsAppError(err); appErr.StatusCode() >= http.StatusInternalServerError {
		h.log.Ctx(r.Context()).Error("request failed", "handler", handler, "error", err)
	}
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *DestinationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/destinations", h.GetAll)
	router.GET("/api/destinations/:id", h.GetByID)
	router.POST("/api/destinations", h.Create)
	router.PUT("/api/destinations/:id", h.Replace)
	router.DELETE("/api/destinations/:id", h.Delete)
}
