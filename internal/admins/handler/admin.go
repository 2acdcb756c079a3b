package handler

import (
	"net/http"
	"staybook/internal/admins/service"
	"staybook/pkg/auth"
	"staybook/pkg/contracts"
	apperrors "staybook/pkg/errors"
	httputil "staybook/pkg/http"
	"staybook/pkg/logger"
	"staybook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AdminHandler struct {
	service service.AdminService
	guard   contracts.AdminGuard
	log     *logger.Logger
}

func NewAdminHandler(service service.AdminService, guard contracts.AdminGuard, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

type registerResponse struct {
	Success bool         `json:"success"`
	Admin   *model.Admin `json:"admin"`
}

type validateRequest struct {
	SecretCode string `json:"secretCode"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

type checkResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	callerID, err := auth.RequireUser(r.Context())
	if err != nil {
		h.writeError(w, r, "Register", err)
		return
	}

	var req model.AdminRegistration
	if err := httputil.DecodeBody(r, &req); err != nil {
		h.writeError(w, r, "Register", err)
		return
	}

	admin, err := h.service.Register(r.Context(), callerID, &req)
	if err != nil {
		h.writeError(w, r, "Register", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusCreated, registerResponse{Success: true, Admin: admin}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Register", "operation", "WriteJSON", "error", err)
	}
}

func (h *AdminHandler) Validate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := auth.RequireUser(r.Context()); err != nil {
		h.writeError(w, r, "Validate", err)
		return
	}

	var req validateRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		h.writeError(w, r, "Validate", err)
		return
	}

	if err := h.service.ValidateSecret(r.Context(), req.SecretCode); err != nil {
		h.writeError(w, r, "Validate", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, validateResponse{Valid: true}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Validate", "operation", "WriteJSON", "error", err)
	}
}

func (h *AdminHandler) Check(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, err := auth.RequireUser(r.Context())
	if err != nil {
		h.writeError(w, r, "Check", err)
		return
	}

	isAdmin, err := h.guard.IsAdmin(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, "Check", apperrors.Internal("Failed to check admin status", err))
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, checkResponse{IsAdmin: isAdmin}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Check", "operation", "WriteJSON", "error", err)
	}
}

func (h *AdminHandler) writeError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	if appErr := apperrors.AsAppError(err); appErr.StatusCode() >= http.StatusInternalServerError {
		h.log.Ctx(r.Context()).Error("request failed", "handler", handler, "error", err)
	}
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *AdminHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/admin/register", h.Register)
	router.POST("/api/admin/validate", h.Validate)
	router.GET("/api/admin/check", h.Check)
}
