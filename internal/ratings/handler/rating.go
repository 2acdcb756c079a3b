package handler

import (
	"net/http"
	"staybook/internal/ratings/service"
	"staybook/pkg/auth"
	apperrors "staybook/pkg/errors"
	httputil "staybook/pkg/http"
	"staybook/pkg/logger"
	"staybook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type RatingHandler struct {
	service service.RatingService
	log     *logger.Logger
}

func NewRatingHandler(service service.RatingService, log *logger.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log,
	}
}

func (h *RatingHandler) Submit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, err := auth.RequireUser(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req model.RatingRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.service.Submit(r.Context(), userID, ps.ByName("id"), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, result); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Submit", "operation", "WriteJSON", "error", err)
	}
}

func (h *RatingHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if appErr := apperrors.AsAppError(err); appErr.StatusCode() >= http.StatusInternalServerError {
		h.log.Ctx(r.Context()).Error("request failed", "handler", "Submit", "error", err)
	}
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", "Submit", "operation", "WriteError", "error", writeErr)
	}
}

func (h *RatingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/hotels/:id/rate", h.Submit)
}
