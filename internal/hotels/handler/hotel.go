package handler

import (
	"net/http"
	"staybook/internal/hotels/service"
	"staybook/pkg/contracts"
	apperrors "staybook/pkg/errors"
	httputil "staybook/pkg/http"
	"staybook/pkg/logger"
	"staybook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type HotelHandler struct {
	service service.HotelService
	guard   contracts.AdminGuard
	log     *logger.Logger
}

func NewHotelHandler(service service.HotelService, guard contracts.AdminGuard, log *logger.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

// createHotelRequest tells an absent price apart from a zero one.
type createHotelRequest struct {
	model.Hotel
	Price *float64 `json:"price"`
}

type updateHotelResponse struct {
	Message string       `json:"message"`
	Hotel   *model.Hotel `json:"hotel"`
}

func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := h.guard.RequireAdmin(r.Context()); err != nil {
		h.writeError(w, r, "Create", err)
		return
	}

	var req createHotelRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		h.writeError(w, r, "Create", err)
		return
	}
	if req.Price == nil {
		h.writeError(w, r, "Create", apperrors.Validation("Please provide a price", nil))
		return
	}

	hotel := req.Hotel
	hotel.Price = *req.Price
	if err := h.service.Create(r.Context(), &hotel); err != nil {
		h.writeError(w, r, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, hotel); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *HotelHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hotel, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, r, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, hotel); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, r, "GetAll", err)
		return
	}

	query := r.URL.Query()
	filter := model.HotelFilter{
		DestinationID: query.Get("destination"),
		DealsOnly:     query.Get("deals") == "true",
	}

	hotels, total, err := h.service.GetAll(r.Context(), filter, limit, offset)
	if err != nil {
		h.writeError(w, r, "GetAll", err)
		return
	}

	if err := httputil.WritePaginated(w, hotels, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if _, err := h.guard.RequireAdmin(r.Context()); err != nil {
		h.writeError(w, r, "Update", err)
		return
	}

	var updates model.HotelUpdate
	if err := httputil.DecodeBody(r, &updates); err != nil {
		h.writeError(w, r, "Update", err)
		return
	}

	hotel, err := h.service.Update(r.Context(), ps.ByName("id"), &updates)
	if err != nil {
		h.writeError(w, r, "Update", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, updateHotelResponse{
		Message: "Hotel updated successfully",
		Hotel:   hotel,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Update", "operation", "WriteJSON", "error", err)
	}
}

func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.delete(w, r, ps.ByName("id"))
}

// DeleteByQuery serves DELETE /api/admin/hotels?id=.
func (h *HotelHandler) DeleteByQuery(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.delete(w, r, r.URL.Query().Get("id"))
}

func (h *HotelHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if _, err := h.guard.RequireAdmin(r.Context()); err != nil {
		h.writeError(w, r, "Delete", err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *HotelHandler) writeError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	if appErr := apperrors.AsAppError(err); appErr.StatusCode() >= http.StatusInternalServerError {
		h.log.Ctx(r.Context()).Error("request failed", "handler", handler, "error", err)
	}
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *HotelHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/hotels", h.GetAll)
	router.GET("/api/hotels/:id", h.GetByID)
	router.PATCH("/api/hotels/:id", h.Update)
	router.DELETE("/api/hotels/:id", h.Delete)
	router.POST("/api/admin/hotels", h.Create)
	router.DELETE("/api/admin/hotels", h.DeleteByQuery)
}
