package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"boutique/internal/entities"
	"boutique/internal/generated/dto"
	"boutique/internal/handlers/rest/render"
	"boutique/internal/service/order"
	"boutique/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var statusDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		render.Error(w, h.log, http.StatusBadRequest, "Invalid status data")
		return
	}

	orderEntity, err := h.service.UpdateOrderStatus(r.Context(), id, entities.OrderStatus(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid status data")
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrInvalidOrderID):
			render.Error(w, h.log, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrTransitionNotAllowed):
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", id),
			).Warn("order status transition rejected")
			render.Error(w, h.log, http.StatusConflict, "Status transition not allowed")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", id),
			).Error("update order status")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to update order status")
		}
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Order(*orderEntity))
}
