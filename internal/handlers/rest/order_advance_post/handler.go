package order_advance_post

import (
	"errors"
	"net/http"

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

// ServeHTTP переводит заказ на следующий этап: New -> Cutting -> Stitching -> Ready -> Completed.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	orderEntity, err := h.service.AdvanceOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrInvalidOrderID):
			render.Error(w, h.log, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrTerminalStatus):
			render.Error(w, h.log, http.StatusConflict, "Order is already completed")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", id),
			).Error("advance order")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to advance order")
		}
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Order(*orderEntity))
}
