package orders_get

import (
	"errors"
	"net/http"

	"boutique/internal/handlers/rest/render"
	"boutique/internal/service/order"
	"boutique/pkg/logger"
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
	status := r.URL.Query().Get("status")

	orders, err := h.service.ListOrders(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid status data")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list orders")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch orders")
		}
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.OrdersWithCustomer(orders))
}
