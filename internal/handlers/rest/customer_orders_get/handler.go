package customer_orders_get

import (
	"net/http"

	"boutique/internal/handlers/rest/render"
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

// ServeHTTP для неизвестного покупателя отдает пустой список, а не 404.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	orders, err := h.service.GetCustomerOrders(r.Context(), id)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("customer", id),
		).Error("get customer orders")
		render.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch customer orders")
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Orders(orders))
}
