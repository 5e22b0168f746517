package order_put

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

// ServeHTTP частично обновляет заказ. Статус здесь не меняется, для него есть /status.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var orderUpdateDTO dto.OrderUpdate
	err := json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		render.Error(w, h.log, http.StatusBadRequest, "Invalid order data")
		return
	}

	orderModify := entities.OrderModify{
		CustomerID:   orderUpdateDTO.CustomerID,
		Description:  orderUpdateDTO.Description,
		Price:        orderUpdateDTO.Price,
		MaterialCost: orderUpdateDTO.MaterialCost,
		ImagePath:    orderUpdateDTO.ImagePath,
	}

	orderEntity, err := h.service.UpdateOrder(r.Context(), id, orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrInvalidOrderID):
			render.Error(w, h.log, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrInvalidCustomerID),
			errors.Is(err, order.ErrInvalidDescription),
			errors.Is(err, order.ErrInvalidPrice),
			errors.Is(err, order.ErrInvalidMaterialCost):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid order data")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", id),
			).Error("update order")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Order(*orderEntity))
}
