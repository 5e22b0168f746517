package customer_delete

import (
	"errors"
	"net/http"

	"boutique/internal/handlers/rest/render"
	"boutique/internal/service/customer"
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

// ServeHTTP удаляет покупателя, его заказы остаются.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.service.DeleteCustomer(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrCustomerNotFound),
			errors.Is(err, customer.ErrInvalidCustomerID):
			render.Error(w, h.log, http.StatusNotFound, "Customer not found")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("customer", id),
			).Error("delete customer")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to delete customer")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
