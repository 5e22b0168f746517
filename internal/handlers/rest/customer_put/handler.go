package customer_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"boutique/internal/entities"
	"boutique/internal/generated/dto"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var customerUpdateDTO dto.CustomerUpdate
	err := json.NewDecoder(r.Body).Decode(&customerUpdateDTO)
	if err != nil {
		render.Error(w, h.log, http.StatusBadRequest, "Invalid customer data")
		return
	}

	customerModify := entities.CustomerModify{
		Name:         customerUpdateDTO.Name,
		Phone:        customerUpdateDTO.Phone,
		Measurements: customerUpdateDTO.Measurements,
		Notes:        customerUpdateDTO.Notes,
	}

	customerEntity, err := h.service.UpdateCustomer(r.Context(), id, customerModify)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrCustomerNotFound),
			errors.Is(err, customer.ErrInvalidCustomerID):
			render.Error(w, h.log, http.StatusNotFound, "Customer not found")
		case errors.Is(err, customer.ErrInvalidName),
			errors.Is(err, customer.ErrInvalidPhone):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid customer data")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("customer", id),
			).Error("update customer")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to update customer")
		}
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Customer(*customerEntity))
}
