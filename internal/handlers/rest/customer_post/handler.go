package customer_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"boutique/internal/entities"
	"boutique/internal/generated/dto"
	"boutique/internal/handlers/rest/render"
	"boutique/internal/service/customer"
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
	var customerCreateDTO dto.CustomerCreate
	err := json.NewDecoder(r.Body).Decode(&customerCreateDTO)
	if err != nil {
		render.Error(w, h.log, http.StatusBadRequest, "Invalid customer data")
		return
	}

	customerModify := entities.CustomerModify{
		Name:         &customerCreateDTO.Name,
		Phone:        &customerCreateDTO.Phone,
		Measurements: customerCreateDTO.Measurements,
		Notes:        customerCreateDTO.Notes,
	}

	customerEntity, err := h.service.CreateCustomer(r.Context(), customerModify)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrPhoneTaken):
			render.Error(w, h.log, http.StatusBadRequest, "Phone number already exists")
		case errors.Is(err, customer.ErrMissingRequiredFields),
			errors.Is(err, customer.ErrInvalidName),
			errors.Is(err, customer.ErrInvalidPhone):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid customer data")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create customer")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to create customer")
		}
		return
	}

	render.JSON(w, h.log, http.StatusCreated, render.Customer(*customerEntity))
}
