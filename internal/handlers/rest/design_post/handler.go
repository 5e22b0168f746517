package design_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"boutique/internal/generated/dto"
	"boutique/internal/handlers/rest/render"
	"boutique/internal/service/design"
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
	var designDTO dto.DesignInput
	err := json.NewDecoder(r.Body).Decode(&designDTO)
	if err != nil {
		render.Error(w, h.log, http.StatusBadRequest, "Invalid design data")
		return
	}

	designEntity, err := h.service.CreateDesign(r.Context(), render.DesignModify(designDTO))
	if err != nil {
		switch {
		case errors.Is(err, design.ErrMissingRequiredFields),
			errors.Is(err, design.ErrInvalidName),
			errors.Is(err, design.ErrInvalidCategory),
			errors.Is(err, design.ErrInvalidPrice):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid design data")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create design")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to create design")
		}
		return
	}

	render.JSON(w, h.log, http.StatusCreated, render.Design(*designEntity))
}
