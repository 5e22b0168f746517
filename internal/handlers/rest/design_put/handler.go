package design_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"boutique/internal/generated/dto"
	"boutique/internal/handlers/rest/render"
	"boutique/internal/service/design"
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

	var designDTO dto.DesignInput
	err := json.NewDecoder(r.Body).Decode(&designDTO)
	if err != nil {
		render.Error(w, h.log, http.StatusBadRequest, "Invalid design data")
		return
	}

	designEntity, err := h.service.UpdateDesign(r.Context(), id, render.DesignModify(designDTO))
	if err != nil {
		switch {
		case errors.Is(err, design.ErrDesignNotFound),
			errors.Is(err, design.ErrInvalidDesignID):
			render.Error(w, h.log, http.StatusNotFound, "Design not found")
		case errors.Is(err, design.ErrInvalidName),
			errors.Is(err, design.ErrInvalidCategory),
			errors.Is(err, design.ErrInvalidPrice):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid design data")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("design", id),
			).Error("update design")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to update design")
		}
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Design(*designEntity))
}
