package design_get

import (
	"errors"
	"net/http"

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

	designEntity, err := h.service.GetDesign(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, design.ErrDesignNotFound),
			errors.Is(err, design.ErrInvalidDesignID):
			render.Error(w, h.log, http.StatusNotFound, "Design not found")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("design", id),
			).Error("get design")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch design")
		}
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Design(*designEntity))
}
