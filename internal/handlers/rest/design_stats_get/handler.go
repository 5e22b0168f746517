package design_stats_get

import (
	"net/http"

	"boutique/internal/generated/dto"
	"boutique/internal/handlers/rest/render"
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
	stats, err := h.service.DesignStats(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("design stats")
		render.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch design stats")
		return
	}

	render.JSON(w, h.log, http.StatusOK, dto.DesignStats{
		TotalDesigns:   stats.TotalDesigns,
		NewDesigns:     stats.NewDesigns,
		PopularDesigns: stats.PopularDesigns,
		Categories:     stats.Categories,
	})
}
