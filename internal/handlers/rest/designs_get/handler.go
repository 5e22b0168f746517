package designs_get

import (
	"net/http"

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
	designs, err := h.service.ListDesigns(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list designs")
		render.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch designs")
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Designs(designs))
}
