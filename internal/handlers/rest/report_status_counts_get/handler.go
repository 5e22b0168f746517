package report_status_counts_get

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
	counts, err := h.service.StatusCounts(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("status counts")
		render.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch status counts")
		return
	}

	res := make(dto.StatusCounts, len(counts))
	for status, count := range counts {
		res[status.String()] = count
	}

	render.JSON(w, h.log, http.StatusOK, res)
}
