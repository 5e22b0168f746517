package report_top_customers_get

import (
	"errors"
	"net/http"
	"strconv"

	"boutique/internal/handlers/rest/render"
	"boutique/internal/service/report"
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
	limit := report.DefaultTopCustomersLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			render.Error(w, h.log, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	customers, err := h.service.TopCustomers(r.Context(), limit)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidLimit):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid limit")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("top customers")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch top customers")
		}
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.CustomersWithStats(customers))
}
