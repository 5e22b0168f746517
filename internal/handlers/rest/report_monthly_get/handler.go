package report_monthly_get

import (
	"errors"
	"net/http"
	"strconv"

	"boutique/internal/generated/dto"
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

// ServeHTTP без ?year= и ?month= считает текущий месяц.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	year, month := h.service.CurrentPeriod()

	query := r.URL.Query()
	var err error
	if raw := query.Get("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			render.Error(w, h.log, http.StatusBadRequest, "Invalid report period")
			return
		}
	}
	if raw := query.Get("month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil {
			render.Error(w, h.log, http.StatusBadRequest, "Invalid report period")
			return
		}
	}

	stats, err := h.service.MonthlyStats(r.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidPeriod):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid report period")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("monthly stats")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch monthly stats")
		}
		return
	}

	render.JSON(w, h.log, http.StatusOK, dto.MonthlyStats{
		Year:               stats.Year,
		Month:              stats.Month,
		TotalSales:         stats.TotalSales,
		TotalMaterialCosts: stats.TotalMaterialCosts,
		NetProfit:          stats.NetProfit,
		TotalOrders:        stats.TotalOrders,
		CompletedOrders:    stats.CompletedOrders,
	})
}
