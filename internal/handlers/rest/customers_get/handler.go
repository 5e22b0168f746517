package customers_get

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

// ServeHTTP отдает всех покупателей или результат поиска по ?search= (имя или телефон).
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	customers, err := h.service.ListCustomers(r.Context(), search)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list customers")
		render.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.CustomersWithStats(customers))
}
