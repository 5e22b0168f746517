package ping_get

import (
	"net/http"

	"boutique/internal/generated/dto"
	"boutique/internal/handlers/rest/render"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"
	render.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: &message,
	})
}
