package orders_ws_get

import (
	"net/http"

	"boutique/pkg/logger"
	"github.com/gorilla/websocket"
)

type Handler struct {
	log      handlerLogger
	hub      Hub
	upgrader websocket.Upgrader
}

func New(log handlerLogger, hub Hub) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// лента открыта для любого Origin, авторизации у API нет
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP апгрейдит соединение и отдает его хабу, дальше по нему идут события смены статуса.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade")
		return
	}

	h.hub.Attach(conn)
}
