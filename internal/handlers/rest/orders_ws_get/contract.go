//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_ws_get_test
package orders_ws_get

import (
	"boutique/pkg/logger"
	"github.com/gorilla/websocket"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Attach(conn *websocket.Conn)
}
