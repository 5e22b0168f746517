package render

import (
	"encoding/json"
	"net/http"

	"boutique/internal/generated/dto"
	"boutique/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// JSON пишет тело ответа, ошибку кодирования только логирует: заголовок уже отправлен.
func JSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Error(w http.ResponseWriter, log handlerLogger, status int, message string) {
	JSON(w, log, status, dto.Error{Message: message})
}
