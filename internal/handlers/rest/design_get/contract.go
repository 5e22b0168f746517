//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=design_get_test
package design_get

import (
	"context"

	"boutique/internal/entities"
	"boutique/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetDesign(ctx context.Context, id string) (*entities.Design, error)
}
