//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_advance_post_test
package order_advance_post

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
	AdvanceOrder(ctx context.Context, id string) (*entities.Order, error)
}
