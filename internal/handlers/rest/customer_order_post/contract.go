//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_order_post_test
package customer_order_post

import (
	"context"
	"io"

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
	CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type FileStorage interface {
	Save(filename string, contentType string, r io.Reader) (string, error)
	Remove(path string) error
	MaxBytes() int64
}
