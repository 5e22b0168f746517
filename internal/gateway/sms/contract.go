//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sms_test
package sms

import (
	"context"

	"boutique/pkg/logger"
)

type sender interface {
	Send(ctx context.Context, phone string, message string) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
