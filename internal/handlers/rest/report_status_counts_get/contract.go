//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_status_counts_get_test
package report_status_counts_get

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
	StatusCounts(ctx context.Context) (entities.StatusCounts, error)
}
