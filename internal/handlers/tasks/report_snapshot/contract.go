//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_snapshot_test
package report_snapshot

import (
	"context"

	"boutique/internal/entities"
)

type Service interface {
	CurrentPeriod() (int, int)
	MonthlyStats(ctx context.Context, year int, month int) (*entities.MonthlyStats, error)
	StatusCounts(ctx context.Context) (entities.StatusCounts, error)
}
