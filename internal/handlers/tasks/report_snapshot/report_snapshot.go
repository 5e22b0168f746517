package report_snapshot

import (
	"context"
	"fmt"
	"time"

	"boutique/pkg/logger"
)

// ReportSnapshot периодически выгружает сводку по заказам в gauges для /metrics.
type ReportSnapshot struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewReportSnapshot(log logger.Logger, service Service, interval time.Duration) *ReportSnapshot {
	return &ReportSnapshot{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *ReportSnapshot) TTL() time.Duration {
	return r.interval
}

func (r *ReportSnapshot) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	counts, err := r.service.StatusCounts(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("status counts: %w", err)
	}
	for status, count := range counts {
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(count))
	}

	year, month := r.service.CurrentPeriod()
	stats, err := r.service.MonthlyStats(ctxWithTimeout, year, month)
	if err != nil {
		return fmt.Errorf("monthly stats: %w", err)
	}
	CurrentMonthSales.Set(stats.TotalSales)
	CurrentMonthNetProfit.Set(stats.NetProfit)

	if stats.TotalOrders > 0 {
		r.log.With(
			logger.NewField("year", year),
			logger.NewField("month", month),
			logger.NewField("orders", stats.TotalOrders),
		).Info("report snapshot")
	}

	return nil
}

func (r *ReportSnapshot) Info() string {
	return "report snapshot"
}
