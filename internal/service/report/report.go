package report

import (
	"context"
	"fmt"
	"time"

	"boutique/internal/entities"
)

type Service struct {
	repository Repository
	location   *time.Location
	now        func() time.Time
}

func New(repository Repository, location *time.Location) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		repository: repository,
		location:   location,
		now:        time.Now,
	}
}

// CurrentPeriod возвращает текущие год и месяц в часовом поясе отчетов.
func (s *Service) CurrentPeriod() (int, int) {
	now := s.now().In(s.location)
	return now.Year(), int(now.Month())
}

func (s *Service) MonthlyStats(ctx context.Context, year, month int) (*entities.MonthlyStats, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("monthly stats: %w", err)
	}

	stats := MonthlyStats(s.repository.AllOrders(), year, month, s.location)
	return &stats, nil
}

func (s *Service) StatusCounts(ctx context.Context) (entities.StatusCounts, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	return StatusCounts(s.repository.AllOrders()), nil
}

func (s *Service) TopCustomers(ctx context.Context, limit int) ([]entities.CustomerWithStats, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	return TopCustomers(s.repository.ListCustomers(), limit), nil
}
