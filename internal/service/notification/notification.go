package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"boutique/internal/entities"
)

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

// ProcessOrderStatusChange выбирает обработчик по новому статусу заказа.
// Статусы без уведомления пропускаются, sent в этом случае false.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, event entities.OrderStatusChanged) (bool, error) {
	if strings.TrimSpace(event.OrderID) == "" || !event.Status.IsValid() {
		return false, ErrInvalidEvent
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return false, nil
		}
		return false, err
	}

	if err := executeFn(ctx, event); err != nil {
		return false, fmt.Errorf("notify order %s: %w", event.OrderID, err)
	}
	return true, nil
}
