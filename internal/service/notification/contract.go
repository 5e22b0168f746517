//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"boutique/internal/entities"
)

type (
	ExecuteFn      func(ctx context.Context, event entities.OrderStatusChanged) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatus) (ExecuteFn, error)
	}
)
