//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"boutique/internal/entities"
)

type Repository interface {
	ListOrders() []entities.OrderWithCustomer
	GetOrder(id string) (*entities.Order, bool)
	GetCustomer(id string) (*entities.Customer, bool)
	CreateOrder(orderModify entities.OrderModify) entities.Order
	UpdateOrder(id string, orderModify entities.OrderModify) (*entities.Order, bool)
	UpdateOrderStatus(id string, status entities.OrderStatus) (*entities.Order, bool)
	DeleteOrder(id string) bool
}

// EventPublisher доставляет событие смены статуса. Ошибки доставки остаются внутри публикатора.
type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderStatusChanged)
}
