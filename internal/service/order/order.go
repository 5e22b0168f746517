package order

import (
	"context"
	"fmt"
	"time"

	"boutique/internal/entities"
	"github.com/google/uuid"
)

type Service struct {
	repository Repository
	publisher  EventPublisher
	policy     TransitionPolicy
	now        func() time.Time
}

func New(repository Repository, publisher EventPublisher, policy TransitionPolicy) *Service {
	if policy == nil {
		policy = AnyTransition{}
	}
	return &Service{
		repository: repository,
		publisher:  publisher,
		policy:     policy,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// ListOrders возвращает заказы с данными покупателя. Пустой status означает без фильтра.
func (s *Service) ListOrders(ctx context.Context, status string) ([]entities.OrderWithCustomer, error) {
	filter := entities.OrderStatus(status)
	if status != "" && !filter.IsValid() {
		return nil, ErrInvalidStatus
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := s.repository.ListOrders()
	if status == "" {
		return orders, nil
	}

	filtered := make([]entities.OrderWithCustomer, 0, len(orders))
	for _, o := range orders {
		if o.Status == filter {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	order, ok := s.repository.GetOrder(id)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CreateOrder не проверяет, что покупатель существует.
func (s *Service) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.CustomerID == nil ||
		orderModify.Description == nil ||
		orderModify.Price == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*orderModify.CustomerID) {
		return nil, ErrInvalidCustomerID
	}
	if err := validateModify(orderModify); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	order := s.repository.CreateOrder(orderModify)
	return &order, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id string, orderModify entities.OrderModify) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}
	if orderModify.CustomerID != nil && !isValidID(*orderModify.CustomerID) {
		return nil, ErrInvalidCustomerID
	}
	if err := validateModify(orderModify); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	order, ok := s.repository.UpdateOrder(id, orderModify)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	current, ok := s.repository.GetOrder(id)
	if !ok {
		return nil, ErrOrderNotFound
	}
	if !s.policy.Allow(current.Status, status) {
		return nil, fmt.Errorf("%s -> %s: %w", current.Status, status, ErrTransitionNotAllowed)
	}

	return s.changeStatus(ctx, current, status)
}

// AdvanceOrder переводит заказ в следующий по циклу статус.
func (s *Service) AdvanceOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("advance order: %w", err)
	}

	current, ok := s.repository.GetOrder(id)
	if !ok {
		return nil, ErrOrderNotFound
	}
	next, ok := current.Status.Next()
	if !ok {
		return nil, ErrTerminalStatus
	}

	return s.changeStatus(ctx, current, next)
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if !isValidID(id) {
		return ErrInvalidOrderID
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	if !s.repository.DeleteOrder(id) {
		return ErrOrderNotFound
	}
	return nil
}

func (s *Service) changeStatus(ctx context.Context, current *entities.Order, status entities.OrderStatus) (*entities.Order, error) {
	updated, ok := s.repository.UpdateOrderStatus(current.ID, status)
	if !ok {
		// заказ удалили между чтением и записью
		return nil, ErrOrderNotFound
	}

	if current.Status != status {
		s.publisher.Publish(ctx, s.newEvent(current.Status, updated))
	}
	return updated, nil
}

func (s *Service) newEvent(previous entities.OrderStatus, order *entities.Order) entities.OrderStatusChanged {
	event := entities.OrderStatusChanged{
		EventID:        uuid.NewString(),
		OrderID:        order.ID,
		CustomerID:     order.CustomerID,
		Description:    order.Description,
		PreviousStatus: previous,
		Status:         order.Status,
		ChangedAt:      s.now(),
	}
	if customer, ok := s.repository.GetCustomer(order.CustomerID); ok {
		event.CustomerName = customer.Name
		event.CustomerPhone = customer.Phone
	}
	return event
}

func validateModify(orderModify entities.OrderModify) error {
	if orderModify.Description != nil && !isValidDescription(*orderModify.Description) {
		return ErrInvalidDescription
	}
	if orderModify.Price != nil && !isValidAmount(*orderModify.Price) {
		return ErrInvalidPrice
	}
	if orderModify.MaterialCost != nil && !isValidAmount(*orderModify.MaterialCost) {
		return ErrInvalidMaterialCost
	}
	return nil
}
