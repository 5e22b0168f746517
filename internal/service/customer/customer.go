package customer

import (
	"context"
	"fmt"
	"strings"

	"boutique/internal/entities"
)

type Customer struct {
	repository Repository
}

func New(repository Repository) *Customer {
	return &Customer{
		repository: repository,
	}
}

// ListCustomers возвращает всех покупателей, а при непустом search только найденных.
func (s *Customer) ListCustomers(ctx context.Context, search string) ([]entities.CustomerWithStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return s.repository.ListCustomers(), nil
	}
	return s.repository.SearchCustomers(search), nil
}

func (s *Customer) GetCustomer(ctx context.Context, id string) (*entities.CustomerWithStats, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCustomerID
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	customer, ok := s.repository.CustomerStats(id)
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return &customer, nil
}

// CreateCustomer проверяет уникальность телефона до записи. Проверка и запись
// не атомарны между собой.
func (s *Customer) CreateCustomer(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.Name == nil || customerModify.Phone == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidName(*customerModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPhone(*customerModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	if _, taken := s.repository.GetCustomerByPhone(*customerModify.Phone); taken {
		return nil, ErrPhoneTaken
	}

	customer := s.repository.CreateCustomer(customerModify)
	return &customer, nil
}

func (s *Customer) UpdateCustomer(ctx context.Context, id string, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCustomerID
	}
	if customerModify.Name != nil && !isValidName(*customerModify.Name) {
		return nil, ErrInvalidName
	}
	if customerModify.Phone != nil && !isValidPhone(*customerModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	customer, ok := s.repository.UpdateCustomer(id, customerModify)
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *Customer) DeleteCustomer(ctx context.Context, id string) error {
	if !isValidID(id) {
		return ErrInvalidCustomerID
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	if !s.repository.DeleteCustomer(id) {
		return ErrCustomerNotFound
	}
	return nil
}

// GetCustomerOrders не проверяет существование покупателя.
func (s *Customer) GetCustomerOrders(ctx context.Context, id string) ([]entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get customer orders: %w", err)
	}
	return s.repository.GetOrdersByCustomer(id), nil
}
