//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"boutique/internal/entities"
)

type Repository interface {
	ListCustomers() []entities.CustomerWithStats
	SearchCustomers(query string) []entities.CustomerWithStats
	CustomerStats(id string) (entities.CustomerWithStats, bool)
	GetCustomerByPhone(phone string) (*entities.Customer, bool)
	CreateCustomer(customerModify entities.CustomerModify) entities.Customer
	UpdateCustomer(id string, customerModify entities.CustomerModify) (*entities.Customer, bool)
	DeleteCustomer(id string) bool
	GetOrdersByCustomer(customerID string) []entities.Order
}
