//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"boutique/internal/entities"
)

type Repository interface {
	AllOrders() []entities.Order
	ListCustomers() []entities.CustomerWithStats
}
