package entities

import "time"

type Order struct {
	ID           string
	CustomerID   string
	Description  string
	Price        float64
	MaterialCost float64
	OrderDate    time.Time
	Status       OrderStatus
	ImagePath    *string
}

// OrderModify не содержит статуса: статус меняется только через отдельные операции.
type OrderModify struct {
	CustomerID   *string
	Description  *string
	Price        *float64
	MaterialCost *float64
	ImagePath    *string
}

type OrderWithCustomer struct {
	Order
	CustomerName  string
	CustomerPhone string
}
