package entities

import "time"

type Customer struct {
	ID           string
	Name         string
	Phone        string
	Measurements *string
	Notes        *string
	CreatedAt    time.Time
}

// CustomerModify - входные данные для создания и частичного обновления.
// Nil поле при обновлении означает "не менять".
type CustomerModify struct {
	Name         *string
	Phone        *string
	Measurements *string
	Notes        *string
}

type CustomerWithStats struct {
	Customer
	TotalOrders   int
	TotalSpent    float64
	LastOrderDate *time.Time
}
