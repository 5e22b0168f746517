package entities

import "time"

type OrderStatusChanged struct {
	EventID        string      `json:"eventId"`
	OrderID        string      `json:"orderId"`
	CustomerID     string      `json:"customerId"`
	CustomerName   string      `json:"customerName"`
	CustomerPhone  string      `json:"customerPhone"`
	Description    string      `json:"description"`
	PreviousStatus OrderStatus `json:"previousStatus"`
	Status         OrderStatus `json:"status"`
	ChangedAt      time.Time   `json:"changedAt"`
}
