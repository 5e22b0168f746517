package entities

type OrderStatus string

const (
	OrderNew       OrderStatus = "New"
	OrderCutting   OrderStatus = "Cutting"
	OrderStitching OrderStatus = "Stitching"
	OrderReady     OrderStatus = "Ready"
	OrderCompleted OrderStatus = "Completed"
)

const DefaultOrderStatus = OrderNew

// OrderStatuses перечисляет статусы в порядке производственного цикла.
var OrderStatuses = []OrderStatus{
	OrderNew,
	OrderCutting,
	OrderStitching,
	OrderReady,
	OrderCompleted,
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted
}

// Next возвращает следующий по циклу статус. Для Completed и неизвестных значений false.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, status := range OrderStatuses {
		if s != status {
			continue
		}
		if i+1 < len(OrderStatuses) {
			return OrderStatuses[i+1], true
		}
		return "", false
	}
	return "", false
}
