package memory

import (
	"boutique/internal/entities"
)

type orderRecord struct {
	entities.Order
}

func (r orderRecord) toEntity() entities.Order {
	o := r.Order
	o.ImagePath = cloneString(r.ImagePath)
	return o
}

// ListOrders отдает заказы вместе с данными покупателя.
// Заказы удаленных покупателей в выборку не попадают.
func (s *Store) ListOrders() []entities.OrderWithCustomer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.OrderWithCustomer, 0, len(s.orderOrder))
	for _, id := range s.orderOrder {
		o := s.orders[id]
		c, ok := s.customers[o.CustomerID]
		if !ok {
			continue
		}
		result = append(result, entities.OrderWithCustomer{
			Order:         o.toEntity(),
			CustomerName:  c.Name,
			CustomerPhone: c.Phone,
		})
	}
	return result
}

func (s *Store) GetOrder(id string) (*entities.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.orders[id]
	if !ok {
		return nil, false
	}
	o := record.toEntity()
	return &o, true
}

func (s *Store) GetOrdersByCustomer(customerID string) []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.Order, 0)
	for _, id := range s.orderOrder {
		o := s.orders[id]
		if o.CustomerID == customerID {
			result = append(result, o.toEntity())
		}
	}
	return result
}

// AllOrders - снимок всех заказов, включая заказы без покупателя.
func (s *Store) AllOrders() []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.Order, 0, len(s.orderOrder))
	for _, id := range s.orderOrder {
		result = append(result, s.orders[id].toEntity())
	}
	return result
}

// CreateOrder всегда выставляет начальный статус.
func (s *Store) CreateOrder(modify entities.OrderModify) entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := orderRecord{Order: entities.Order{
		ID:        s.newID(),
		OrderDate: s.now(),
		Status:    entities.DefaultOrderStatus,
		ImagePath: normalizeText(modify.ImagePath),
	}}
	if modify.CustomerID != nil {
		record.CustomerID = *modify.CustomerID
	}
	if modify.Description != nil {
		record.Description = *modify.Description
	}
	if modify.Price != nil {
		record.Price = *modify.Price
	}
	if modify.MaterialCost != nil {
		record.MaterialCost = *modify.MaterialCost
	}

	s.orders[record.ID] = record
	s.orderOrder = append(s.orderOrder, record.ID)

	return record.toEntity()
}

func (s *Store) UpdateOrder(id string, modify entities.OrderModify) (*entities.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.orders[id]
	if !ok {
		return nil, false
	}

	if modify.CustomerID != nil {
		record.CustomerID = *modify.CustomerID
	}
	if modify.Description != nil {
		record.Description = *modify.Description
	}
	if modify.Price != nil {
		record.Price = *modify.Price
	}
	if modify.MaterialCost != nil {
		record.MaterialCost = *modify.MaterialCost
	}
	if modify.ImagePath != nil {
		record.ImagePath = normalizeText(modify.ImagePath)
	}
	s.orders[id] = record

	o := record.toEntity()
	return &o, true
}

// UpdateOrderStatus записывает любой статус без проверки перехода.
func (s *Store) UpdateOrderStatus(id string, status entities.OrderStatus) (*entities.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.orders[id]
	if !ok {
		return nil, false
	}
	record.Status = status
	s.orders[id] = record

	o := record.toEntity()
	return &o, true
}

func (s *Store) DeleteOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return false
	}
	delete(s.orders, id)
	s.orderOrder = removeID(s.orderOrder, id)
	return true
}
