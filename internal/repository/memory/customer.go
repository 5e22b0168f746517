package memory

import (
	"strings"
	"time"

	"boutique/internal/entities"
)

type customerRecord struct {
	entities.Customer
}

func (r customerRecord) toEntity() entities.Customer {
	c := r.Customer
	c.Measurements = cloneString(r.Measurements)
	c.Notes = cloneString(r.Notes)
	return c
}

func (s *Store) ListCustomers() []entities.CustomerWithStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.CustomerWithStats, 0, len(s.customerOrder))
	for _, id := range s.customerOrder {
		result = append(result, s.withStats(s.customers[id]))
	}
	return result
}

func (s *Store) GetCustomer(id string) (*entities.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.customers[id]
	if !ok {
		return nil, false
	}
	c := record.toEntity()
	return &c, true
}

func (s *Store) CustomerStats(id string) (entities.CustomerWithStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.customers[id]
	if !ok {
		return entities.CustomerWithStats{}, false
	}
	return s.withStats(record), true
}

func (s *Store) GetCustomerByPhone(phone string) (*entities.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.customerOrder {
		record := s.customers[id]
		if record.Phone == phone {
			c := record.toEntity()
			return &c, true
		}
	}
	return nil, false
}

// CreateCustomer не проверяет уникальность телефона, это делает сервисный слой.
func (s *Store) CreateCustomer(modify entities.CustomerModify) entities.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := customerRecord{Customer: entities.Customer{
		ID:           s.newID(),
		Measurements: normalizeText(modify.Measurements),
		Notes:        normalizeText(modify.Notes),
		CreatedAt:    s.now(),
	}}
	if modify.Name != nil {
		record.Name = *modify.Name
	}
	if modify.Phone != nil {
		record.Phone = *modify.Phone
	}

	s.customers[record.ID] = record
	s.customerOrder = append(s.customerOrder, record.ID)

	return record.toEntity()
}

func (s *Store) UpdateCustomer(id string, modify entities.CustomerModify) (*entities.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.customers[id]
	if !ok {
		return nil, false
	}

	if modify.Name != nil {
		record.Name = *modify.Name
	}
	if modify.Phone != nil {
		record.Phone = *modify.Phone
	}
	if modify.Measurements != nil {
		record.Measurements = normalizeText(modify.Measurements)
	}
	if modify.Notes != nil {
		record.Notes = normalizeText(modify.Notes)
	}
	s.customers[id] = record

	c := record.toEntity()
	return &c, true
}

// DeleteCustomer не трогает заказы покупателя.
func (s *Store) DeleteCustomer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return false
	}
	delete(s.customers, id)
	s.customerOrder = removeID(s.customerOrder, id)
	return true
}

// SearchCustomers ищет подстроку в имени без учета регистра или в телефоне как есть.
func (s *Store) SearchCustomers(query string) []entities.CustomerWithStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lowered := strings.ToLower(query)
	result := make([]entities.CustomerWithStats, 0)
	for _, id := range s.customerOrder {
		record := s.customers[id]
		if strings.Contains(strings.ToLower(record.Name), lowered) ||
			strings.Contains(record.Phone, query) {
			result = append(result, s.withStats(record))
		}
	}
	return result
}

// withStats вызывается под блокировкой.
func (s *Store) withStats(record customerRecord) entities.CustomerWithStats {
	stats := entities.CustomerWithStats{Customer: record.toEntity()}

	var last time.Time
	for _, orderID := range s.orderOrder {
		o := s.orders[orderID]
		if o.CustomerID != record.ID {
			continue
		}
		stats.TotalOrders++
		stats.TotalSpent += o.Price
		if o.OrderDate.After(last) {
			last = o.OrderDate
		}
	}
	if stats.TotalOrders > 0 {
		stats.LastOrderDate = &last
	}
	return stats
}
