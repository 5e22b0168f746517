package render

import (
	"boutique/internal/entities"
	"boutique/internal/generated/dto"
)

func Customer(c entities.Customer) dto.Customer {
	return dto.Customer{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Measurements: c.Measurements,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
	}
}

func CustomerWithStats(c entities.CustomerWithStats) dto.CustomerWithStats {
	return dto.CustomerWithStats{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Measurements:  c.Measurements,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		TotalOrders:   c.TotalOrders,
		TotalSpent:    c.TotalSpent,
		LastOrderDate: c.LastOrderDate,
	}
}

func CustomersWithStats(customers []entities.CustomerWithStats) []dto.CustomerWithStats {
	res := make([]dto.CustomerWithStats, len(customers))
	for i, c := range customers {
		res[i] = CustomerWithStats(c)
	}
	return res
}

func Order(o entities.Order) dto.Order {
	return dto.Order{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		Description:  o.Description,
		Price:        o.Price,
		MaterialCost: o.MaterialCost,
		OrderDate:    o.OrderDate,
		Status:       dto.OrderStatus(o.Status),
		ImagePath:    o.ImagePath,
		NextStatus:   nextStatus(o.Status),
	}
}

func Orders(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, len(orders))
	for i, o := range orders {
		res[i] = Order(o)
	}
	return res
}

func OrderWithCustomer(o entities.OrderWithCustomer) dto.OrderWithCustomer {
	return dto.OrderWithCustomer{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Description:   o.Description,
		Price:         o.Price,
		MaterialCost:  o.MaterialCost,
		OrderDate:     o.OrderDate,
		Status:        dto.OrderStatus(o.Status),
		ImagePath:     o.ImagePath,
		NextStatus:    nextStatus(o.Status),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
	}
}

func OrdersWithCustomer(orders []entities.OrderWithCustomer) []dto.OrderWithCustomer {
	res := make([]dto.OrderWithCustomer, len(orders))
	for i, o := range orders {
		res[i] = OrderWithCustomer(o)
	}
	return res
}

func Design(d entities.Design) dto.Design {
	return dto.Design{
		ID:          d.ID,
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		IsNew:       d.IsNew,
		IsPopular:   d.IsPopular,
		CreatedAt:   d.CreatedAt,
	}
}

func Designs(designs []entities.Design) []dto.Design {
	res := make([]dto.Design, len(designs))
	for i, d := range designs {
		res[i] = Design(d)
	}
	return res
}

// DesignModify переводит тело POST/PUT в частичное обновление.
func DesignModify(in dto.DesignInput) entities.DesignModify {
	return entities.DesignModify{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsNew:       in.IsNew,
		IsPopular:   in.IsPopular,
	}
}

func nextStatus(status entities.OrderStatus) *dto.OrderStatus {
	next, ok := status.Next()
	if !ok {
		return nil
	}
	res := dto.OrderStatus(next)
	return &res
}
