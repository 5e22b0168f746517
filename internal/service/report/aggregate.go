package report

import (
	"slices"
	"time"

	"boutique/internal/entities"
)

const DefaultTopCustomersLimit = 5

// MonthlyStats считает продажи за календарный месяц. Дата заказа переводится в loc
// перед сравнением, nil loc означает UTC.
func MonthlyStats(orders []entities.Order, year, month int, loc *time.Location) entities.MonthlyStats {
	if loc == nil {
		loc = time.UTC
	}

	stats := entities.MonthlyStats{Year: year, Month: month}
	for _, o := range orders {
		date := o.OrderDate.In(loc)
		if date.Year() != year || int(date.Month()) != month {
			continue
		}
		stats.TotalSales += o.Price
		stats.TotalMaterialCosts += o.MaterialCost
		stats.TotalOrders++
		if o.Status.IsTerminal() {
			stats.CompletedOrders++
		}
	}
	stats.NetProfit = stats.TotalSales - stats.TotalMaterialCosts
	return stats
}

func StatusCounts(orders []entities.Order) entities.StatusCounts {
	counts := make(entities.StatusCounts, len(entities.OrderStatuses))
	for _, status := range entities.OrderStatuses {
		counts[status] = 0
	}
	for _, o := range orders {
		if _, ok := counts[o.Status]; ok {
			counts[o.Status]++
		}
	}
	return counts
}

// TopCustomers сортирует по TotalSpent по убыванию. При равенстве сохраняется исходный порядок.
func TopCustomers(customers []entities.CustomerWithStats, limit int) []entities.CustomerWithStats {
	sorted := slices.Clone(customers)
	slices.SortStableFunc(sorted, func(a, b entities.CustomerWithStats) int {
		switch {
		case a.TotalSpent > b.TotalSpent:
			return -1
		case a.TotalSpent < b.TotalSpent:
			return 1
		default:
			return 0
		}
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	if sorted == nil {
		sorted = []entities.CustomerWithStats{}
	}
	return sorted
}
