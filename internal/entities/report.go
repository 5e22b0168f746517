package entities

type MonthlyStats struct {
	Year               int
	Month              int
	TotalSales         float64
	TotalMaterialCosts float64
	NetProfit          float64
	TotalOrders        int
	CompletedOrders    int
}

// StatusCounts всегда содержит все пять статусов, даже с нулевым количеством.
type StatusCounts map[OrderStatus]int

type DesignStats struct {
	TotalDesigns   int
	NewDesigns     int
	PopularDesigns int
	Categories     int
}
