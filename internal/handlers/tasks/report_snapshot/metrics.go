package report_snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "boutique_orders_by_status",
			Help: "Number of orders in each production status",
		},
		[]string{"status"},
	)

	CurrentMonthSales = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "boutique_current_month_sales",
			Help: "Total order price for the current month",
		},
	)

	CurrentMonthNetProfit = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "boutique_current_month_net_profit",
			Help: "Sales minus material costs for the current month",
		},
	)
)
