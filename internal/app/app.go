package app

import (
	"boutique/internal/handlers/rest/customer_delete"
	"boutique/internal/handlers/rest/customer_get"
	"boutique/internal/handlers/rest/customer_order_post"
	"boutique/internal/handlers/rest/customer_orders_get"
	"boutique/internal/handlers/rest/customer_post"
	"boutique/internal/handlers/rest/customer_put"
	"boutique/internal/handlers/rest/customers_get"
	"boutique/internal/handlers/rest/design_delete"
	"boutique/internal/handlers/rest/design_get"
	"boutique/internal/handlers/rest/design_post"
	"boutique/internal/handlers/rest/design_put"
	"boutique/internal/handlers/rest/design_stats_get"
	"boutique/internal/handlers/rest/designs_get"
	"boutique/internal/handlers/rest/order_advance_post"
	"boutique/internal/handlers/rest/order_delete"
	"boutique/internal/handlers/rest/order_get"
	"boutique/internal/handlers/rest/order_put"
	"boutique/internal/handlers/rest/order_status_put"
	"boutique/internal/handlers/rest/orders_get"
	"boutique/internal/handlers/rest/report_monthly_get"
	"boutique/internal/handlers/rest/report_status_counts_get"
	"boutique/internal/handlers/rest/report_top_customers_get"
	"boutique/internal/pkg/filestorage"
	"boutique/internal/pkg/publisher"
	"boutique/internal/pkg/websocket"
	notificationService "boutique/internal/service/notification"
	"boutique/pkg/background"
)

type Application struct {
	ServiceCustomer   ServiceCustomer
	ServiceOrder      ServiceOrder
	ServiceDesign     ServiceDesign
	ServiceReport     ServiceReport
	FileStorage       *filestorage.Storage
	Hub               *websocket.Hub
	Publisher         *publisher.FanOut
	BackgroundWorkers *background.Worker
}

type ServiceCustomer interface {
	customers_get.Service
	customer_get.Service
	customer_post.Service
	customer_put.Service
	customer_delete.Service
	customer_orders_get.Service
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_put.Service
	order_status_put.Service
	order_advance_post.Service
	order_delete.Service
	customer_order_post.Service
}

type ServiceDesign interface {
	designs_get.Service
	design_get.Service
	design_post.Service
	design_put.Service
	design_delete.Service
	design_stats_get.Service
}

type ServiceReport interface {
	report_monthly_get.Service
	report_status_counts_get.Service
	report_top_customers_get.Service
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Service
}
