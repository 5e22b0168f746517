//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"boutique/internal/gateway/sms"
	"boutique/internal/handlers/tasks/report_snapshot"
	"boutique/internal/pkg/config"
	"boutique/internal/pkg/factory/order_handle"
	"boutique/internal/repository/memory"
	customerService "boutique/internal/service/customer"
	designService "boutique/internal/service/design"
	notificationService "boutique/internal/service/notification"
	orderService "boutique/internal/service/order"
	reportService "boutique/internal/service/report"
	"boutique/pkg/logger"

	"github.com/google/wire"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		provideStore,
		provideFileStorage,
		provideHub,
		provideProducer,
		provideEventPublisher,
		provideTransitionPolicy,

		provideServiceCustomer,
		provideServiceOrder,
		provideServiceDesign,
		provideServiceReport,

		provideReportSnapshotTask,
		provideSystemCollectorTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDesign), new(*designService.Design)),
		wire.Bind(new(ServiceReport), new(*reportService.Service)),

		wire.Bind(new(customerService.Repository), new(*memory.Store)),
		wire.Bind(new(orderService.Repository), new(*memory.Store)),
		wire.Bind(new(designService.Repository), new(*memory.Store)),
		wire.Bind(new(reportService.Repository), new(*memory.Store)),

		wire.Bind(new(report_snapshot.Service), new(*reportService.Service)),
	)
	return nil, nil, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	log logger.Logger,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideSMSSender,
		provideSMSGateway,
		provideStatusHandlerFactory,
		provideNotificationService,

		wire.Bind(new(order_handle.Notifier), new(*sms.Gateway)),
		wire.Bind(new(notificationService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
