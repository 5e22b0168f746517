package app

import (
	"context"
	"fmt"

	"boutique/internal/gateway/sms"
	"boutique/internal/handlers/tasks/report_snapshot"
	"boutique/internal/pkg/config"
	"boutique/internal/pkg/factory/order_handle"
	"boutique/internal/pkg/filestorage"
	"boutique/internal/pkg/kafka"
	"boutique/internal/pkg/metrics"
	"boutique/internal/pkg/publisher"
	"boutique/internal/pkg/websocket"
	"boutique/internal/repository/memory"
	customerService "boutique/internal/service/customer"
	designService "boutique/internal/service/design"
	notificationService "boutique/internal/service/notification"
	orderService "boutique/internal/service/order"
	reportService "boutique/internal/service/report"
	"boutique/pkg/background"
	"boutique/pkg/logger"
)

func provideStore() *memory.Store {
	return memory.New()
}

func provideFileStorage(cfg *config.Config) (*filestorage.Storage, error) {
	storage, err := filestorage.New(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("file storage: %w", err)
	}
	return storage, nil
}

func provideHub(log logger.Logger) *websocket.Hub {
	return websocket.NewHub(log)
}

// provideProducer возвращает nil, если Kafka выключена: события уходят только в websocket.
func provideProducer(ctx context.Context, log logger.Logger, cfg *config.Config) (*kafka.Producer, func(), error) {
	if !cfg.Kafka.Enabled {
		return nil, func() {}, nil
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}

	cleanup := func() {
		err := producer.Close()
		if err != nil {
			log.With(
				logger.NewField("error", err),
			).Error("failed to close kafka producer")
		}
	}
	return producer, cleanup, nil
}

func provideEventPublisher(log logger.Logger, hub *websocket.Hub, producer *kafka.Producer) *publisher.FanOut {
	fanOut := publisher.New(log).With("websocket", hub)
	if producer != nil {
		fanOut.With("kafka", producer)
	}
	return fanOut
}

func provideTransitionPolicy(cfg *config.Config) (orderService.TransitionPolicy, error) {
	policy, err := orderService.PolicyByName(cfg.Orders.StatusPolicy)
	if err != nil {
		return nil, fmt.Errorf("order status policy: %w", err)
	}
	return policy, nil
}

func provideServiceCustomer(repository customerService.Repository) *customerService.Customer {
	return customerService.New(repository)
}

func provideServiceOrder(
	repository orderService.Repository,
	eventPublisher *publisher.FanOut,
	policy orderService.TransitionPolicy,
) *orderService.Service {
	return orderService.New(repository, eventPublisher, policy)
}

func provideServiceDesign(repository designService.Repository) *designService.Design {
	return designService.New(repository)
}

func provideServiceReport(repository reportService.Repository, cfg *config.Config) *reportService.Service {
	return reportService.New(repository, cfg.Reports.Location)
}

func provideReportSnapshotTask(
	log logger.Logger,
	service report_snapshot.Service,
	cfg *config.Config,
) *report_snapshot.ReportSnapshot {
	return report_snapshot.NewReportSnapshot(log, service, cfg.Tasks.ReportSnapshotInterval)
}

func provideSystemCollectorTask() *metrics.SystemCollector {
	return metrics.NewSystemCollector(0)
}

func provideTaskList(
	reportSnapshotTask *report_snapshot.ReportSnapshot,
	systemCollectorTask *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		reportSnapshotTask,
		systemCollectorTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideSMSSender(log logger.Logger) *sms.LogSender {
	return sms.NewLogSender(log)
}

func provideSMSGateway(sender *sms.LogSender) *sms.Gateway {
	return sms.New(sender)
}

func provideStatusHandlerFactory(notifier order_handle.Notifier) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(notifier)
}

func provideNotificationService(handlerFactory notificationService.HandlerFactory) *notificationService.Service {
	return notificationService.New(handlerFactory)
}
