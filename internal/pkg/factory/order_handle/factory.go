package order_handle

import (
	"context"
	"fmt"

	"boutique/internal/entities"
	"boutique/internal/service/notification"
)

type StatusHandlerFactory struct {
	notifier Notifier
}

func NewStatusHandlerFactory(notifier Notifier) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		notifier: notifier,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatus) (notification.ExecuteFn, error) {
	switch status {
	case entities.OrderReady:
		return f.readyHandler, nil
	case entities.OrderCompleted:
		return f.completedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) readyHandler(ctx context.Context, event entities.OrderStatusChanged) error {
	message := fmt.Sprintf("%s, your order %q is ready for pickup.", greeting(event), event.Description)
	if err := f.notifier.Notify(ctx, event.CustomerPhone, message); err != nil {
		return fmt.Errorf("ready notification for order %s: %w", event.OrderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, event entities.OrderStatusChanged) error {
	message := fmt.Sprintf("%s, thank you for choosing us! Your order %q is completed.", greeting(event), event.Description)
	if err := f.notifier.Notify(ctx, event.CustomerPhone, message); err != nil {
		return fmt.Errorf("thank-you notification for order %s: %w", event.OrderID, err)
	}
	return nil
}

func greeting(event entities.OrderStatusChanged) string {
	if event.CustomerName == "" {
		return "Hello"
	}
	return "Hello " + event.CustomerName
}
