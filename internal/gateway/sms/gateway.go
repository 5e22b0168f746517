package sms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"boutique/pkg/logger"
	retrierconfig "boutique/pkg/retrier"
	"boutique/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway отправляет уведомления покупателям с ретраями и метриками.
type Gateway struct {
	sender  sender
	retrier retrier
}

func New(sender sender) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		sender:  sender,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) Notify(ctx context.Context, phone, message string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrEmptyPhone
	}

	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return g.sender.Send(ctx, phone, message)
	})

	result := resultLabel(err)
	GatewayRequestDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(result).Inc()
	}

	if err != nil {
		return fmt.Errorf("sms gateway, send to %s: %w", phone, err)
	}
	return nil
}

func isRetryable(err error) bool {
	return !errors.Is(err, ErrEmptyPhone) && !errors.Is(err, context.Canceled)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

// LogSender пишет сообщение в лог вместо реальной отправки SMS.
type LogSender struct {
	log handlerLogger
}

func NewLogSender(log handlerLogger) *LogSender {
	return &LogSender{
		log: log.With(),
	}
}

func (s *LogSender) Send(ctx context.Context, phone, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info("sms notification",
		logger.NewField("phone", phone),
		logger.NewField("message", message),
	)
	return nil
}
