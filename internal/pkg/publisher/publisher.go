package publisher

import (
	"context"
	"time"

	"boutique/internal/entities"
	"boutique/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultSinkTimeout = 3 * time.Second

var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_status_events_published_total",
		Help: "Order status change events handed to sinks",
	},
	[]string{"sink", "result"},
)

type Sink interface {
	Publish(ctx context.Context, event entities.OrderStatusChanged) error
}

type namedSink struct {
	name string
	sink Sink
}

// FanOut раздает событие всем синкам. Ошибка одного синка не мешает остальным
// и не возвращается вызывающему: смена статуса уже сохранена.
type FanOut struct {
	log     logger.Logger
	sinks   []namedSink
	timeout time.Duration
}

func New(log logger.Logger) *FanOut {
	return &FanOut{
		log:     log.With(logger.NewField("component", "event_publisher")),
		timeout: defaultSinkTimeout,
	}
}

// With добавляет синк, nil пропускается.
func (f *FanOut) With(name string, sink Sink) *FanOut {
	if sink != nil {
		f.sinks = append(f.sinks, namedSink{name: name, sink: sink})
	}
	return f
}

func (f *FanOut) Publish(ctx context.Context, event entities.OrderStatusChanged) {
	// ответ клиенту может уйти раньше, чем синки закончат
	ctx = context.WithoutCancel(ctx)

	for _, s := range f.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, f.timeout)
		err := s.sink.Publish(sinkCtx, event)
		cancel()

		if err != nil {
			EventsPublishedTotal.WithLabelValues(s.name, "error").Inc()
			f.log.Warn("publish order status event",
				logger.NewField("sink", s.name),
				logger.NewField("order", event.OrderID),
				logger.NewField("status", event.Status.String()),
				logger.NewField("error", err),
			)
			continue
		}
		EventsPublishedTotal.WithLabelValues(s.name, "ok").Inc()
	}
}

func (f *FanOut) Sinks() []string {
	names := make([]string, 0, len(f.sinks))
	for _, s := range f.sinks {
		names = append(names, s.name)
	}
	return names
}
