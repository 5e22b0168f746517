package kafka

import (
	"context"
	"fmt"
	"time"

	"boutique/pkg/logger"
	retrierconfig "boutique/pkg/retrier"
	"boutique/pkg/retrier/backoff_adapter"
	"github.com/IBM/sarama"
)

const (
	pingInitialInterval = 1 * time.Second
	pingMaxInterval     = 30 * time.Second
	pingMaxElapsedTime  = 2 * time.Minute
	pingRandomization   = 0.5
	pingMultiplier      = 2
)

// pingKafka ждет, пока брокеры начнут отдавать метаданные.
func pingKafka(ctx context.Context, log logger.Logger, brokers []string, saramaConfig *sarama.Config) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: pingInitialInterval,
		MaxInterval:     pingMaxInterval,
		MaxElapsedTime:  pingMaxElapsedTime,
		Randomization:   pingRandomization,
		Multiplier:      pingMultiplier,
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, saramaConfig)
		if err != nil {
			log.Warn("kafka not reachable yet",
				logger.NewField("attempt", attempt),
				logger.NewField("error", err),
			)
			return err
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				log.Warn("close kafka ping client", logger.NewField("error", closeErr))
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		return fmt.Errorf("kafka unreachable after %d attempts: %w", attempt, err)
	}

	log.Info("kafka connection established", logger.NewField("attempts", attempt))
	return nil
}
