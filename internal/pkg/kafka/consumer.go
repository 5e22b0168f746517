package kafka

import (
	"context"
	"errors"
	"fmt"

	"boutique/internal/pkg/config"
	"boutique/pkg/logger"
	"github.com/IBM/sarama"
)

// Consumer читает топик событий заказов в составе consumer group.
type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	saramaConfig.Consumer.Offsets.Initial = initialOffset
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = autoCommit
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}

	return saramaConfig, nil
}

// NewConsumerConfig: новая группа читает топик с самого старого сообщения.
func NewConsumerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	return NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := NewConsumerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build consumer config: %w", err)
	}

	topics := []string{cfg.Topic}
	kafkaLog := log.With(
		logger.NewField("brokers", cfg.Brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	err = pingKafka(ctx, kafkaLog, cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group %q: %w", cfg.ConsumerGroup, err)
	}

	return NewConsumerWith(kafkaLog, group, topics, handler), nil
}

// NewConsumerWith собирает Consumer поверх готовой sarama.ConsumerGroup.
func NewConsumerWith(log logger.Logger, group sarama.ConsumerGroup, topics []string, handler sarama.ConsumerGroupHandler) *Consumer {
	return &Consumer{
		log:     log,
		group:   group,
		topics:  topics,
		handler: handler,
	}
}

// Start блокируется, пока группа читает топики. Отмена ctx и закрытие группы
// считаются штатной остановкой и возвращают nil.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer started")

	for {
		// Consume возвращается на каждой ребалансировке, после нее входим в новую сессию
		err := c.group.Consume(ctx, c.topics, c.handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup), ctx.Err() != nil:
			c.log.Info("kafka consumer stopped")
			return nil
		case err != nil:
			c.log.Error("kafka consume failed", logger.NewField("error", err))
			return fmt.Errorf("consume %v: %w", c.topics, err)
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}
