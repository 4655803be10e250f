package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// consumerImpl implements IConsumer on top of a sarama consumer group.
type consumerImpl struct {
	group  sarama.ConsumerGroup
	errors chan error
}

func newConsumerImpl(cfg ConsumerConfig) (*consumerImpl, error) {
	config := sarama.NewConfig()
	config.Version = KafkaVersion
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	c := &consumerImpl{
		group:  group,
		errors: make(chan error, 1),
	}

	go func() {
		for err := range group.Errors() {
			select {
			case c.errors <- err:
			default:
			}
		}
	}()

	return c, nil
}

// Consume starts consuming from topics using a background context.
func (c *consumerImpl) Consume(topics []string, handler sarama.ConsumerGroupHandler) error {
	return c.ConsumeWithContext(context.Background(), topics, handler)
}

// ConsumeWithContext consumes from topics until the context is cancelled.
// Sarama's Consume returns on each rebalance, so it is called in a loop.
func (c *consumerImpl) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	for {
		if err := c.group.Consume(ctx, topics, handler); err != nil {
			return fmt.Errorf("kafka consume: %w", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *consumerImpl) Close() error {
	return c.group.Close()
}

// Errors returns consumer group errors.
func (c *consumerImpl) Errors() <-chan error {
	return c.errors
}
