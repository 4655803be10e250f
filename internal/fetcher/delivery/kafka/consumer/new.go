package consumer

import (
	"fmt"

	"influencer-srv/config"
	"influencer-srv/internal/fetcher"
	pkgKafka "influencer-srv/pkg/kafka"
	"influencer-srv/pkg/log"
)

// Config holds the configuration for the fetch-job consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     fetcher.UseCase
}

// Consumer manages the Kafka consumer group for queued fetch jobs
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          fetcher.UseCase

	fetchJobGroup pkgKafka.IConsumer
}

// New creates a new fetch-job consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	if cfg.KafkaConfig.FetchTopic == "" {
		return nil, fmt.Errorf("kafka fetch topic is required")
	}
	if cfg.KafkaConfig.GroupID == "" {
		return nil, fmt.Errorf("kafka group id is required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c.fetchJobGroup != nil {
		if err := c.fetchJobGroup.Close(); err != nil {
			return fmt.Errorf("failed to close fetch job group: %w", err)
		}
	}

	return nil
}
