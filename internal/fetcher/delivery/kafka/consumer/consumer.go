package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"influencer-srv/internal/fetcher"
	pkgKafka "influencer-srv/pkg/kafka"

	"github.com/IBM/sarama"
)

// ConsumeFetchJobs starts consuming queued fetch jobs. Non-blocking; the
// group runs until ctx is cancelled.
func (c *Consumer) ConsumeFetchJobs(ctx context.Context) error {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: c.kafkaConfig.GroupID,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer group %s: %w", c.kafkaConfig.GroupID, err)
	}
	c.fetchJobGroup = group

	handler := &fetchJobHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{c.kafkaConfig.FetchTopic}, handler); err != nil {
					c.l.Errorf(ctx, "fetcher.delivery.kafka.consumer.ConsumeFetchJobs: consume error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "fetcher.delivery.kafka.consumer.ConsumeFetchJobs: group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.kafkaConfig.FetchTopic)

	return nil
}

// handleFetchJobMessage decodes a queued job and runs the fetch. A decode
// failure is terminal for the message; a fetch failure is logged and the
// message is still marked so a poisonous job cannot wedge the partition.
func (c *Consumer) handleFetchJobMessage(msg *sarama.ConsumerMessage) error {
	var job fetcher.Job
	if err := json.Unmarshal(msg.Value, &job); err != nil {
		return fmt.Errorf("decode fetch job: %w", err)
	}

	ctx := context.Background()
	if err := c.uc.Run(ctx, job); err != nil {
		c.l.Errorf(ctx, "fetcher.delivery.kafka.consumer.handleFetchJobMessage: run job platform=%s query=%q: %v",
			job.Platform, job.Query, err)
	}

	return nil
}
