package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type fetchJobHandler struct {
	consumer *Consumer
}

func (h *fetchJobHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *fetchJobHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *fetchJobHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleFetchJobMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "fetcher.delivery.kafka.consumer.ConsumeClaim: failed to process fetch job message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
