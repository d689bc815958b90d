package service

import (
	"context"
	"encoding/json"

	"panel-review-be/internal/dto"
	"panel-review-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the recompute pipeline. Metric rebuilds are pure
// functions of stored state, so processing a message twice is harmless.
type consumerService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	metricService IMetricService
	logger        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	metricService IMetricService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:        pubSub,
		topicName:     topicName,
		metricService: metricService,
		logger:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RecomputeMetricsMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "failed to unmarshal recompute message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack malformed messages to prevent infinite retry.
		msg.Ack()
		return
	}

	if err := cs.metricService.RecomputePanel(ctx, payload.PanelId); err != nil {
		cs.logger.Error("ConsumerService", "metric recompute failed", map[string]interface{}{
			"panel_id": payload.PanelId,
			"error":    err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
