package events

import (
	"context"
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

// NewEventPublisher declares queue and publishes events to it. A nil
// connection yields a publisher that only logs.
func NewEventPublisher(connection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	if connection == nil {
		return &nopPublisher{Log: logger}, nil
	}

	channel, err := connection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"event_type":   event.Type,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Debug("rabbitMQPublisher.Publish event published",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}

type nopPublisher struct {
	Log *zap.Logger
}

func (p *nopPublisher) Publish(ctx context.Context, event *models.Event) error {
	p.Log.Debug("nopPublisher.Publish event dropped",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}
