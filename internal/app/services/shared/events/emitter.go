package events

import (
	"context"
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Emit publishes a domain event. Failures are logged, never returned.
func Emit(ctx context.Context, publisher contracts.EventPublisher, log *zap.Logger, eventType string, payload interface{}) {
	if publisher == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event := &models.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	if err := publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.Warn("events.Emit failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
