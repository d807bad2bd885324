package contracts

import (
	"context"
	"invrent-service/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *models.Event) error
}
