package contracts

import (
	"context"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	// Activate verifies pin against the backend and issues a capability
	// token. An empty pin deactivates instead and returns nil.
	Activate(ctx context.Context, pin, currentToken string) (*responses.AdminSession, error)
	Resolve(ctx context.Context, token string) (*models.AdminCapability, error)
	Deactivate(ctx context.Context, token string) error
	Status(ctx context.Context, capability *models.AdminCapability) *responses.AdminStatus
	RecordPrivilegedAction(ctx context.Context, capability *models.AdminCapability, method, path string)
}

type AuditRepository interface {
	Insert(ctx context.Context, record *models.AuditRecord) error
}
