package models

import (
	"context"
	"invrent-service/internal/pkg/constvars"
	"time"
)

// AdminSession backs an admin capability token. The PIN is only kept here,
// in Redis, and forwarded to the inventory backend.
type AdminSession struct {
	SessionID string    `json:"session_id"`
	Pin       string    `json:"pin"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminCapability is what the middleware puts in the request context.
type AdminCapability struct {
	Pin       string
	Source    string
	SessionID string
	ExpiresAt *time.Time
}

// AdminCapabilityFromContext returns the capability attached to the request,
// or nil outside admin mode.
func AdminCapabilityFromContext(ctx context.Context) *AdminCapability {
	capability, _ := ctx.Value(constvars.CONTEXT_ADMIN_SESSION_KEY).(*AdminCapability)
	return capability
}
