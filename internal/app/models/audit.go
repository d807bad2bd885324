package models

import "time"

type AuditRecord struct {
	Action         string    `bson:"action" json:"action"`
	SessionID      string    `bson:"session_id,omitempty" json:"session_id,omitempty"`
	PinFingerprint string    `bson:"pin_fingerprint,omitempty" json:"pin_fingerprint,omitempty"`
	Source         string    `bson:"source,omitempty" json:"source,omitempty"`
	RequestID      string    `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method         string    `bson:"method,omitempty" json:"method,omitempty"`
	Path           string    `bson:"path,omitempty" json:"path,omitempty"`
	Detail         string    `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
