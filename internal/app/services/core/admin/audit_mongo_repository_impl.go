package admin

import (
	"context"
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type AuditMongoRepository struct {
	Collection *mongo.Collection
}

// NewAuditRepository stores audit records in MongoDB. Without a client the
// records are written to the log only.
func NewAuditRepository(db *mongo.Client, dbName string, logger *zap.Logger) contracts.AuditRepository {
	if db == nil {
		return &auditLogRepository{Log: logger}
	}
	return &AuditMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAdminAudit),
	}
}

func (repo *AuditMongoRepository) Insert(ctx context.Context, record *models.AuditRecord) error {
	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

type auditLogRepository struct {
	Log *zap.Logger
}

func (repo *auditLogRepository) Insert(ctx context.Context, record *models.AuditRecord) error {
	repo.Log.Info("admin audit",
		zap.String(constvars.LoggingRequestIDKey, record.RequestID),
		zap.String("action", record.Action),
		zap.String(constvars.LoggingAdminSessionIDKey, record.SessionID),
		zap.String("pin_fingerprint", record.PinFingerprint),
		zap.String("source", record.Source),
		zap.String(constvars.LoggingMethodKey, record.Method),
		zap.String(constvars.LoggingEndpointKey, record.Path),
		zap.String("detail", record.Detail),
	)
	return nil
}
