package admin

import (
	"context"
	"fmt"
	"invrent-service/internal/app/config"
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/responses"
	"invrent-service/internal/pkg/exceptions"
	"invrent-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// adminUsecase holds admin mode as a server-side session keyed by a signed
// token. The backend stays the only place the PIN is actually checked.
type adminUsecase struct {
	InventoryClient contracts.InventoryClient
	RedisRepository contracts.RedisRepository
	AuditRepository contracts.AuditRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

var (
	adminUsecaseInstance contracts.AdminUsecase
	onceAdminUsecase     sync.Once
)

func NewAdminUsecase(
	inventoryClient contracts.InventoryClient,
	redisRepository contracts.RedisRepository,
	auditRepository contracts.AuditRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AdminUsecase {
	onceAdminUsecase.Do(func() {
		adminUsecaseInstance = &adminUsecase{
			InventoryClient: inventoryClient,
			RedisRepository: redisRepository,
			AuditRepository: auditRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
			now:             time.Now,
		}
	})
	return adminUsecaseInstance
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeyAdminSessionFmt, sessionID)
}

func (uc *adminUsecase) Activate(ctx context.Context, pin, currentToken string) (*responses.AdminSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.Activate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	pin = strings.TrimSpace(pin)
	if pin == "" {
		uc.Log.Info("adminUsecase.Activate empty PIN, deactivating",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		if currentToken != "" {
			err := uc.Deactivate(ctx, currentToken)
			if err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	err := uc.InventoryClient.AdminPing(ctx, pin)
	if err != nil {
		uc.Log.Error("adminUsecase.Activate admin ping failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.audit(ctx, &models.AuditRecord{
			Action:         constvars.AuditActionAdminActivateFailed,
			PinFingerprint: uc.fingerprint(pin),
			Source:         constvars.AdminActorPin,
			Detail:         err.Error(),
		})
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		status := exceptions.StatusCodeOf(err)
		if status == constvars.StatusUnauthorized || status == constvars.StatusForbidden {
			return nil, exceptions.ErrAdminPinRejected(fmt.Errorf("admin ping returned %d", status))
		}
		return nil, err
	}

	if currentToken != "" {
		if sessionID, err := utils.ParseAdminSessionJWT(currentToken, uc.InternalConfig.Admin.JWTSecret); err == nil {
			uc.deleteSession(ctx, sessionID)
		}
	}

	now := uc.now()
	ttl := time.Duration(uc.InternalConfig.Admin.SessionExpiredTimeInMinute) * time.Minute
	session := &models.AdminSession{
		SessionID: uuid.NewString(),
		Pin:       pin,
		CreatedAt: now.UTC(),
		ExpiresAt: now.Add(ttl).UTC(),
	}

	err = uc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		uc.Log.Error("adminUsecase.Activate error storing admin session in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateAdminSessionJWT(session.SessionID, uc.InternalConfig.Admin.JWTSecret, session.ExpiresAt)
	if err != nil {
		uc.Log.Error("adminUsecase.Activate error signing admin token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.deleteSession(ctx, session.SessionID)
		return nil, exceptions.ErrAdminTokenGenerate(err)
	}

	uc.audit(ctx, &models.AuditRecord{
		Action:         constvars.AuditActionAdminActivated,
		SessionID:      session.SessionID,
		PinFingerprint: uc.fingerprint(pin),
		Source:         constvars.AdminActorToken,
	})

	uc.Log.Info("adminUsecase.Activate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdminSessionIDKey, session.SessionID),
	)
	return &responses.AdminSession{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (uc *adminUsecase) Resolve(ctx context.Context, token string) (*models.AdminCapability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	sessionID, err := utils.ParseAdminSessionJWT(token, uc.InternalConfig.Admin.JWTSecret)
	if err != nil {
		uc.Log.Error("adminUsecase.Resolve invalid admin token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrAdminTokenInvalidOrExpired(err)
	}

	data, err := uc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		uc.Log.Error("adminUsecase.Resolve error retrieving admin session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAdminSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}
	if data == "" {
		err := fmt.Errorf("session %s not found", sessionID)
		return nil, exceptions.ErrAdminSessionNotFound(err)
	}

	var session models.AdminSession
	err = json.Unmarshal([]byte(data), &session)
	if err != nil {
		uc.Log.Error("adminUsecase.Resolve error parsing admin session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	expiresAt := session.ExpiresAt
	return &models.AdminCapability{
		Pin:       session.Pin,
		Source:    constvars.AdminActorToken,
		SessionID: session.SessionID,
		ExpiresAt: &expiresAt,
	}, nil
}

func (uc *adminUsecase) Deactivate(ctx context.Context, token string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.Deactivate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, err := utils.ParseAdminSessionJWT(token, uc.InternalConfig.Admin.JWTSecret)
	if err != nil {
		// An expired token has nothing left to end.
		uc.Log.Info("adminUsecase.Deactivate token already invalid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	err = uc.RedisRepository.Delete(ctx, sessionKey(sessionID))
	if err != nil {
		uc.Log.Error("adminUsecase.Deactivate error deleting admin session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAdminSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}

	uc.audit(ctx, &models.AuditRecord{
		Action:    constvars.AuditActionAdminDeactivated,
		SessionID: sessionID,
		Source:    constvars.AdminActorToken,
	})
	uc.Log.Info("adminUsecase.Deactivate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdminSessionIDKey, sessionID),
	)
	return nil
}

func (uc *adminUsecase) Status(ctx context.Context, capability *models.AdminCapability) *responses.AdminStatus {
	if capability == nil {
		return &responses.AdminStatus{IsAdmin: false}
	}
	return &responses.AdminStatus{
		IsAdmin:   true,
		Source:    capability.Source,
		ExpiresAt: capability.ExpiresAt,
	}
}

func (uc *adminUsecase) RecordPrivilegedAction(ctx context.Context, capability *models.AdminCapability, method, path string) {
	record := &models.AuditRecord{
		Action: constvars.AuditActionPrivileged,
		Method: method,
		Path:   path,
	}
	if capability != nil {
		record.SessionID = capability.SessionID
		record.Source = capability.Source
		record.PinFingerprint = uc.fingerprint(capability.Pin)
	}
	uc.audit(ctx, record)
}

func (uc *adminUsecase) deleteSession(ctx context.Context, sessionID string) {
	err := uc.RedisRepository.Delete(ctx, sessionKey(sessionID))
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("adminUsecase.deleteSession error deleting admin session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAdminSessionIDKey, sessionID),
			zap.Error(err),
		)
	}
}

func (uc *adminUsecase) fingerprint(pin string) string {
	if pin == "" {
		return ""
	}
	return utils.FingerprintPin(pin, uc.InternalConfig.Admin.PinFingerprintKey)
}

// audit never fails the calling operation.
func (uc *adminUsecase) audit(ctx context.Context, record *models.AuditRecord) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	record.RequestID = requestID
	record.CreatedAt = uc.now().UTC()

	err := uc.AuditRepository.Insert(context.WithoutCancel(ctx), record)
	if err != nil {
		uc.Log.Warn("adminUsecase.audit error writing audit record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("action", record.Action),
			zap.Error(err),
		)
	}
}
