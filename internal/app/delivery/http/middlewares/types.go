package middlewares

import (
	"invrent-service/internal/app/config"
	"invrent-service/internal/app/contracts"
	"time"

	"go.uber.org/zap"
)

// PIN guessing budget per client IP, shared by session activation and the
// raw x-admin-pin header.
const (
	AdminPinAttempts      = 5
	AdminPinAttemptWindow = time.Minute
	AdminPinBlockTime     = 15 * time.Minute
)

type Middlewares struct {
	Log            *zap.Logger
	AdminUsecase   contracts.AdminUsecase
	InternalConfig *config.InternalConfig
	pinLimiter     *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, adminUsecase contracts.AdminUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AdminUsecase:   adminUsecase,
		InternalConfig: internalConfig,
		pinLimiter:     NewRateLimiter(logger, AdminPinAttempts, AdminPinAttemptWindow, AdminPinBlockTime),
	}
}
