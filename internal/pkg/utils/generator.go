package utils

import (
	"fmt"
	"invrent-service/internal/pkg/constvars"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateAdminSessionJWT signs the admin capability token. Only the session
// id travels in the token; the PIN stays server side.
func GenerateAdminSessionJWT(sessionID, secret string, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        expiresAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GenerateTimelineObjectName(itemID int64, windowStart time.Time, days int) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%sitem_%d_%s_%dd_%s%s",
		constvars.TimelineExportObjectPrefix,
		itemID,
		windowStart.Format(constvars.BackendDateLayout),
		days,
		timestamp,
		constvars.TimelineExportFileExtension,
	)
}
