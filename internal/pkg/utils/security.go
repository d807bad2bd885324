package utils

import (
	"encoding/hex"
	"errors"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/blake2b"
)

// ParseAdminSessionJWT verifies the token and returns its session id.
func ParseAdminSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims["session_id"].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}

	return "", errors.New("token does not carry a session id")
}

// FingerprintPin returns a keyed hash of the PIN so audit records can be
// correlated without storing the PIN itself.
func FingerprintPin(pin, key string) string {
	mac, err := blake2b.New256([]byte(key))
	if err != nil {
		sum := blake2b.Sum256([]byte(key + pin))
		return hex.EncodeToString(sum[:8])
	}
	mac.Write([]byte(pin))
	return hex.EncodeToString(mac.Sum(nil)[:8])
}
