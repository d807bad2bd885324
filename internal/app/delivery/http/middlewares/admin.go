package middlewares

import (
	"context"
	"errors"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/exceptions"
	"invrent-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// AdminCapability attaches the admin capability of the caller, if any, to
// the request context. The x-admin-token header takes precedence over a raw
// x-admin-pin header. A token that no longer resolves leaves the request
// in non-admin mode instead of failing it. Raw PINs the backend rejects
// draw from the same per-IP budget as session activation.
func (m *Middlewares) AdminCapability(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var capability *models.AdminCapability

		if token := strings.TrimSpace(r.Header.Get(constvars.HeaderXAdminToken)); token != "" {
			resolved, err := m.AdminUsecase.Resolve(r.Context(), token)
			if err != nil {
				m.Log.Warn("Middlewares.AdminCapability admin token rejected, continuing without admin mode",
					zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
					zap.Error(err),
				)
			} else {
				capability = resolved
			}
		} else if pin := strings.TrimSpace(r.Header.Get(constvars.HeaderXAdminPin)); pin != "" {
			capability = &models.AdminCapability{Pin: pin, Source: constvars.AdminActorPin}
		}

		if capability == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_SESSION_KEY, capability)
		ctx = context.WithValue(ctx, constvars.CONTEXT_ADMIN_PIN_KEY, capability.Pin)
		if capability.Source != constvars.AdminActorPin {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		ip := clientIP(r)
		if m.pinLimiter.isBlocked(ip) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrClientRateLimited(errors.New("admin PIN attempts exhausted"), ip))
			return
		}

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))
		if rec.statusCode == http.StatusUnauthorized || rec.statusCode == http.StatusForbidden {
			m.pinLimiter.allow(ip)
		}
	})
}

func (m *Middlewares) RequireAdminMode(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capability := models.AdminCapabilityFromContext(r.Context())
		if capability == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminModeRequired(errors.New("no admin capability on request")))
			return
		}

		m.AdminUsecase.RecordPrivilegedAction(r.Context(), capability, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
