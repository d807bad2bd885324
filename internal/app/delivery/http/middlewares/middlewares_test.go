package middlewares

import (
	"context"
	"errors"
	"invrent-service/internal/app/config"
	"invrent-service/internal/app/contracts/mocks"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(adminUsecase *mocks.AdminUsecase) *Middlewares {
	return NewMiddlewares(zap.NewNop(), adminUsecase, &config.InternalConfig{})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil)

	var seen interface{}
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(constvars.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rec.Header().Get(constvars.HeaderXRequestID))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(constvars.HeaderXRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, seen)
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := newTestMiddlewares(nil)
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestTimeout(t *testing.T) {
	m := newTestMiddlewares(nil)
	m.InternalConfig.App.RequestTimeoutInSeconds = 5

	var deadline time.Time
	var hasDeadline bool
	handler := m.RequestTimeout(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, hasDeadline = r.Context().Deadline()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)

	m.InternalConfig.App.RequestTimeoutInSeconds = 0
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, hasDeadline)
}

func TestAdminCapability(t *testing.T) {
	capture := func(target **models.AdminCapability, pin *interface{}) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*target = models.AdminCapabilityFromContext(r.Context())
			*pin = r.Context().Value(constvars.CONTEXT_ADMIN_PIN_KEY)
		})
	}

	t.Run("valid token", func(t *testing.T) {
		uc := new(mocks.AdminUsecase)
		m := newTestMiddlewares(uc)
		resolved := &models.AdminCapability{Pin: "1234", Source: constvars.AdminActorToken, SessionID: "s1"}
		uc.On("Resolve", mock.Anything, "jwt").Return(resolved, nil)

		var capability *models.AdminCapability
		var pin interface{}
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(constvars.HeaderXAdminToken, "jwt")
		r.Header.Set(constvars.HeaderXAdminPin, "ignored")
		m.AdminCapability(capture(&capability, &pin)).ServeHTTP(httptest.NewRecorder(), r)

		assert.Equal(t, resolved, capability)
		assert.Equal(t, "1234", pin)
	})

	t.Run("expired token proceeds without admin mode", func(t *testing.T) {
		uc := new(mocks.AdminUsecase)
		m := newTestMiddlewares(uc)
		uc.On("Resolve", mock.Anything, "stale").Return(nil, errors.New("expired"))

		var capability *models.AdminCapability
		var pin interface{}
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(constvars.HeaderXAdminToken, "stale")
		rec := httptest.NewRecorder()
		m.AdminCapability(capture(&capability, &pin)).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, capability)
		assert.Nil(t, pin)
	})

	t.Run("raw pin header", func(t *testing.T) {
		uc := new(mocks.AdminUsecase)
		m := newTestMiddlewares(uc)

		var capability *models.AdminCapability
		var pin interface{}
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(constvars.HeaderXAdminPin, " 9876 ")
		m.AdminCapability(capture(&capability, &pin)).ServeHTTP(httptest.NewRecorder(), r)

		require.NotNil(t, capability)
		assert.Equal(t, constvars.AdminActorPin, capability.Source)
		assert.Equal(t, "9876", pin)
		uc.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})
}

func TestRequireAdminMode(t *testing.T) {
	uc := new(mocks.AdminUsecase)
	m := newTestMiddlewares(uc)
	called := false
	handler := m.RequireAdminMode(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/items/3", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	capability := &models.AdminCapability{Pin: "1234", Source: constvars.AdminActorPin}
	uc.On("RecordPrivilegedAction", mock.Anything, capability, http.MethodDelete, "/api/v1/items/3").Return()

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/items/3", nil)
	r = r.WithContext(context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_SESSION_KEY, capability))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.True(t, called)
	uc.AssertExpectations(t)
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Minute, 10*time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	send := func(remote string) int {
		r := httptest.NewRequest(http.MethodPost, "/admin/session", nil)
		r.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"), "other clients are unaffected")

	now = now.Add(5 * time.Minute)
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1003"), "still blocked")

	now = now.Add(6 * time.Minute)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1004"))
}

func TestRateLimiter_RefillsEvenlyOverWindow(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), AdminPinAttempts, AdminPinAttemptWindow, AdminPinBlockTime)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3*AdminPinAttempts; i++ {
		require.True(t, limiter.allow("10.0.0.1"), "attempt %d at five per minute", i+1)
		now = now.Add(AdminPinAttemptWindow / AdminPinAttempts)
	}
}

func TestAdminCapability_RawPinBudget(t *testing.T) {
	m := newTestMiddlewares(new(mocks.AdminUsecase))
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.pinLimiter.now = func() time.Time { return now }

	status := http.StatusUnauthorized
	calls := 0
	handler := m.AdminCapability(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(status)
	}))
	send := func(remote string) int {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
		r.RemoteAddr = remote
		r.Header.Set(constvars.HeaderXAdminPin, "0000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		return rec.Code
	}

	t.Run("accepted pins are not counted", func(t *testing.T) {
		status = http.StatusOK
		for i := 0; i < 3*AdminPinAttempts; i++ {
			require.Equal(t, http.StatusOK, send("10.0.0.9:1000"))
		}
	})

	t.Run("rejected pins block the client", func(t *testing.T) {
		status = http.StatusUnauthorized
		for i := 0; i <= AdminPinAttempts; i++ {
			require.Equal(t, http.StatusUnauthorized, send("10.0.0.1:1000"))
		}
		before := calls
		assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1001"))
		assert.Equal(t, before, calls, "blocked request must not reach the backend")
		assert.Equal(t, http.StatusUnauthorized, send("10.0.0.2:1000"), "other clients are unaffected")

		now = now.Add(AdminPinBlockTime + time.Second)
		assert.Equal(t, http.StatusUnauthorized, send("10.0.0.1:1002"))
	})

	t.Run("activation shares the budget", func(t *testing.T) {
		activate := m.AdminPinLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", nil)
		r.RemoteAddr = "10.0.0.2:2000"
		rec := httptest.NewRecorder()
		activate.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, AdminPinAttempts-1, int(m.pinLimiter.limiters["10.0.0.2"].TokensAt(now)))
	})
}
