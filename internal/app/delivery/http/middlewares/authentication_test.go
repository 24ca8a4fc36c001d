package middlewares

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	data map[string]string
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(raw)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func TestAuthentication(t *testing.T) {
	jwtSecret := "test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: jwtSecret, ExpTimeInHour: 1},
	}

	redisRepository := &fakeRedisRepository{data: map[string]string{}}
	middlewares := NewMiddlewares(zap.NewNop(), redisRepository, internalConfig)

	session := models.Session{UserID: "user-1", Role: constvars.RolePatient, Email: "patient@example.com"}
	sessionID := "abc-123"
	require.NoError(t, redisRepository.Set(context.Background(), constvars.SessionKeyPrefix+sessionID, session, time.Hour))

	token, err := utils.GenerateJWT(sessionID, jwtSecret, time.Hour)
	require.NoError(t, err)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(constvars.ContextUserIDKey).(string)
		assert.True(t, ok)
		assert.Equal(t, "user-1", userID)

		role, ok := r.Context().Value(constvars.ContextUserRoleKey).(string)
		assert.True(t, ok)
		assert.Equal(t, constvars.RolePatient, role)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid token with live session passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/bookings/checkout-session/doc-1", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthBearerPrefix+token)

		rr := httptest.NewRecorder()
		middlewares.Authentication(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Authorization header is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/bookings/checkout-session/doc-1", nil)

		rr := httptest.NewRecorder()
		middlewares.Authentication(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/bookings/checkout-session/doc-1", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthBearerPrefix+"not-a-jwt")

		rr := httptest.NewRecorder()
		middlewares.Authentication(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid token without a session is rejected", func(t *testing.T) {
		orphanToken, err := utils.GenerateJWT("expired-session", jwtSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/v1/bookings/checkout-session/doc-1", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthBearerPrefix+orphanToken)

		rr := httptest.NewRecorder()
		middlewares.Authentication(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token signed with another secret is rejected", func(t *testing.T) {
		forgedToken, err := utils.GenerateJWT(sessionID, "other-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/v1/bookings/checkout-session/doc-1", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthBearerPrefix+forgedToken)

		rr := httptest.NewRecorder()
		middlewares.Authentication(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
