package utils

import (
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Body carries success and message only, no status code", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrDoctorNotFound(nil))

		assert.Equal(t, constvars.StatusNotFound, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientDoctorNotFound, body["message"])
		_, hasStatusCode := body["status_code"]
		assert.False(t, hasStatusCode)
	})

	t.Run("Underlying message is hidden in production", func(t *testing.T) {
		SetEnvironment("production")
		defer SetEnvironment("development")

		rr := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrPaymentGatewayCreateSession(nil))

		body := decodeBody(t, rr)
		_, hasError := body["error"]
		assert.False(t, hasError)
	})

	t.Run("Underlying message is exposed outside production", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrPaymentGatewayCreateSession(nil))

		body := decodeBody(t, rr)
		assert.NotEmpty(t, body["error"])
	})
}

func TestBuildCheckoutSessionResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	BuildCheckoutSessionResponse(rr, constvars.StatusOK, constvars.CheckoutSuccessMessage, map[string]string{"id": "cs_test_123"})

	assert.Equal(t, constvars.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, constvars.CheckoutSuccessMessage, body["message"])

	session, ok := body["session"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "cs_test_123", session["id"])
	_, hasData := body["data"]
	assert.False(t, hasData)
}
