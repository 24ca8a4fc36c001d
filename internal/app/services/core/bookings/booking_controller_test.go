package bookings

import (
	"context"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingUsecase struct {
	session *responses.CheckoutSession
	err     error
}

func (s *stubBookingUsecase) GetCheckoutSession(ctx context.Context, request *requests.CheckoutSession) (*responses.CheckoutSession, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func (s *stubBookingUsecase) GetBookingsByUser(ctx context.Context, userID string) ([]responses.Booking, error) {
	return nil, nil
}

func TestGetCheckoutSessionResponseShape(t *testing.T) {
	controller := NewBookingController(zap.NewNop(), &stubBookingUsecase{
		session: &responses.CheckoutSession{
			ID:       "cs_test_123",
			URL:      "https://checkout.example.com/cs_test_123",
			Currency: "pkr",
		},
	})

	req := httptest.NewRequest("POST", "/api/v1/bookings/checkout-session/doc-1", nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("doctorId", "doc-1")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	ctx = context.WithValue(ctx, constvars.ContextUserIDKey, "user-1")
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	controller.GetCheckoutSession(rr, req)

	require.Equal(t, constvars.StatusOK, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, constvars.CheckoutSuccessMessage, body["message"])

	session, ok := body["session"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "cs_test_123", session["id"])
	_, hasData := body["data"]
	assert.False(t, hasData)
}
