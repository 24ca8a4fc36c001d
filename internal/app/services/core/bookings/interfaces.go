package bookings

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	GetCheckoutSession(ctx context.Context, request *requests.CheckoutSession) (*responses.CheckoutSession, error)
	GetBookingsByUser(ctx context.Context, userID string) ([]responses.Booking, error)
}
