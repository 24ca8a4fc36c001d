package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, bookingModel *models.Booking) (bookingID string, err error)
	FindByUserID(ctx context.Context, userID string) ([]models.Booking, error)
}
