package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(middlewares.Authentication).Post("/checkout-session/{doctorId}", bookingController.GetCheckoutSession)
	router.With(middlewares.Authentication).Get("/", bookingController.GetMyBookings)
}
