package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/reviews"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController, reviewController *reviews.ReviewController) {
	router.Get("/", doctorController.ListDoctors)
	router.Get("/{doctorId}", doctorController.GetDoctor)
	router.With(middlewares.Authentication).Put("/profile", doctorController.UpdateMyProfile)

	router.Get("/{doctorId}/reviews", reviewController.GetDoctorReviews)
	router.With(middlewares.Authentication).Post("/{doctorId}/reviews", reviewController.CreateReview)
}
