package routers

import (
	"medibook-service/internal/app/services/core/reviews"

	"github.com/go-chi/chi/v5"
)

func attachReviewRoutes(router chi.Router, reviewController *reviews.ReviewController) {
	router.Get("/", reviewController.GetAllReviews)
}
