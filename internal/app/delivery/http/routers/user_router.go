package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.Authentication).Get("/profile", userController.GetMyProfile)
	router.With(middlewares.Authentication).Put("/profile", userController.UpdateMyProfile)
}
