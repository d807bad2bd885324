package routers

import (
	"invrent-service/internal/app/delivery/http/controllers"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, pinLimit func(http.Handler) http.Handler, adminController *controllers.AdminController) {
	router.With(pinLimit).Post("/session", adminController.Activate)
	router.Get("/session", adminController.Status)
	router.Delete("/session", adminController.Deactivate)
}
