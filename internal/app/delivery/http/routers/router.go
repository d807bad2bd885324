package routers

import (
	"fmt"
	"invrent-service/internal/app/config"
	"invrent-service/internal/app/delivery/http/controllers"
	"invrent-service/internal/app/delivery/http/middlewares"
	"invrent-service/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	logrusLogger *logrus.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	itemController *controllers.ItemController,
	catalogController *controllers.CatalogController,
	reservationController *controllers.ReservationController,
	loanController *controllers.LoanController,
	timelineController *controllers.TimelineController,
	adminController *controllers.AdminController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: allowedOrigins(internalConfig.App.CorsAllowedOrigins),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Content-Type",
			constvars.HeaderXRequestID, constvars.HeaderXAdminToken, constvars.HeaderXAdminPin,
		},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.RequestLogger(internalConfig.App, logrusLogger))
	router.Use(middlewares.RequestTimeout)

	router.Get("/healthz", healthController.Check)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(middlewares.AdminCapability)

			r.Route("/items", func(r chi.Router) {
				attachItemRoutes(r, middlewares, itemController, timelineController)
			})

			r.Route("/categories", func(r chi.Router) {
				attachCategoryRoutes(r, middlewares, catalogController)
			})

			r.Route("/locations", func(r chi.Router) {
				attachLocationRoutes(r, middlewares, catalogController)
			})

			r.Route("/reservations", func(r chi.Router) {
				attachReservationRoutes(r, middlewares, reservationController)
			})

			r.Route("/loans", func(r chi.Router) {
				attachLoanRoutes(r, middlewares, loanController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares.AdminPinLimit, adminController)
			})
		})
	})
}

func allowedOrigins(csv string) []string {
	var origins []string
	for _, origin := range strings.Split(csv, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
