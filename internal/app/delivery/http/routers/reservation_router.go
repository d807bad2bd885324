package routers

import (
	"invrent-service/internal/app/delivery/http/controllers"
	"invrent-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReservationRoutes(router chi.Router, middlewares *middlewares.Middlewares, reservationController *controllers.ReservationController) {
	router.Get("/", reservationController.FindAll)
	router.Post("/", reservationController.Create)
	router.With(middlewares.RequireAdminMode).Post("/{reservationID}/cancel", reservationController.Cancel)
	router.With(middlewares.RequireAdminMode).Post("/{reservationID}/approve", reservationController.Approve)
}

func attachLoanRoutes(router chi.Router, middlewares *middlewares.Middlewares, loanController *controllers.LoanController) {
	router.Use(middlewares.RequireAdminMode)
	router.Post("/issue", loanController.Issue)
	router.Post("/return", loanController.Return)
}
