package routers

import (
	"invrent-service/internal/app/delivery/http/controllers"
	"invrent-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachItemRoutes(router chi.Router, middlewares *middlewares.Middlewares, itemController *controllers.ItemController, timelineController *controllers.TimelineController) {
	router.Get("/", itemController.FindAll)
	router.With(middlewares.RequireAdminMode).Post("/", itemController.Create)
	router.Get("/{itemID}", itemController.FindByID)
	router.With(middlewares.RequireAdminMode).Put("/{itemID}", itemController.Update)
	router.With(middlewares.RequireAdminMode).Delete("/{itemID}", itemController.Delete)
	router.Get("/{itemID}/history", itemController.FindHistory)

	router.Get("/{itemID}/timeline", timelineController.Find)
	router.Get("/{itemID}/timeline.svg", timelineController.RenderSVG)
	router.With(middlewares.RequireAdminMode).Post("/{itemID}/timeline/export", timelineController.Export)
}
