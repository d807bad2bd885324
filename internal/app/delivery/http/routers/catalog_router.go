package routers

import (
	"invrent-service/internal/app/delivery/http/controllers"
	"invrent-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCategoryRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.FindAllCategories)
	router.With(middlewares.RequireAdminMode).Post("/", catalogController.CreateCategory)
	router.With(middlewares.RequireAdminMode).Delete("/{categoryID}", catalogController.DeleteCategory)
}

func attachLocationRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.FindAllLocations)
	router.With(middlewares.RequireAdminMode).Post("/", catalogController.CreateLocation)
	router.With(middlewares.RequireAdminMode).Delete("/{locationID}", catalogController.DeleteLocation)
}
