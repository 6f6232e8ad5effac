package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/00rosa/rena-plataform/internal/handlers"
	category_handler "github.com/00rosa/rena-plataform/internal/handlers/category-handler"
	"github.com/00rosa/rena-plataform/internal/middleware"
	"github.com/00rosa/rena-plataform/state"
)

func CategoryRouter(r chi.Router, state *state.AppState) {
	categoryHandler := category_handler.NewCategoryHandler(state)
	auth := middleware.JWTAuth(state.JwtSecret.Public, state.Redis)

	r.Get("/api/v1/categories", handlers.WrapHandler(categoryHandler.ListCategories))
	r.Get("/api/v1/categories/{id}", handlers.WrapHandler(categoryHandler.GetCategory))

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Post("/api/v1/categories", handlers.WrapHandler(categoryHandler.CreateCategory))
		r.Put("/api/v1/categories/{id}", handlers.WrapHandler(categoryHandler.UpdateCategory))
		r.Delete("/api/v1/categories/{id}", handlers.WrapHandler(categoryHandler.DeleteCategory))
	})
}
