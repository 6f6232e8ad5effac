package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/00rosa/rena-plataform/internal/handlers"
	product_handler "github.com/00rosa/rena-plataform/internal/handlers/product-handler"
	"github.com/00rosa/rena-plataform/internal/middleware"
	"github.com/00rosa/rena-plataform/state"
)

func ProductRouter(r chi.Router, state *state.AppState) {
	productHandler := product_handler.NewProductHandler(state)
	auth := middleware.JWTAuth(state.JwtSecret.Public, state.Redis)

	r.Get("/api/v1/products", handlers.WrapHandler(productHandler.ListAvailable))
	r.Get("/api/v1/products/search", handlers.WrapHandler(productHandler.SearchProducts))
	r.Get("/api/v1/products/user/{userId}", handlers.WrapHandler(productHandler.ListByUser))
	r.Get("/api/v1/products/user/{userId}/count", handlers.WrapHandler(productHandler.CountByUser))
	r.Get("/api/v1/products/{id}", handlers.WrapHandler(productHandler.GetProduct))

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/api/v1/products/status/{status}", handlers.WrapHandler(productHandler.ListByStatus))
		r.Post("/api/v1/products", handlers.WrapHandler(productHandler.CreateProduct))
		r.Put("/api/v1/products/{id}", handlers.WrapHandler(productHandler.UpdateProduct))
		r.Put("/api/v1/products/{id}/status", handlers.WrapHandler(productHandler.ToggleStatus))
		r.Delete("/api/v1/products/{id}", handlers.WrapHandler(productHandler.DeleteProduct))
	})
}
