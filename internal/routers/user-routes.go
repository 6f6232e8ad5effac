package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/00rosa/rena-plataform/internal/handlers"
	user_handler "github.com/00rosa/rena-plataform/internal/handlers/user-handler"
	"github.com/00rosa/rena-plataform/internal/middleware"
	"github.com/00rosa/rena-plataform/state"
)

func UserRouter(r chi.Router, state *state.AppState) {
	userHandler := user_handler.NewUserHandler(state)
	auth := middleware.JWTAuth(state.JwtSecret.Public, state.Redis)

	r.Post("/api/v1/users/register", handlers.WrapHandler(userHandler.Register))
	r.Post("/api/v1/users/login", handlers.WrapHandler(userHandler.Login))
	r.Get("/api/v1/users/{id}", handlers.WrapHandler(userHandler.GetUser))

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Put("/api/v1/users/{id}", handlers.WrapHandler(userHandler.UpdateProfile))
		r.Put("/api/v1/users/{id}/password", handlers.WrapHandler(userHandler.ChangePassword))
		r.Delete("/api/v1/users/{id}", handlers.WrapHandler(userHandler.DeleteUser))
	})
}
