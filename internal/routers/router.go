package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/00rosa/rena-plataform/internal/middleware"
	"github.com/00rosa/rena-plataform/state"
)

func NewRouter(state *state.AppState) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.WithRequestId)
	UserRouter(r, state)
	CategoryRouter(r, state)
	ProductRouter(r, state)
	return r
}
