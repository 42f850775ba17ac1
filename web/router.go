package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/The-Yester/Pickem/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/matchups", matchupsHandler(ctrl, render))
	r.Get("/leaderboard", leaderboardHandler(ctrl, render))

	r.Route("/users", func(r chi.Router) {
		r.Post("/", registerHandler(ctrl, render))
		r.Post("/login", loginHandler(ctrl, render))

		r.Route("/{username}", func(r chi.Router) {
			r.Get("/stats", statsHandler(ctrl, render))
			r.Get("/picks", weekPicksHandler(ctrl, render))
			r.Put("/picks/{week:\\d+}", savePicksHandler(ctrl, render))
		})
	})

	return r
}
