package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withBodyLimit)
	router.Use(csrf.Protect(h.secretKey,
		csrf.Secure(h.secureCookies),
		csrf.Path("/"),
	))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/item/{id}", h.itemDetail)
		r.Get("/uploads/{filename}", h.uploads)
		r.Handle("/static/*", h.static)
	})

	// routes that require a signed-in user
	router.Group(func(r chi.Router) {
		r.Use(h.requireLogin)
		r.Get("/logout", h.logout)
		r.Get("/add", h.addItemForm)
		r.Post("/add", h.addItem)
	})

	return router
}
