// Package http implements the HTML transport layer of the application.
// It provides middleware, route handlers, server-rendered templates and
// cookie-session plumbing. Authentication, logging, tracing and request
// size limiting are all handled at this layer before requests reach the
// service layer.
package http

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/MKhiriev/rebaby/internal/config"
	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/internal/service"
	"github.com/MKhiriev/rebaby/web"
)

type Handler struct {
	services *service.Services

	sessions  *sessions.CookieStore
	templates map[string]*template.Template
	static    http.Handler

	secretKey      []byte
	secureCookies  bool
	maxUploadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		logger.Err(err).Msg("error parsing embedded templates")
		return nil, fmt.Errorf("error parsing embedded templates: %w", err)
	}

	staticFS, err := fs.Sub(web.Assets, "static")
	if err != nil {
		return nil, fmt.Errorf("error mounting embedded static assets: %w", err)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.App.SecretKey))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   cfg.Server.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessionStore,
		templates:      templates,
		static:         http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
		secretKey:      []byte(cfg.App.SecretKey),
		secureCookies:  cfg.Server.SecureCookies,
		maxUploadBytes: cfg.Server.MaxUploadBytes,
		logger:         logger,
	}, nil
}
