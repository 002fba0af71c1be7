package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"devhub/portal/internal/cache"
	"devhub/portal/internal/config"
	"devhub/portal/internal/content"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// Server exposes the content pipeline over JSON HTTP for the rendering
// layer: product lists, single products, slug enumeration, homepage content
// and the on-demand revalidation trigger.
type Server struct {
	service *content.Service
	cache   cache.Cache // optional; revalidation purges it when present
	addr    string
}

func NewServer(service *content.Service, contentCache cache.Cache, cfg config.ServerConfig) *Server {
	return &Server{
		service: service,
		cache:   contentCache,
		addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	}
}

// Routes builds the router. Split from Run so tests can drive the handlers
// without a listener.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.handleListProducts)
		r.Get("/products/detailed", s.handleListProductsDetailed)
		r.Get("/products/{slug}", s.handleProductBySlug)
		r.Get("/slugs", s.handleSlugs)
		r.Get("/homepage", s.handleHomepage)
		r.Post("/revalidate", s.handleRevalidate)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Portal API listening on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}
