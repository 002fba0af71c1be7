package api

import (
	"encoding/json"
	"net/http"
	"time"

	"devhub/portal/internal/content"
	"devhub/portal/internal/personalize"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// variantOpts extracts the personalization variant from the request, if any.
func variantOpts(r *http.Request) []content.FetchOption {
	variant := personalize.DecodeVariantParam(r.URL.Query())
	if variant == "" {
		return nil
	}
	return []content.FetchOption{content.WithVariant(variant)}
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.GetAllProducts(r.Context(), variantOpts(r)...))
}

func (s *Server) handleListProductsDetailed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.GetAllProductsDetailed(r.Context(), variantOpts(r)...))
}

func (s *Server) handleProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product := s.service.GetProductBySlug(r.Context(), slug, variantOpts(r)...)
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleSlugs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.GetAllProductSlugs(r.Context()))
}

func (s *Server) handleHomepage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.GetHomepageContent(r.Context(), variantOpts(r)...))
}

// revalidateResponse is the summary returned by the revalidation trigger.
type revalidateResponse struct {
	Revalidated []string  `json:"revalidated"`
	Timestamp   time.Time `json:"timestamp"`
}

// handleRevalidate re-requests the slug list and discards cached content so
// the rendering layer picks up fresh entries on its next pass.
func (s *Server) handleRevalidate(w http.ResponseWriter, r *http.Request) {
	slugs := s.service.GetAllProductSlugs(r.Context())

	paths := make([]string, 0, len(slugs)+1)
	paths = append(paths, "/products")
	for _, sl := range slugs {
		paths = append(paths, "/products/"+sl.Slug)
	}

	if s.cache != nil {
		if err := s.cache.Purge(r.Context()); err != nil {
			log.Errorf("Revalidation cache purge failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error":     "failed to purge cached content",
				"timestamp": time.Now().UTC(),
			})
			return
		}
	}

	log.Infof("Revalidated %d paths", len(paths))
	writeJSON(w, http.StatusOK, revalidateResponse{
		Revalidated: paths,
		Timestamp:   time.Now().UTC(),
	})
}
