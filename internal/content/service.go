// Package content implements the content resolution pipeline: each fetcher
// composes the connection accessor, a shape-specific delivery query, field
// normalization and the fallback store. The availability-over-freshness
// policy lives here: no fetcher ever returns an error, every failure mode
// resolves to fallback data, and the portal always renders.
package content

import (
	"context"
	"sort"

	"devhub/portal/internal/cache"
	"devhub/portal/internal/cms"
	"devhub/portal/internal/domain"
	"devhub/portal/internal/fallback"
	"devhub/portal/internal/personalize"
	"devhub/portal/internal/snapshot"

	log "github.com/sirupsen/logrus"
)

// ClientProvider hands out the memoized delivery client, or nil when remote
// access is unavailable. cms.Accessor is the production implementation.
type ClientProvider interface {
	Get() cms.Client
}

// lightFields is the projection for list/card rendering.
var lightFields = []string{"title", "slug", "description", "category", "color", "icon_url", "tech_stack", "team_size"}

// slugFields is the projection for static path enumeration.
var slugFields = []string{"title", "slug"}

type Service struct {
	provider  ClientProvider
	fallback  *fallback.Store
	cache     cache.Cache         // optional
	snapshots snapshot.Repository // optional
}

type Option func(*Service)

// WithCache enables the read-through result cache.
func WithCache(c cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithSnapshots enables the last-good snapshot store, preferred over the
// built-in dataset when the remote source fails.
func WithSnapshots(r snapshot.Repository) Option {
	return func(s *Service) { s.snapshots = r }
}

func NewService(provider ClientProvider, fb *fallback.Store, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		fallback: fb,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchOption adjusts a single fetch, independent of any other call.
type FetchOption func(*fetchOptions)

type fetchOptions struct {
	variant string
}

// WithVariant applies a decoded personalization variant parameter to the
// remote query. Fallback data is never personalized.
func WithVariant(param string) FetchOption {
	return func(o *fetchOptions) { o.variant = param }
}

func collect(opts []FetchOption) fetchOptions {
	var o fetchOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// resolve is the single place the never-throws contract is enforced. A nil
// handle, a query error and an empty result all degrade to the fallback
// closure; an empty remote result is deliberately indistinguishable from a
// broken one (see DESIGN.md). The second return reports whether the value
// came from the remote source; only remote results are cached or
// snapshotted.
func resolve[T any](name string, handle cms.Client, remote func(cms.Client) (T, error), isEmpty func(T) bool, fb func() T) (T, bool) {
	if handle == nil {
		log.Debugf("No delivery client, serving fallback for %s", name)
		return fb(), false
	}

	v, err := remote(handle)
	if err != nil {
		log.Warnf("Remote fetch failed for %s, serving fallback: %v", name, err)
		return fb(), false
	}
	if isEmpty(v) {
		log.Warnf("Remote fetch for %s returned no entries, serving fallback", name)
		return fb(), false
	}
	return v, true
}

// GetAllProducts returns every product with the lightweight field set, for
// list and card rendering. Ordered ascending by title.
func (s *Service) GetAllProducts(ctx context.Context, opts ...FetchOption) []domain.Product {
	o := collect(opts)
	key := "products:light:v=" + o.variant

	var cached []domain.Product
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	products, fromRemote := resolve("products (light)", s.provider.Get(),
		func(c cms.Client) ([]domain.Product, error) {
			q := cms.NewQuery(cms.ContentTypeProduct).OrderByTitle().OnlyFields(lightFields...)
			q = personalize.ApplyVariants(q, o.variant)
			entries, err := c.Entries(ctx, q)
			if err != nil {
				return nil, err
			}
			return normalizeAll(entries), nil
		},
		func(products []domain.Product) bool { return len(products) == 0 },
		func() []domain.Product { return s.fallbackProducts(ctx, snapshot.KindProductsLight) },
	)

	if fromRemote {
		s.cacheSet(ctx, key, products)
		s.snapshotProducts(ctx, snapshot.KindProductsLight, products, o.variant)
	}
	return products
}

// GetAllProductsDetailed returns every product with the full field set, for
// the listing page with rich cards. Ordered ascending by title.
func (s *Service) GetAllProductsDetailed(ctx context.Context, opts ...FetchOption) []domain.Product {
	o := collect(opts)
	key := "products:detailed:v=" + o.variant

	var cached []domain.Product
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	products, fromRemote := resolve("products (detailed)", s.provider.Get(),
		func(c cms.Client) ([]domain.Product, error) {
			q := cms.NewQuery(cms.ContentTypeProduct).OrderByTitle()
			q = personalize.ApplyVariants(q, o.variant)
			entries, err := c.Entries(ctx, q)
			if err != nil {
				return nil, err
			}
			return normalizeAll(entries), nil
		},
		func(products []domain.Product) bool { return len(products) == 0 },
		func() []domain.Product { return s.fallbackProducts(ctx, snapshot.KindProductsDetailed) },
	)

	if fromRemote {
		s.cacheSet(ctx, key, products)
		s.snapshotProducts(ctx, snapshot.KindProductsDetailed, products, o.variant)
	}
	return products
}

// GetProductBySlug returns the product matching slug with its nested
// relations resolved, or nil when neither the remote source nor the
// fallback dataset knows the slug.
func (s *Service) GetProductBySlug(ctx context.Context, slug string, opts ...FetchOption) *domain.Product {
	if slug == "" {
		return nil
	}

	o := collect(opts)
	key := "product:" + slug + ":v=" + o.variant

	var cached domain.Product
	if s.cacheGet(ctx, key, &cached) {
		return &cached
	}

	product, fromRemote := resolve("product "+slug, s.provider.Get(),
		func(c cms.Client) (*domain.Product, error) {
			q := cms.NewQuery(cms.ContentTypeProduct).
				WhereSlug(slug).
				IncludeReferences("repositories.tech_stack")
			q = personalize.ApplyVariants(q, o.variant)
			entries, err := c.Entries(ctx, q)
			if err != nil {
				return nil, err
			}
			if len(entries) == 0 {
				return nil, nil
			}
			p := cms.NormalizeProduct(entries[0])
			return &p, nil
		},
		func(p *domain.Product) bool { return p == nil },
		func() *domain.Product { return s.fallbackProductBySlug(ctx, slug) },
	)

	if fromRemote && product != nil {
		s.cacheSet(ctx, key, product)
	}
	return product
}

// GetAllProductSlugs returns the slug+title projection for every product,
// ordered ascending by title. Used to enumerate pages for static generation
// and by the revalidation trigger.
func (s *Service) GetAllProductSlugs(ctx context.Context) []domain.ProductSlug {
	key := "products:slugs"

	var cached []domain.ProductSlug
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	slugs, fromRemote := resolve("product slugs", s.provider.Get(),
		func(c cms.Client) ([]domain.ProductSlug, error) {
			q := cms.NewQuery(cms.ContentTypeProduct).OrderByTitle().OnlyFields(slugFields...)
			entries, err := c.Entries(ctx, q)
			if err != nil {
				return nil, err
			}
			slugs := make([]domain.ProductSlug, 0, len(entries))
			for _, entry := range entries {
				p := cms.NormalizeProduct(entry)
				slugs = append(slugs, domain.ProductSlug{Slug: p.Slug, Title: p.Title})
			}
			sortSlugs(slugs)
			return slugs, nil
		},
		func(slugs []domain.ProductSlug) bool { return len(slugs) == 0 },
		func() []domain.ProductSlug { return s.fallbackSlugs(ctx) },
	)

	if fromRemote {
		s.cacheSet(ctx, key, slugs)
	}
	return slugs
}

// GetHomepageContent returns the singleton homepage entry with nested
// references resolved.
func (s *Service) GetHomepageContent(ctx context.Context, opts ...FetchOption) domain.HomepageContent {
	o := collect(opts)
	key := "homepage:v=" + o.variant

	var cached domain.HomepageContent
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	hp, fromRemote := resolve("homepage", s.provider.Get(),
		func(c cms.Client) (*domain.HomepageContent, error) {
			q := cms.NewQuery(cms.ContentTypeHomepage).
				IncludeReferences("featured_products", "featured_products.tech_stack")
			q = personalize.ApplyVariants(q, o.variant)
			entries, err := c.Entries(ctx, q)
			if err != nil {
				return nil, err
			}
			if len(entries) == 0 {
				return nil, nil
			}
			normalized := cms.NormalizeHomepage(entries[0])
			return &normalized, nil
		},
		func(hp *domain.HomepageContent) bool { return hp == nil },
		func() *domain.HomepageContent { return s.fallbackHomepage(ctx) },
	)

	if fromRemote {
		s.cacheSet(ctx, key, hp)
		if o.variant == "" && s.snapshots != nil {
			if err := s.snapshots.SaveHomepage(ctx, *hp); err != nil {
				log.Warnf("Failed to snapshot homepage: %v", err)
			}
		}
	}
	return *hp
}

func normalizeAll(entries []cms.Entry) []domain.Product {
	products := make([]domain.Product, 0, len(entries))
	for _, entry := range entries {
		products = append(products, cms.NormalizeProduct(entry))
	}
	// The query asks for title ordering; sorting again costs little and
	// keeps the ordering guarantee independent of remote behavior.
	sort.Slice(products, func(i, j int) bool { return products[i].Title < products[j].Title })
	return products
}

func sortSlugs(slugs []domain.ProductSlug) {
	sort.Slice(slugs, func(i, j int) bool { return slugs[i].Title < slugs[j].Title })
}

// fallbackProducts prefers a stored last-good snapshot over the built-in
// dataset, then sorts for determinism either way.
func (s *Service) fallbackProducts(ctx context.Context, kind string) []domain.Product {
	if s.snapshots != nil {
		stored, err := s.snapshots.LoadProducts(ctx, kind)
		if err != nil {
			log.Warnf("Failed to load %s snapshot: %v", kind, err)
		} else if len(stored) > 0 {
			sort.Slice(stored, func(i, j int) bool { return stored[i].Title < stored[j].Title })
			return stored
		}
	}
	return s.fallback.AllProducts()
}

func (s *Service) fallbackProductBySlug(ctx context.Context, slug string) *domain.Product {
	if s.snapshots != nil {
		stored, err := s.snapshots.LoadProducts(ctx, snapshot.KindProductsDetailed)
		if err != nil {
			log.Warnf("Failed to load %s snapshot: %v", snapshot.KindProductsDetailed, err)
		}
		for i := range stored {
			if stored[i].Slug == slug {
				return &stored[i]
			}
		}
	}
	return s.fallback.ProductBySlug(slug)
}

func (s *Service) fallbackSlugs(ctx context.Context) []domain.ProductSlug {
	if s.snapshots != nil {
		stored, err := s.snapshots.LoadProducts(ctx, snapshot.KindProductsLight)
		if err != nil {
			log.Warnf("Failed to load %s snapshot: %v", snapshot.KindProductsLight, err)
		} else if len(stored) > 0 {
			slugs := make([]domain.ProductSlug, 0, len(stored))
			for _, p := range stored {
				slugs = append(slugs, domain.ProductSlug{Slug: p.Slug, Title: p.Title})
			}
			sortSlugs(slugs)
			return slugs
		}
	}
	return s.fallback.Slugs()
}

func (s *Service) fallbackHomepage(ctx context.Context) *domain.HomepageContent {
	if s.snapshots != nil {
		stored, err := s.snapshots.LoadHomepage(ctx)
		if err != nil {
			log.Warnf("Failed to load homepage snapshot: %v", err)
		} else if stored != nil {
			return stored
		}
	}
	hp := s.fallback.Homepage()
	return &hp
}

func (s *Service) cacheGet(ctx context.Context, key string, v any) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, key, v)
}

func (s *Service) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, key, v)
}

// snapshotProducts records a successful unpersonalized remote fetch. The
// fallback dataset itself is never written back as a snapshot.
func (s *Service) snapshotProducts(ctx context.Context, kind string, products []domain.Product, variant string) {
	if s.snapshots == nil || variant != "" {
		return
	}
	if err := s.snapshots.SaveProducts(ctx, kind, products); err != nil {
		log.Warnf("Failed to snapshot %s: %v", kind, err)
	}
}
