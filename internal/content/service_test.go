package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"devhub/portal/internal/cms"
	"devhub/portal/internal/domain"
	"devhub/portal/internal/fallback"
	"devhub/portal/internal/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	client cms.Client
}

func (p *fakeProvider) Get() cms.Client { return p.client }

type fakeClient struct {
	entries []cms.Entry
	err     error
	queries []cms.Query
}

func (c *fakeClient) Entries(ctx context.Context, q cms.Query) ([]cms.Entry, error) {
	c.queries = append(c.queries, q)
	if c.err != nil {
		return nil, c.err
	}
	if q.SlugEquals != "" {
		for _, e := range c.entries {
			if e["slug"] == q.SlugEquals {
				return []cms.Entry{e}, nil
			}
		}
		return nil, nil
	}
	return c.entries, nil
}

func offlineService() *Service {
	return NewService(&fakeProvider{client: nil}, fallback.NewStore())
}

func remoteService(c *fakeClient) *Service {
	return NewService(&fakeProvider{client: c}, fallback.NewStore())
}

func TestFetchers_TotalFallbackWithoutConnection(t *testing.T) {
	ctx := context.Background()
	svc := offlineService()
	store := fallback.NewStore()

	assert.Equal(t, store.AllProducts(), svc.GetAllProducts(ctx))
	assert.Equal(t, store.AllProducts(), svc.GetAllProductsDetailed(ctx))
	assert.Equal(t, store.Slugs(), svc.GetAllProductSlugs(ctx))
	assert.Equal(t, store.Homepage(), svc.GetHomepageContent(ctx))
}

func TestFetchers_FallbackOnQueryError(t *testing.T) {
	ctx := context.Background()
	svc := remoteService(&fakeClient{err: errors.New("upstream down")})
	store := fallback.NewStore()

	assert.Equal(t, store.AllProducts(), svc.GetAllProducts(ctx))
	assert.Equal(t, store.Homepage(), svc.GetHomepageContent(ctx))
	assert.Equal(t, store.Slugs(), svc.GetAllProductSlugs(ctx))
}

func TestFetchers_FallbackOnEmptyRemoteResult(t *testing.T) {
	// An empty successful result is treated like a failure: the hub always
	// renders something.
	ctx := context.Background()
	svc := remoteService(&fakeClient{entries: []cms.Entry{}})
	store := fallback.NewStore()

	assert.Equal(t, store.AllProducts(), svc.GetAllProducts(ctx))
}

func TestGetAllProducts_DeterministicFallbackOrdering(t *testing.T) {
	ctx := context.Background()
	svc := offlineService()

	first := svc.GetAllProducts(ctx)
	second := svc.GetAllProducts(ctx)
	require.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		assert.LessOrEqual(t, first[i-1].Title, first[i].Title)
	}
}

func TestGetProductBySlug_FallbackLookup(t *testing.T) {
	ctx := context.Background()
	svc := offlineService()

	for _, want := range fallback.NewStore().AllProducts() {
		got := svc.GetProductBySlug(ctx, want.Slug)
		require.NotNil(t, got, want.Slug)
		assert.Equal(t, want.Slug, got.Slug)
	}

	assert.Nil(t, svc.GetProductBySlug(ctx, "missing-product"))
	assert.Nil(t, svc.GetProductBySlug(ctx, ""))
}

func TestGetProductBySlug_RemoteMatch(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{entries: []cms.Entry{
		{"uid": "p1", "title": "Remote Thing", "slug": "remote-thing"},
	}}
	svc := remoteService(client)

	got := svc.GetProductBySlug(ctx, "remote-thing")
	require.NotNil(t, got)
	assert.Equal(t, "Remote Thing", got.Title)

	// The query carried the slug filter and reference inclusion.
	require.NotEmpty(t, client.queries)
	q := client.queries[len(client.queries)-1]
	assert.Equal(t, "remote-thing", q.SlugEquals)
	assert.Contains(t, q.Include, "repositories.tech_stack")
}

func TestGetProductBySlug_RemoteMissFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{entries: []cms.Entry{
		{"uid": "p1", "title": "Remote Thing", "slug": "remote-thing"},
	}}
	svc := remoteService(client)

	// Slug unknown remotely but present in fallback.
	got := svc.GetProductBySlug(ctx, "checkout-platform")
	require.NotNil(t, got)
	assert.Equal(t, "checkout-platform", got.Slug)

	assert.Nil(t, svc.GetProductBySlug(ctx, "unknown-everywhere"))
}

func TestGetAllProducts_RemoteEntriesAreNormalizedAndSorted(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{entries: []cms.Entry{
		{"uid": "b", "title": "Zeta", "slug": "zeta", "iconUrl": "https://x/z.png"},
		{"uid": "a", "title": "Alpha", "slug": "alpha", "icon_url": map[string]any{"url": "https://x/a.png"}},
	}}
	svc := remoteService(client)

	products := svc.GetAllProducts(ctx)
	require.Len(t, products, 2)
	assert.Equal(t, "Alpha", products[0].Title)
	assert.Equal(t, "https://x/a.png", products[0].IconURL)
	assert.Equal(t, "https://x/z.png", products[1].IconURL)

	// Light projection requested.
	require.NotEmpty(t, client.queries)
	assert.Contains(t, client.queries[0].Only, "slug")
	assert.Equal(t, "title", client.queries[0].OrderAscBy)
}

func TestFetchers_VariantReachesQuery(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{entries: []cms.Entry{
		{"uid": "a", "title": "Alpha", "slug": "alpha"},
	}}
	svc := remoteService(client)

	svc.GetAllProducts(ctx, WithVariant("exp1_var2"))
	require.NotEmpty(t, client.queries)
	assert.Equal(t, "cs_personalize_exp1_var2", client.queries[0].VariantAliases)

	// Malformed variant leaves the query unfiltered.
	client.queries = nil
	svc.GetAllProducts(ctx, WithVariant("garbage"))
	require.NotEmpty(t, client.queries)
	assert.Equal(t, "", client.queries[0].VariantAliases)
}

func TestGetHomepageContent_Remote(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{entries: []cms.Entry{
		{
			"hero_title": "From remote",
			"featured_products": []any{
				map[string]any{"title": "Alpha", "slug": "alpha"},
			},
		},
	}}
	svc := remoteService(client)

	hp := svc.GetHomepageContent(ctx)
	assert.Equal(t, "From remote", hp.HeroTitle)
	require.Len(t, hp.FeaturedProducts, 1)
	assert.Equal(t, "alpha", hp.FeaturedProducts[0].Slug)
}

// fakeSnapshots is an in-memory snapshot repository.
type fakeSnapshots struct {
	products map[string][]domain.Product
	homepage *domain.HomepageContent
	loadErr  error
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{products: map[string][]domain.Product{}}
}

func (f *fakeSnapshots) SaveProducts(ctx context.Context, kind string, products []domain.Product) error {
	f.products[kind] = products
	return nil
}

func (f *fakeSnapshots) LoadProducts(ctx context.Context, kind string) ([]domain.Product, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.products[kind], nil
}

func (f *fakeSnapshots) SaveHomepage(ctx context.Context, hp domain.HomepageContent) error {
	f.homepage = &hp
	return nil
}

func (f *fakeSnapshots) LoadHomepage(ctx context.Context) (*domain.HomepageContent, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.homepage, nil
}

func TestSnapshots_LastGoodPreferredOverBuiltin(t *testing.T) {
	ctx := context.Background()
	snaps := newFakeSnapshots()
	snaps.products[snapshot.KindProductsLight] = []domain.Product{
		{Title: "Stored", Slug: "stored"},
	}
	svc := NewService(&fakeProvider{client: nil}, fallback.NewStore(), WithSnapshots(snaps))

	products := svc.GetAllProducts(ctx)
	require.Len(t, products, 1)
	assert.Equal(t, "stored", products[0].Slug)
}

func TestSnapshots_WrittenOnRemoteSuccessOnly(t *testing.T) {
	ctx := context.Background()
	snaps := newFakeSnapshots()
	client := &fakeClient{entries: []cms.Entry{
		{"uid": "a", "title": "Alpha", "slug": "alpha"},
	}}
	svc := NewService(&fakeProvider{client: client}, fallback.NewStore(), WithSnapshots(snaps))

	svc.GetAllProducts(ctx)
	require.Len(t, snaps.products[snapshot.KindProductsLight], 1)

	// A personalized fetch never overwrites the canonical snapshot.
	client.entries = []cms.Entry{{"uid": "b", "title": "Beta", "slug": "beta"}}
	svc.GetAllProducts(ctx, WithVariant("exp1_var2"))
	assert.Equal(t, "alpha", snaps.products[snapshot.KindProductsLight][0].Slug)
}

func TestSnapshots_FallbackWhenRemoteFails(t *testing.T) {
	ctx := context.Background()
	snaps := newFakeSnapshots()
	client := &fakeClient{entries: []cms.Entry{
		{"uid": "a", "title": "Alpha", "slug": "alpha"},
	}}
	svc := NewService(&fakeProvider{client: client}, fallback.NewStore(), WithSnapshots(snaps))

	// Healthy fetch records the snapshot.
	svc.GetAllProductsDetailed(ctx)

	// Remote breaks: the last-good snapshot answers, not the builtin data.
	client.err = errors.New("boom")
	products := svc.GetAllProductsDetailed(ctx)
	require.Len(t, products, 1)
	assert.Equal(t, "alpha", products[0].Slug)

	// Snapshot errors degrade further to the builtin dataset.
	snaps.loadErr = errors.New("db gone")
	products = svc.GetAllProductsDetailed(ctx)
	assert.Equal(t, fallback.NewStore().AllProducts(), products)
}

// memoryCache records cache traffic.
type memoryCache struct {
	values map[string][]byte
	hits   int
}

func newMemoryCache() *memoryCache { return &memoryCache{values: map[string][]byte{}} }

func (m *memoryCache) Get(ctx context.Context, key string, v any) bool {
	data, ok := m.values[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	m.hits++
	return true
}

func (m *memoryCache) Set(ctx context.Context, key string, v any) {
	if data, err := json.Marshal(v); err == nil {
		m.values[key] = data
	}
}

func (m *memoryCache) Purge(ctx context.Context) error {
	m.values = map[string][]byte{}
	return nil
}

func TestCache_RemoteResultsAreCached(t *testing.T) {
	ctx := context.Background()
	mem := newMemoryCache()
	client := &fakeClient{entries: []cms.Entry{
		{"uid": "a", "title": "Alpha", "slug": "alpha"},
	}}
	svc := NewService(&fakeProvider{client: client}, fallback.NewStore(), WithCache(mem))

	first := svc.GetAllProducts(ctx)
	second := svc.GetAllProducts(ctx)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, mem.hits)
	assert.Len(t, client.queries, 1, "second call served from cache")
}

func TestCache_FallbackResultsAreNotCached(t *testing.T) {
	ctx := context.Background()
	mem := newMemoryCache()
	svc := NewService(&fakeProvider{client: nil}, fallback.NewStore(), WithCache(mem))

	svc.GetAllProducts(ctx)
	assert.Empty(t, mem.values, "degraded results must not mask recovery")
}
