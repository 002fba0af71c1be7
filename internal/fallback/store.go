// Package fallback holds the static dataset the portal serves whenever the
// remote content source is unavailable, misconfigured, or empty. The data is
// already canonical, so it bypasses normalization entirely; fetchers apply
// the same predicates to it (slug equality, title ascending) that a remote
// query would, which keeps degraded responses indistinguishable in shape
// from healthy ones.
package fallback

import (
	"sort"

	"devhub/portal/internal/domain"
)

type Store struct {
	products []domain.Product
	homepage domain.HomepageContent
}

func NewStore() *Store {
	return &Store{
		products: products,
		homepage: homepage,
	}
}

// AllProducts returns every product sorted ascending by title. The returned
// slice and its nested lists are copies; callers can mutate freely.
func (s *Store) AllProducts() []domain.Product {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// ProductBySlug returns a copy of the product with the given slug, or nil
// when no product matches.
func (s *Store) ProductBySlug(slug string) *domain.Product {
	for _, p := range s.products {
		if p.Slug == slug {
			clone := cloneProduct(p)
			return &clone
		}
	}
	return nil
}

// Slugs returns the slug+title projection, sorted ascending by title.
func (s *Store) Slugs() []domain.ProductSlug {
	out := make([]domain.ProductSlug, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, domain.ProductSlug{Slug: p.Slug, Title: p.Title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// Homepage returns a copy of the homepage content.
func (s *Store) Homepage() domain.HomepageContent {
	hp := s.homepage
	hp.Diagrams = append([]domain.ArchitectureDiagram{}, hp.Diagrams...)
	if hp.ReleaseProcess != nil {
		rp := *hp.ReleaseProcess
		hp.ReleaseProcess = &rp
	}
	featured := make([]domain.Product, 0, len(hp.FeaturedProducts))
	for _, p := range hp.FeaturedProducts {
		featured = append(featured, cloneProduct(p))
	}
	hp.FeaturedProducts = featured
	return hp
}

func cloneProduct(p domain.Product) domain.Product {
	p.TechStack = cloneTechStack(p.TechStack)
	p.Diagrams = append([]domain.ArchitectureDiagram{}, p.Diagrams...)
	p.Repositories = append([]domain.Repository{}, p.Repositories...)
	p.Dashboards = append([]domain.Dashboard{}, p.Dashboards...)
	p.TeamMembers = append([]domain.TeamMember{}, p.TeamMembers...)
	p.Practices = append([]string{}, p.Practices...)
	p.TestStrategies = append([]string{}, p.TestStrategies...)
	p.Dependencies = cloneDependencies(p.Dependencies)
	p.HelpfulLinks = append([]domain.HelpfulLink{}, p.HelpfulLinks...)
	return p
}

func cloneTechStack(groups []domain.TechStackGroup) []domain.TechStackGroup {
	out := make([]domain.TechStackGroup, 0, len(groups))
	for _, g := range groups {
		g.Technologies = append([]string{}, g.Technologies...)
		out = append(out, g)
	}
	return out
}

func cloneDependencies(deps []domain.Dependency) []domain.Dependency {
	out := make([]domain.Dependency, 0, len(deps))
	for _, d := range deps {
		d.Contacts = append([]string{}, d.Contacts...)
		out = append(out, d)
	}
	return out
}
