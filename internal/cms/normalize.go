// Field normalization for raw delivery API entries.
//
// Entries reach us in two naming conventions at once: the CMS field UIDs are
// snake_case, while entries migrated from the legacy portal still carry
// camelCase keys. Every lookup below lists its source-key candidates in
// priority order, CMS UID first. Asset-like fields additionally vary in
// shape: a bare URL string, an object exposing a url property, or a nested
// asset reference. Normalization is total: missing or unexpected shapes
// degrade to zero values and empty slices, never to an error.
package cms

import (
	"devhub/portal/internal/domain"
	"devhub/portal/internal/richtext"

	log "github.com/sirupsen/logrus"
)

// NormalizeProduct converts a raw product entry into the canonical model.
func NormalizeProduct(raw Entry) domain.Product {
	e := field(raw)

	p := domain.Product{
		ID:              e.str("uid", "id"),
		Title:           e.str("title"),
		Slug:            e.str("slug"),
		Description:     e.str("description"),
		FullDescription: e.str("full_description", "fullDescription"),
		Intro:           normalizeIntro(e.raw("intro")),
		Category:        e.str("category"),
		IconURL:         e.asset("icon_url", "iconUrl", "icon"),
		Color:           e.str("color", "accent_color", "accentColor"),
		VideoURL:        e.str("video_url", "videoUrl"),
		AcademyURL:      e.str("academy_url", "academyUrl"),
		LocalSetup:      e.str("local_setup", "localSetup"),
		CICDProcess:     e.str("cicd_process", "cicdProcess"),
		CICDDiagramURL:  e.asset("cicd_diagram_url", "cicdDiagramUrl", "cicd_image", "cicdImage"),
		GitStrategy:     e.str("git_strategy", "gitStrategy"),
		TeamSize:        e.num("team_size", "teamSize"),
		SprintProcess:   e.str("sprint_process", "sprintProcess"),
		Practices:       e.strList("practices", "best_practices", "bestPractices"),
		TestStrategies:  e.strList("test_strategies", "testStrategies", "testing_tools", "testingTools"),
		TechStack:       normalizeTechStack(e.list("tech_stack", "techStack")),
		Diagrams:        normalizeDiagrams(e.list("architecture_diagrams", "architectureDiagrams", "diagrams")),
		Repositories:    normalizeRepositories(e.list("repositories", "repos")),
		Dashboards:      normalizeDashboards(e.list("observability_dashboards", "observabilityDashboards", "dashboards")),
		TeamMembers:     normalizeTeamMembers(e.list("team_members", "teamMembers")),
		Dependencies:    normalizeDependencies(e.list("dependencies")),
		HelpfulLinks:    normalizeHelpfulLinks(e.list("helpful_links", "helpfulLinks")),
	}

	if p.TeamSize == 0 {
		p.TeamSize = len(p.TeamMembers)
	}
	return p
}

// NormalizeHomepage converts the raw singleton homepage entry.
func NormalizeHomepage(raw Entry) domain.HomepageContent {
	e := field(raw)

	hp := domain.HomepageContent{
		HeroTitle:           e.str("hero_title", "heroTitle"),
		HeroSubtitle:        e.str("hero_subtitle", "heroSubtitle"),
		FeaturesTitle:       e.str("features_title", "featuresTitle"),
		FeaturesSubtitle:    e.str("features_subtitle", "featuresSubtitle"),
		ProductsTitle:       e.str("products_title", "productsTitle"),
		ProductsSubtitle:    e.str("products_subtitle", "productsSubtitle"),
		ArchitectureTitle:   e.str("architecture_title", "architectureTitle"),
		ArchitectureDetails: e.str("architecture_details", "architectureDetails"),
		Diagrams:            normalizeDiagrams(e.list("architecture_diagrams", "architectureDiagrams", "diagrams")),
		FeaturedProducts:    normalizeFeatured(e.list("featured_products", "featuredProducts", "products")),
	}

	if rp, ok := e.object("release_process", "releaseProcess"); ok {
		hp.ReleaseProcess = &domain.ReleaseProcess{
			DiagramURL:      rp.asset("diagram_url", "diagramUrl", "diagram"),
			Description:     rp.str("description"),
			HTMLDescription: normalizeIntro(rp.raw("html_description", "htmlDescription", "rich_description")),
		}
	}

	return hp
}

// normalizeIntro renders a rich-text field to HTML. Migrated entries may
// already hold an HTML string; those pass through untouched.
func normalizeIntro(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return richtext.ToHTML(v)
}

func normalizeTechStack(items []field) []domain.TechStackGroup {
	out := make([]domain.TechStackGroup, 0, len(items))
	for _, item := range items {
		out = append(out, domain.TechStackGroup{
			Category:     item.str("category", "name"),
			Technologies: item.strList("technologies", "items"),
		})
	}
	return out
}

func normalizeDiagrams(items []field) []domain.ArchitectureDiagram {
	out := make([]domain.ArchitectureDiagram, 0, len(items))
	for _, item := range items {
		out = append(out, domain.ArchitectureDiagram{
			Title:       item.str("title"),
			Description: item.str("description"),
			ImageURL:    item.asset("image_url", "imageUrl", "image"),
			Details:     item.str("details"),
			DiagramURL:  item.str("diagram_url", "diagramUrl"),
		})
	}
	return out
}

func normalizeRepositories(items []field) []domain.Repository {
	out := make([]domain.Repository, 0, len(items))
	for _, item := range items {
		out = append(out, domain.Repository{
			Name:        item.str("name"),
			Description: item.str("description"),
			URL:         item.str("url"),
		})
	}
	return out
}

func normalizeDashboards(items []field) []domain.Dashboard {
	out := make([]domain.Dashboard, 0, len(items))
	for _, item := range items {
		out = append(out, domain.Dashboard{
			Name:        item.str("name"),
			URL:         item.str("url"),
			Description: item.str("description"),
			Kind:        domain.DashboardKind(item.str("kind", "type")).Normalize(),
		})
	}
	return out
}

func normalizeTeamMembers(items []field) []domain.TeamMember {
	out := make([]domain.TeamMember, 0, len(items))
	for _, item := range items {
		out = append(out, domain.TeamMember{
			Name:      item.str("name"),
			Role:      item.str("role"),
			Email:     item.str("email"),
			AvatarURL: item.asset("avatar_url", "avatarUrl", "avatar"),
		})
	}
	return out
}

func normalizeDependencies(items []field) []domain.Dependency {
	out := make([]domain.Dependency, 0, len(items))
	for _, item := range items {
		out = append(out, domain.Dependency{
			Team:         item.str("team"),
			Description:  item.str("description"),
			Contacts:     item.strList("contacts"),
			SlackChannel: item.str("slack_channel", "slackChannel", "chat_channel"),
		})
	}
	return out
}

func normalizeHelpfulLinks(items []field) []domain.HelpfulLink {
	out := make([]domain.HelpfulLink, 0, len(items))
	for _, item := range items {
		out = append(out, domain.HelpfulLink{
			Title:       item.str("title"),
			URL:         item.str("url"),
			Description: item.str("description"),
		})
	}
	return out
}

func normalizeFeatured(items []field) []domain.Product {
	out := make([]domain.Product, 0, len(items))
	for _, item := range items {
		out = append(out, NormalizeProduct(Entry(item)))
	}
	return out
}

// field wraps a raw entry with candidate-key lookups.
type field map[string]any

// lookup returns the first present candidate key.
func (f field) lookup(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := f[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (f field) raw(keys ...string) any {
	v, _ := f.lookup(keys...)
	return v
}

func (f field) str(keys ...string) string {
	v, ok := f.lookup(keys...)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		log.Debugf("Expected string for %v, got %T", keys, v)
		return ""
	}
	return s
}

func (f field) num(keys ...string) int {
	v, ok := f.lookup(keys...)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	default:
		log.Debugf("Expected number for %v, got %T", keys, v)
		return 0
	}
}

// asset extracts a URL from an asset-like value: a bare string, an object
// with a url property, or a nested asset reference.
func (f field) asset(keys ...string) string {
	v, ok := f.lookup(keys...)
	if !ok {
		return ""
	}
	return assetURL(v)
}

func assetURL(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if u, ok := t["url"].(string); ok {
			return u
		}
		// One more level for wrapped asset references.
		for _, inner := range []string{"asset", "file", "image"} {
			if m, ok := t[inner].(map[string]any); ok {
				if u, ok := m["url"].(string); ok {
					return u
				}
			}
		}
	}
	log.Debugf("Unrecognized asset shape %T, dropping", v)
	return ""
}

// object returns a nested object field under the first present candidate.
func (f field) object(keys ...string) (field, bool) {
	v, ok := f.lookup(keys...)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return field(m), true
}

// list returns nested object elements; absent fields yield an empty slice.
func (f field) list(keys ...string) []field {
	v, ok := f.lookup(keys...)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		log.Debugf("Expected list for %v, got %T", keys, v)
		return nil
	}
	out := make([]field, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, field(m))
		}
	}
	return out
}

func (f field) strList(keys ...string) []string {
	v, ok := f.lookup(keys...)
	out := []string{}
	if !ok {
		return out
	}
	items, ok := v.([]any)
	if !ok {
		log.Debugf("Expected string list for %v, got %T", keys, v)
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
