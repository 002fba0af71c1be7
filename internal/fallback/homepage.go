package fallback

import "devhub/portal/internal/domain"

// homepage is the built-in landing page content. FeaturedProducts is left
// empty so the portal shows every product when running on fallback data.
var homepage = domain.HomepageContent{
	HeroTitle:           "One place for every product we build",
	HeroSubtitle:        "Architecture, runbooks, dashboards and the people behind each system.",
	FeaturesTitle:       "Everything a new joiner needs",
	FeaturesSubtitle:    "Tech stacks, local setup, CI/CD and on-call knowledge, kept next to the code.",
	ProductsTitle:       "Our products",
	ProductsSubtitle:    "Browse every system on the platform.",
	ArchitectureTitle:   "How the platform fits together",
	ArchitectureDetails: "Products communicate over Kafka and internal APIs behind a shared gateway.",
	Diagrams: []domain.ArchitectureDiagram{
		{
			Title:       "Platform overview",
			Description: "The major systems and how traffic flows between them.",
			ImageURL:    "https://cdn.devhub.internal/diagrams/platform-overview.png",
		},
	},
	ReleaseProcess: &domain.ReleaseProcess{
		DiagramURL:      "https://cdn.devhub.internal/diagrams/release-train.png",
		Description:     "Daily release train with automated canary analysis.",
		HTMLDescription: "<p>Changes ride the <strong>daily release train</strong>: merge before noon, canary in the afternoon, full rollout by evening.</p>",
	},
	FeaturedProducts: []domain.Product{},
}
