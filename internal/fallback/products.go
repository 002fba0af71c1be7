package fallback

import "devhub/portal/internal/domain"

// products is the built-in dataset. Slugs are unique; titles drive the
// deterministic ordering of every list response.
var products = []domain.Product{
	{
		ID:              "fb-checkout",
		Title:           "Checkout Platform",
		Slug:            "checkout-platform",
		Description:     "Cart, pricing and order placement for every storefront.",
		FullDescription: "The Checkout Platform owns the purchase funnel from cart creation to order placement. It prices carts, applies promotions, reserves inventory and hands completed orders to fulfilment.",
		Intro:           "<p>The <strong>Checkout Platform</strong> is the front door of every purchase.</p>",
		Category:        "commerce",
		IconURL:         "https://cdn.devhub.internal/icons/checkout.svg",
		Color:           "#f97316",
		VideoURL:        "https://video.devhub.internal/checkout-intro",
		AcademyURL:      "https://academy.devhub.internal/checkout",
		TechStack: []domain.TechStackGroup{
			{Category: "Backend", Technologies: []string{"Go", "PostgreSQL", "Redis"}},
			{Category: "Messaging", Technologies: []string{"Kafka"}},
		},
		Diagrams: []domain.ArchitectureDiagram{
			{
				Title:       "Purchase funnel",
				Description: "Cart, pricing and order services behind the checkout API.",
				ImageURL:    "https://cdn.devhub.internal/diagrams/checkout-funnel.png",
				Details:     "Order placement is an orchestrated saga across pricing, inventory and payment.",
				DiagramURL:  "https://diagrams.devhub.internal/checkout-funnel",
			},
		},
		Repositories: []domain.Repository{
			{Name: "checkout-api", Description: "Public checkout API", URL: "https://git.devhub.internal/commerce/checkout-api"},
			{Name: "pricing-engine", Description: "Cart pricing and promotions", URL: "https://git.devhub.internal/commerce/pricing-engine"},
		},
		LocalSetup:     "Run `make dev` to start the API with dockerized Postgres and Redis.",
		CICDProcess:    "Trunk based development. Every merge to main deploys to staging; production promotion is a one-click approval.",
		CICDDiagramURL: "https://cdn.devhub.internal/diagrams/checkout-cicd.png",
		GitStrategy:    "Trunk based with short-lived feature branches.",
		Dashboards: []domain.Dashboard{
			{Name: "Checkout SLOs", URL: "https://grafana.devhub.internal/d/checkout-slo", Description: "Latency and error budgets", Kind: domain.DashboardGrafana},
			{Name: "Order volume", URL: "https://app.datadoghq.com/dashboard/checkout-orders", Description: "Orders per minute by region", Kind: domain.DashboardDatadog},
		},
		TeamMembers: []domain.TeamMember{
			{Name: "Mila Sørensen", Role: "Tech Lead", Email: "mila.sorensen@devhub.internal", AvatarURL: "https://cdn.devhub.internal/avatars/mila.png"},
			{Name: "Jonas Weber", Role: "Backend Engineer", Email: "jonas.weber@devhub.internal"},
			{Name: "Priya Nair", Role: "Product Manager", Email: "priya.nair@devhub.internal"},
		},
		TeamSize:       6,
		Practices:      []string{"Code review on every change", "Feature flags for risky rollouts", "Blameless postmortems"},
		TestStrategies: []string{"Unit tests", "Contract tests against payments", "Synthetic checkout probes"},
		SprintProcess:  "Two week sprints with a mid-sprint triage.",
		Dependencies: []domain.Dependency{
			{Team: "Payments", Description: "Charge authorization and capture", Contacts: []string{"payments-oncall@devhub.internal"}, SlackChannel: "#team-payments"},
			{Team: "Inventory", Description: "Stock reservation", Contacts: []string{"inventory@devhub.internal"}, SlackChannel: "#team-inventory"},
		},
		HelpfulLinks: []domain.HelpfulLink{
			{Title: "Checkout runbook", URL: "https://wiki.devhub.internal/checkout/runbook", Description: "On-call procedures"},
			{Title: "API reference", URL: "https://docs.devhub.internal/checkout"},
		},
	},
	{
		ID:              "fb-identity",
		Title:           "Identity Service",
		Slug:            "identity-service",
		Description:     "Authentication, sessions and access tokens for all products.",
		FullDescription: "The Identity Service authenticates customers and staff, issues and validates access tokens, and manages sessions, MFA and account recovery across the whole platform.",
		Intro:           "<p>Every login flows through the <strong>Identity Service</strong>.</p>",
		Category:        "platform",
		IconURL:         "https://cdn.devhub.internal/icons/identity.svg",
		Color:           "#2563eb",
		AcademyURL:      "https://academy.devhub.internal/identity",
		TechStack: []domain.TechStackGroup{
			{Category: "Backend", Technologies: []string{"Go", "PostgreSQL"}},
			{Category: "Security", Technologies: []string{"OAuth2", "WebAuthn"}},
		},
		Diagrams: []domain.ArchitectureDiagram{
			{
				Title:       "Token flow",
				Description: "Issuance and validation path for access tokens.",
				ImageURL:    "https://cdn.devhub.internal/diagrams/identity-tokens.png",
			},
		},
		Repositories: []domain.Repository{
			{Name: "identity", Description: "Core identity service", URL: "https://git.devhub.internal/platform/identity"},
		},
		LocalSetup:     "`docker compose up` starts the service with a seeded user store.",
		CICDProcess:    "Merges deploy to staging automatically; production deploys happen on a daily train.",
		CICDDiagramURL: "https://cdn.devhub.internal/diagrams/identity-cicd.png",
		GitStrategy:    "Trunk based.",
		Dashboards: []domain.Dashboard{
			{Name: "Auth success rate", URL: "https://grafana.devhub.internal/d/identity-auth", Description: "Login and token issuance health", Kind: domain.DashboardGrafana},
		},
		TeamMembers: []domain.TeamMember{
			{Name: "Aisha Khan", Role: "Tech Lead", Email: "aisha.khan@devhub.internal", AvatarURL: "https://cdn.devhub.internal/avatars/aisha.png"},
			{Name: "Tomás Rivera", Role: "Security Engineer", Email: "tomas.rivera@devhub.internal"},
		},
		TeamSize:       5,
		Practices:      []string{"Threat modelling for every new flow", "Mandatory security review"},
		TestStrategies: []string{"Unit tests", "Fuzzing on token parsers", "Staging soak tests"},
		SprintProcess:  "Kanban with weekly planning.",
		Dependencies: []domain.Dependency{
			{Team: "Notifications", Description: "MFA and recovery messages", Contacts: []string{"notify@devhub.internal"}, SlackChannel: "#team-notifications"},
		},
		HelpfulLinks: []domain.HelpfulLink{
			{Title: "Integration guide", URL: "https://docs.devhub.internal/identity/integrate", Description: "How to add auth to your service"},
		},
	},
	{
		ID:              "fb-messaging",
		Title:           "Messaging Gateway",
		Slug:            "messaging-gateway",
		Description:     "Transactional email, SMS and push delivery with templates.",
		FullDescription: "The Messaging Gateway accepts delivery requests from every product, renders templates, picks the right channel and provider, and tracks delivery receipts end to end.",
		Category:        "platform",
		IconURL:         "https://cdn.devhub.internal/icons/messaging.svg",
		Color:           "#16a34a",
		TechStack: []domain.TechStackGroup{
			{Category: "Backend", Technologies: []string{"Go", "Kafka", "Redis"}},
		},
		Diagrams: []domain.ArchitectureDiagram{
			{
				Title:       "Delivery pipeline",
				Description: "From API request to provider receipt.",
				ImageURL:    "https://cdn.devhub.internal/diagrams/messaging-pipeline.png",
				Details:     "Per-channel workers consume a shared delivery topic.",
			},
		},
		Repositories: []domain.Repository{
			{Name: "messaging-gateway", Description: "Ingest API and routing", URL: "https://git.devhub.internal/platform/messaging-gateway"},
			{Name: "template-studio", Description: "Template rendering and preview", URL: "https://git.devhub.internal/platform/template-studio"},
		},
		LocalSetup:    "`make dev` starts the gateway with an in-memory provider.",
		CICDProcess:   "Continuous deployment with canary analysis on delivery error rate.",
		GitStrategy:   "Trunk based with release tags.",
		Dashboards: []domain.Dashboard{
			{Name: "Delivery health", URL: "https://one.newrelic.com/dashboards/messaging", Description: "Provider latency and bounce rates", Kind: domain.DashboardNewRelic},
			{Name: "Queue depth", URL: "https://grafana.devhub.internal/d/messaging-queues", Description: "Backlog per channel", Kind: domain.DashboardGrafana},
		},
		TeamMembers: []domain.TeamMember{
			{Name: "Lena Fischer", Role: "Engineering Manager", Email: "lena.fischer@devhub.internal"},
			{Name: "Marco Bellini", Role: "Backend Engineer", Email: "marco.bellini@devhub.internal", AvatarURL: "https://cdn.devhub.internal/avatars/marco.png"},
		},
		TeamSize:       4,
		Practices:      []string{"Providers behind a common interface", "Load test before provider changes"},
		TestStrategies: []string{"Unit tests", "Provider sandbox integration tests"},
		SprintProcess:  "Two week sprints.",
		Dependencies: []domain.Dependency{
			{Team: "Identity", Description: "Recipient contact preferences", Contacts: []string{"identity@devhub.internal"}, SlackChannel: "#team-identity"},
		},
		HelpfulLinks: []domain.HelpfulLink{
			{Title: "Template catalogue", URL: "https://wiki.devhub.internal/messaging/templates"},
		},
	},
	{
		ID:              "fb-search",
		Title:           "Search Platform",
		Slug:            "search-platform",
		Description:     "Product and content search with ranking and suggestions.",
		FullDescription: "The Search Platform indexes products and editorial content, serves typed-ahead suggestions, and owns the relevance ranking pipeline including experiment support.",
		Intro:           "<p>Find anything with the <em>Search Platform</em>.</p>",
		Category:        "discovery",
		IconURL:         "https://cdn.devhub.internal/icons/search.svg",
		Color:           "#9333ea",
		VideoURL:        "https://video.devhub.internal/search-overview",
		TechStack: []domain.TechStackGroup{
			{Category: "Backend", Technologies: []string{"Go", "OpenSearch"}},
			{Category: "Data", Technologies: []string{"Spark", "Airflow"}},
		},
		Diagrams: []domain.ArchitectureDiagram{
			{
				Title:       "Indexing flow",
				Description: "Change capture to searchable index.",
				ImageURL:    "https://cdn.devhub.internal/diagrams/search-indexing.png",
			},
			{
				Title:       "Query path",
				Description: "Request fan-out, ranking and suggestion merge.",
				ImageURL:    "https://cdn.devhub.internal/diagrams/search-query.png",
			},
		},
		Repositories: []domain.Repository{
			{Name: "search-api", Description: "Query serving", URL: "https://git.devhub.internal/discovery/search-api"},
			{Name: "search-indexer", Description: "Indexing pipeline", URL: "https://git.devhub.internal/discovery/search-indexer"},
		},
		LocalSetup:    "`make dev` starts the API against a single-node OpenSearch container.",
		CICDProcess:   "Merges deploy to staging; production rollout is gradual over three regions.",
		GitStrategy:   "Trunk based.",
		Dashboards: []domain.Dashboard{
			{Name: "Query latency", URL: "https://grafana.devhub.internal/d/search-latency", Description: "p50/p99 per endpoint", Kind: domain.DashboardGrafana},
			{Name: "Relevance board", URL: "https://metrics.devhub.internal/search/relevance", Description: "Offline relevance metrics", Kind: domain.DashboardCustom},
		},
		TeamMembers: []domain.TeamMember{
			{Name: "Yuki Tanaka", Role: "Tech Lead", Email: "yuki.tanaka@devhub.internal", AvatarURL: "https://cdn.devhub.internal/avatars/yuki.png"},
			{Name: "Sofia Almeida", Role: "Data Engineer", Email: "sofia.almeida@devhub.internal"},
			{Name: "Ben Carter", Role: "Backend Engineer", Email: "ben.carter@devhub.internal"},
		},
		TeamSize:       7,
		Practices:      []string{"Interleaving experiments for ranking changes", "Index schema reviews"},
		TestStrategies: []string{"Unit tests", "Golden-query regression suite", "Load tests before peak season"},
		SprintProcess:  "Two week sprints with a ranking review each cycle.",
		Dependencies: []domain.Dependency{
			{Team: "Catalog", Description: "Product change feed", Contacts: []string{"catalog@devhub.internal"}, SlackChannel: "#team-catalog"},
		},
		HelpfulLinks: []domain.HelpfulLink{
			{Title: "Ranking handbook", URL: "https://wiki.devhub.internal/search/ranking", Description: "How relevance is tuned"},
			{Title: "Query DSL docs", URL: "https://docs.devhub.internal/search"},
		},
	},
}
