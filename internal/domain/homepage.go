package domain

type ReleaseProcess struct {
	DiagramURL      string `json:"diagram_url,omitempty"`
	Description     string `json:"description"`
	HTMLDescription string `json:"html_description,omitempty"` // converted from rich text
}

// HomepageContent is the singleton entry backing the portal landing page.
// An empty FeaturedProducts list means "show every product".
type HomepageContent struct {
	HeroTitle           string                `json:"hero_title"`
	HeroSubtitle        string                `json:"hero_subtitle"`
	FeaturesTitle       string                `json:"features_title"`
	FeaturesSubtitle    string                `json:"features_subtitle"`
	ProductsTitle       string                `json:"products_title"`
	ProductsSubtitle    string                `json:"products_subtitle"`
	ArchitectureTitle   string                `json:"architecture_title"`
	ArchitectureDetails string                `json:"architecture_details"`
	Diagrams            []ArchitectureDiagram `json:"diagrams"`
	ReleaseProcess      *ReleaseProcess       `json:"release_process,omitempty"`
	FeaturedProducts    []Product             `json:"featured_products"`
}
