package domain

type TechStackGroup struct {
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
}

type ArchitectureDiagram struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Details     string `json:"details,omitempty"`
	DiagramURL  string `json:"diagram_url,omitempty"` // external diagram tool link
}

type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type TeamMember struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Dependency struct {
	Team         string   `json:"team"`
	Description  string   `json:"description"`
	Contacts     []string `json:"contacts"`
	SlackChannel string   `json:"slack_channel,omitempty"`
}

type HelpfulLink struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Product is the canonical entity served by the portal. Every list field is
// always a non-nil slice so rendering never has to branch on missing data.
type Product struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Slug            string                `json:"slug"` // unique lookup key
	Description     string                `json:"description"`
	FullDescription string                `json:"full_description"`
	Intro           string                `json:"intro,omitempty"` // HTML, converted from rich text
	Category        string                `json:"category"`
	IconURL         string                `json:"icon_url,omitempty"`
	Color           string                `json:"color"`
	VideoURL        string                `json:"video_url,omitempty"`
	AcademyURL      string                `json:"academy_url,omitempty"`
	TechStack       []TechStackGroup      `json:"tech_stack"`
	Diagrams        []ArchitectureDiagram `json:"diagrams"`
	Repositories    []Repository          `json:"repositories"`
	LocalSetup      string                `json:"local_setup"`
	CICDProcess     string                `json:"cicd_process"`
	CICDDiagramURL  string                `json:"cicd_diagram_url,omitempty"`
	GitStrategy     string                `json:"git_strategy"`
	Dashboards      []Dashboard           `json:"dashboards"`
	TeamMembers     []TeamMember          `json:"team_members"`
	TeamSize        int                   `json:"team_size"`
	Practices       []string              `json:"practices"`
	TestStrategies  []string              `json:"test_strategies"`
	SprintProcess   string                `json:"sprint_process"`
	Dependencies    []Dependency          `json:"dependencies"`
	HelpfulLinks    []HelpfulLink         `json:"helpful_links"`
}

// ProductSlug is the slug+title projection used to enumerate pages for
// static generation.
type ProductSlug struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
