package domain

type DashboardKind string

const (
	DashboardGrafana  DashboardKind = "grafana"
	DashboardDatadog  DashboardKind = "datadog"
	DashboardNewRelic DashboardKind = "newrelic"
	DashboardCustom   DashboardKind = "custom"
)

var DashboardKinds = []DashboardKind{
	DashboardGrafana,
	DashboardDatadog,
	DashboardNewRelic,
	DashboardCustom,
}

func (k DashboardKind) String() string {
	return string(k)
}

// Normalize maps arbitrary input to a known kind, defaulting to custom.
func (k DashboardKind) Normalize() DashboardKind {
	for _, known := range DashboardKinds {
		if k == known {
			return known
		}
	}
	return DashboardCustom
}

type Dashboard struct {
	Name        string        `json:"name"`
	URL         string        `json:"url"`
	Description string        `json:"description"`
	Kind        DashboardKind `json:"kind"`
}
