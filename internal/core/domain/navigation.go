package domain

// NavigationItem is one entry in a role's dashboard menu. Items are a pure
// projection of Role: they carry no state of their own and are recomputed on
// every lookup.
type NavigationItem struct {
	Label   string `json:"label"`
	Path    string `json:"path"`
	Icon    string `json:"icon"`
	Section string `json:"section,omitempty"`
	Badge   string `json:"badge,omitempty"`
}
