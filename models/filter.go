package models

// AdvancedFilters is the multi-field filter panel state. Numeric bounds
// arrive as raw text; a bound that fails to parse is treated as unset.
type AdvancedFilters struct {
	MinPrice      string   `json:"minPrice"`
	MaxPrice      string   `json:"maxPrice"`
	Types         []string `json:"types"`
	MinSize       string   `json:"minSize"`
	MaxSize       string   `json:"maxSize"`
	Neighborhoods []string `json:"neighborhoods"`
	Statuses      []string `json:"statuses"`
}

// FilterState is the complete listing search state: the quick-filter tag
// ("All" is the wildcard), the free-text query, and the advanced panel.
// It is transient UI state, recreated per request and never persisted.
type FilterState struct {
	QuickFilter string          `json:"quickFilter"`
	Search      string          `json:"search"`
	Advanced    AdvancedFilters `json:"advanced"`
}
