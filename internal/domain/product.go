package domain

// Product represents a product in the catalog. Products are immutable once
// loaded; a catalog refresh replaces the whole list.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Artisan     string  `json:"artisan"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"in_stock"`
	Category    string  `json:"category"`
}

// ProductFilters holds the active catalog filter criteria. An empty category
// or search term disables that predicate; the price bounds always apply.
// minPrice <= maxPrice is the caller's responsibility.
type ProductFilters struct {
	Category   string  `json:"category"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	SearchTerm string  `json:"search_term"`
}

// FilterUpdate is a partial filter change; nil fields keep the current value.
type FilterUpdate struct {
	Category   *string  `json:"category"`
	MinPrice   *float64 `json:"min_price"`
	MaxPrice   *float64 `json:"max_price"`
	SearchTerm *string  `json:"search_term"`
}
