// Package catalog implements the product catalog container: the merged
// baseline + remote product list, the active filter criteria and the derived
// filtered view. Remote unavailability is non-fatal; the catalog degrades to
// the baseline list.
package catalog

import (
	"context"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"

	"ecomarket/internal/domain"

	"go.uber.org/zap"
)

// ErrLoadingProducts is the user-visible message set on a total pipeline
// failure (as opposed to mere remote unavailability, which is swallowed).
const ErrLoadingProducts = "failed to load products"

// defaultFilters are the filter values after a reset.
func defaultFilters() domain.ProductFilters {
	return domain.ProductFilters{
		Category:   "",
		MinPrice:   0,
		MaxPrice:   1000,
		SearchTerm: "",
	}
}

// Rand is the randomness the remote transformation consumes (stock flags and
// artisan attribution). *rand.Rand satisfies it; tests pin a seeded source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// remoteProduct is the remote endpoint's record shape.
type remoteProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      struct {
		Rate float64 `json:"rate"`
	} `json:"rating"`
}

// categoryMap remaps remote category labels onto the storefront's own.
// Unmapped categories land in the catch-all.
var categoryMap = map[string]string{
	"men's clothing":   "Vêtements",
	"women's clothing": "Vêtements",
	"jewelery":         "Bijoux",
	"electronics":      "Électronique",
}

const fallbackCategory = "Divers"

// artisanNames are the candidate artisan attributions per remapped category.
var artisanNames = map[string][]string{
	"Vêtements":    {"Atelier Couture Bio", "Mode Éthique", "Textile Vert"},
	"Bijoux":       {"Créations Artisanales", "Bijoux Naturels", "Orfèvre Éco"},
	"Électronique": {"Tech Responsable", "Éco-Innovation", "Green Tech"},
	"Divers":       {"Artisan Local", "Créateur Responsable", "Éco-Artisan"},
}

// Catalog is the product catalog container.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
	filters  domain.ProductFilters
	loading  bool
	errMsg   string

	fetcher   Fetcher
	remoteURL string
	rng       Rand
	rngMu     sync.Mutex
	logger    *zap.Logger
}

// New creates a catalog that pulls remote products from remoteURL through
// fetcher. rng drives the probabilistic stock flags; pass nil for a
// time-seeded source.
func New(fetcher Fetcher, remoteURL string, rng Rand, logger *zap.Logger) *Catalog {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Catalog{
		filters:   defaultFilters(),
		fetcher:   fetcher,
		remoteURL: remoteURL,
		rng:       rng,
		logger:    logger,
	}
}

// FetchProducts loads the catalog: the fixed baseline list first, then
// whatever the remote source returned, appended without deduplication
// (identifier ranges are disjoint). Remote failure is logged and swallowed.
// Only a failure of the pipeline itself surfaces as the catalog error, and
// then the previous product list is left untouched. Concurrent calls are not
// cancelled; the last write wins, which is acceptable for a catalog refresh.
func (c *Catalog) FetchProducts(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	if err := ctx.Err(); err != nil {
		c.logger.Error("Catalog load failed", zap.Error(err))
		c.mu.Lock()
		c.errMsg = ErrLoadingProducts
		c.mu.Unlock()
		return
	}

	var remote []domain.Product
	var raw []remoteProduct
	if err := c.fetcher.Fetch(ctx, c.remoteURL, &raw); err != nil {
		c.logger.Warn("Remote catalog unavailable, using local data only", zap.Error(err))
	} else {
		remote = make([]domain.Product, 0, len(raw))
		for _, rp := range raw {
			remote = append(remote, c.transform(rp))
		}
	}

	merged := baselineProducts()
	merged = append(merged, remote...)

	c.mu.Lock()
	c.products = merged
	c.mu.Unlock()

	c.logger.Info("Catalog loaded",
		zap.Int("baseline", len(merged)-len(remote)),
		zap.Int("remote", len(remote)),
	)
}

// transform maps a remote record onto a Product: category remapped through
// the fixed table, artisan drawn from the category's candidate list, and the
// stock flag assigned probabilistically (about 90% in stock) since the remote
// source carries no stock signal.
func (c *Catalog) transform(rp remoteProduct) domain.Product {
	category := categoryMap[rp.Category]
	if category == "" {
		category = fallbackCategory
	}

	rating := rp.Rating.Rate
	if rating == 0 {
		rating = 4.0
	}

	names := artisanNames[category]
	if len(names) == 0 {
		names = artisanNames[fallbackCategory]
	}

	c.rngMu.Lock()
	inStock := c.rng.Float64() > 0.1
	artisan := names[c.rng.Intn(len(names))]
	c.rngMu.Unlock()

	return domain.Product{
		ID:          rp.ID,
		Name:        rp.Title,
		Description: rp.Description,
		Price:       rp.Price,
		Image:       rp.Image,
		Category:    category,
		InStock:     inStock,
		Rating:      rating,
		Artisan:     artisan,
	}
}

// UpdateFilters shallow-merges the partial update into the current filters.
func (c *Catalog) UpdateFilters(update domain.FilterUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if update.Category != nil {
		c.filters.Category = *update.Category
	}
	if update.MinPrice != nil {
		c.filters.MinPrice = *update.MinPrice
	}
	if update.MaxPrice != nil {
		c.filters.MaxPrice = *update.MaxPrice
	}
	if update.SearchTerm != nil {
		c.filters.SearchTerm = *update.SearchTerm
	}
}

// ResetFilters restores all filter fields to their defaults.
func (c *Catalog) ResetFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = defaultFilters()
}

// Filters returns the current filter state.
func (c *Catalog) Filters() domain.ProductFilters {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filters
}

// ProductByID looks up a product by identifier. The string form is coerced
// to the numeric id, mirroring route parameters arriving as text.
func (c *Catalog) ProductByID(id string) (domain.Product, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return domain.Product{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == n {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Products returns a copy of the full, unfiltered product list.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// FilteredProducts applies the active filters to the product list: category
// equality (case-insensitive, only when set), then the inclusive price
// bounds, then a case-insensitive substring search over name and
// description (only when set). The predicates are independent and compose by
// AND, so applying them is idempotent.
func (c *Catalog) FilteredProducts() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	filtered := make([]domain.Product, 0, len(c.products))
	category := strings.ToLower(c.filters.Category)
	term := strings.ToLower(c.filters.SearchTerm)

	for _, p := range c.products {
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if p.Price < c.filters.MinPrice || p.Price > c.filters.MaxPrice {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Categories returns the distinct category labels of the full (unfiltered)
// product list, alphabetically sorted.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{}, len(c.products))
	cats := make([]string, 0, len(c.products))
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cats = append(cats, p.Category)
	}
	sort.Strings(cats)
	return cats
}

// Loading reports whether a fetch is in flight.
func (c *Catalog) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the user-visible catalog error, empty when healthy.
func (c *Catalog) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMsg
}
