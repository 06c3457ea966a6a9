package transport

import (
	"net/http"

	"ecomarket/internal/catalog"
	"ecomarket/internal/domain"
	"ecomarket/internal/localstore"
	"ecomarket/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductListResponse carries the filtered view plus the filter state that
// produced it.
type ProductListResponse struct {
	Products []domain.Product      `json:"products"`
	Filters  domain.ProductFilters `json:"filters"`
	Loading  bool                  `json:"loading"`
	Error    string                `json:"error,omitempty"`
}

// FavoritesResponse lists the favorited product ids.
type FavoritesResponse struct {
	ProductIDs []string `json:"product_ids"`
}

// CatalogHandler handles HTTP requests for the product catalog and the
// favorites echo store.
type CatalogHandler struct {
	catalog   *catalog.Catalog
	favorites *localstore.Store
	logger    *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog, favorites *localstore.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog:   cat,
		favorites: favorites,
		logger:    logger,
	}
}

// RegisterRoutes registers catalog and favorites routes.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/refresh", h.RefreshCatalog)
		r.Get("/categories", h.ListCategories)
		r.Put("/filters", h.UpdateFilters)
		r.Delete("/filters", h.ResetFilters)
		r.Get("/{id}", h.GetProduct)
	})
	r.Route("/api/favorites", func(r chi.Router) {
		r.Get("/", h.ListFavorites)
		r.Put("/{id}", h.AddFavorite)
		r.Delete("/{id}", h.RemoveFavorite)
	})
}

// ListProducts returns the filtered product view.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: h.catalog.FilteredProducts(),
		Filters:  h.catalog.Filters(),
		Loading:  h.catalog.Loading(),
		Error:    h.catalog.Err(),
	})
}

// RefreshCatalog reloads the catalog from the baseline and remote sources.
func (h *CatalogHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	h.catalog.FetchProducts(r.Context())

	if msg := h.catalog.Err(); msg != "" {
		middleware.RespondWithError(w, http.StatusBadGateway, msg)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: h.catalog.FilteredProducts(),
		Filters:  h.catalog.Filters(),
	})
}

// GetProduct returns one product by id.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, ok := h.catalog.ProductByID(id)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// ListCategories returns the distinct categories of the full catalog.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string][]string{
		"categories": h.catalog.Categories(),
	})
}

// UpdateFilters shallow-merges a partial filter change.
func (h *CatalogHandler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var update domain.FilterUpdate
	if err := middleware.DecodeAndValidate(r, &update); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.catalog.UpdateFilters(update)
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Filters())
}

// ResetFilters restores the default filter state.
func (h *CatalogHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	h.catalog.ResetFilters()
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Filters())
}

// ListFavorites returns the favorited product ids.
func (h *CatalogHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, FavoritesResponse{
		ProductIDs: h.favorites.Keys(),
	})
}

// AddFavorite marks a product as favorite. The product must exist in the
// catalog.
func (h *CatalogHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, ok := h.catalog.ProductByID(id); !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	if err := h.favorites.Set(id, "1"); err != nil {
		h.logger.Error("Failed to persist favorite", zap.Error(err), zap.String("product_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite unmarks a product.
func (h *CatalogHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.favorites.Delete(id); err != nil {
		h.logger.Error("Failed to remove favorite", zap.Error(err), zap.String("product_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to remove favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
