package transport

import (
	"net/http"
	"strconv"

	"ecomarket/internal/cart"
	"ecomarket/internal/catalog"
	"ecomarket/internal/domain"
	"ecomarket/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddCartItemRequest adds a catalog product to the cart.
type AddCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateQuantityRequest replaces a line's quantity. Zero or below removes
// the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartResponse is the cart state with its derived aggregates.
type CartResponse struct {
	Items      []domain.CartItem `json:"items"`
	ItemCount  int               `json:"item_count"`
	TotalPrice float64           `json:"total_price"`
	IsEmpty    bool              `json:"is_empty"`
}

// CartHandler handles HTTP requests for cart operations.
type CartHandler struct {
	cart    *cart.Cart
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(c *cart.Cart, cat *catalog.Catalog, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cart:    c,
		catalog: cat,
		logger:  logger,
	}
}

// RegisterRoutes registers all cart routes.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{id}", h.UpdateQuantity)
		r.Delete("/items/{id}", h.RemoveItem)
	})
}

// GetCart returns the cart and its derived aggregates.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.cartResponse())
}

// AddItem adds a product to the cart, merging quantities when the product is
// already present.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithValidationErrors(w, middleware.FormatValidationErrors(err))
		return
	}

	product, ok := h.catalog.ProductByID(strconv.Itoa(req.ProductID))
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	h.cart.AddItem(product, quantity)

	middleware.RespondWithJSON(w, http.StatusOK, h.cartResponse())
}

// UpdateQuantity replaces a line's quantity; zero or below removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithValidationErrors(w, middleware.FormatValidationErrors(err))
		return
	}

	h.cart.UpdateQuantity(id, *req.Quantity)
	middleware.RespondWithJSON(w, http.StatusOK, h.cartResponse())
}

// RemoveItem deletes a cart line.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	h.cart.RemoveItem(id)
	middleware.RespondWithJSON(w, http.StatusOK, h.cartResponse())
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	middleware.RespondWithJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) cartResponse() CartResponse {
	return CartResponse{
		Items:      h.cart.Items(),
		ItemCount:  h.cart.ItemCount(),
		TotalPrice: h.cart.TotalPrice(),
		IsEmpty:    h.cart.IsEmpty(),
	}
}
