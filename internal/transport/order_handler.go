package transport

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"ecomarket/internal/cart"
	"ecomarket/internal/domain"
	"ecomarket/internal/form"
	"ecomarket/internal/middleware"
	"ecomarket/internal/orders"
	"ecomarket/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var errEmptyCart = errors.New("cart is empty")

var postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)

// CheckoutRequest is the checkout form payload. It is validated through the
// form rule engine rather than struct tags, so the API reports the same
// per-field messages the storefront forms show.
type CheckoutRequest struct {
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method"`
}

// UpdateStatusRequest overwrites an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// OrderHandler handles HTTP requests for checkout and order history.
type OrderHandler struct {
	orders *orders.History
	cart   *cart.Cart
	logger *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(history *orders.History, c *cart.Cart, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: history,
		cart:   c,
		logger: logger,
	}
}

// RegisterRoutes registers checkout and order routes.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/checkout", h.Checkout)
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/recent", h.RecentOrders)
		r.Get("/number/{number}", h.GetOrderByNumber)
		r.Get("/{id}", h.GetOrder)
		r.Patch("/{id}/status", h.UpdateStatus)
	})
}

// checkoutRules are the per-field rules for the checkout form.
func checkoutRules() validation.Rules {
	return validation.Rules{
		"email":       {Required: true, Email: true},
		"first_name":  {Required: true, MinLength: 2},
		"last_name":   {Required: true, MinLength: 2},
		"address":     {Required: true, MinLength: 5},
		"city":        {Required: true},
		"postal_code": {Required: true, Pattern: postalCodePattern, PatternMessage: "Invalid postal code"},
		"country":     {Required: true},
		"payment_method": {Required: true, Custom: func(value string) string {
			switch value {
			case "", "card", "paypal":
				return ""
			}
			return "Unsupported payment method"
		}},
	}
}

// Checkout validates the checkout form and, when valid, turns the current
// cart into an order: the cart lines are snapshotted into order items, the
// order is appended to the history and the cart is cleared. The cart must
// not be empty.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f := form.New(map[string]string{
		"email":          req.Email,
		"first_name":     req.FirstName,
		"last_name":      req.LastName,
		"address":        req.Address,
		"city":           req.City,
		"postal_code":    req.PostalCode,
		"country":        req.Country,
		"payment_method": req.PaymentMethod,
	})
	f.SetValidationRules(checkoutRules())

	var created domain.Order
	ok := f.SubmitForm(r.Context(), func(ctx context.Context, values map[string]string) error {
		items := h.cart.Items()
		if len(items) == 0 {
			return errEmptyCart
		}

		orderItems := make([]domain.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, domain.OrderItem{
				ID:       item.ID,
				Name:     item.Name,
				Price:    item.Price,
				Quantity: item.Quantity,
				Image:    item.Image,
			})
		}

		created = h.orders.AddOrder(orders.OrderData{
			Status:     domain.StatusPending,
			Total:      h.cart.TotalPrice(),
			TotalItems: h.cart.ItemCount(),
			Items:      orderItems,
			DeliveryAddress: domain.DeliveryAddress{
				Name:       values["first_name"] + " " + values["last_name"],
				Street:     values["address"],
				PostalCode: values["postal_code"],
				City:       values["city"],
			},
		})
		h.cart.Clear()
		return nil
	})

	if !ok {
		if fieldErrors := f.Errors(); len(fieldErrors) > 0 {
			details := map[string]interface{}{"field_errors": fieldErrors}
			middleware.RespondWithErrorDetails(w, http.StatusBadRequest, "validation failed", details)
			return
		}
		middleware.RespondWithError(w, http.StatusConflict, errEmptyCart.Error())
		return
	}

	h.logger.Info("Order placed",
		zap.String("order_id", created.ID),
		zap.String("order_number", created.Number),
		zap.Float64("total", created.Total),
		zap.Int("items", created.TotalItems),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, created)
}

// ListOrders returns the full history, most recent first.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"orders": h.orders.Orders(),
		"total":  h.orders.TotalOrders(),
	})
}

// RecentOrders returns the five most-recently-dated orders.
func (h *OrderHandler) RecentOrders(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"orders": h.orders.RecentOrders(),
	})
}

// GetOrder returns one order by identifier.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.orders.OrderByID(chi.URLParam(r, "id"))
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// GetOrderByNumber returns one order by display number.
func (h *OrderHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	order, ok := h.orders.OrderByNumber(chi.URLParam(r, "number"))
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// UpdateStatus overwrites an order's status. Any status may follow any
// other.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithValidationErrors(w, middleware.FormatValidationErrors(err))
		return
	}

	id := chi.URLParam(r, "id")
	if !h.orders.UpdateOrderStatus(id, domain.OrderStatus(req.Status)) {
		middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		return
	}

	order, _ := h.orders.OrderByID(id)
	middleware.RespondWithJSON(w, http.StatusOK, order)
}
