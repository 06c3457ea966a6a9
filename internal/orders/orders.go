// Package orders implements the order history container: an append-only,
// most-recent-first log of placed orders. Ids and display numbers are
// generated here; only an order's status may change after creation.
package orders

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"ecomarket/internal/domain"

	"github.com/google/uuid"
)

// numberPrefix is the display-number prefix: ECO-<year>-<seq3>.
const numberPrefix = "ECO"

// OrderData is the caller-supplied part of a new order. Items and the
// delivery address are deep-copied on creation so later cart mutations
// cannot retroactively alter the historical record.
type OrderData struct {
	Status          domain.OrderStatus
	Total           float64
	TotalItems      int
	Items           []domain.OrderItem
	DeliveryAddress domain.DeliveryAddress
}

// History is the order history container.
type History struct {
	mu     sync.Mutex
	orders []domain.Order
	now    func() time.Time
}

// New creates an empty order history.
func New() *History {
	return &History{now: time.Now}
}

// NewWithClock creates a history with an injected clock, for tests that need
// deterministic dates.
func NewWithClock(now func() time.Time) *History {
	return &History{now: now}
}

// AddOrder synthesizes an id, a session-scoped sequential display number and
// a creation date, prepends the order and returns the created record. The id
// combines the creation timestamp with a random suffix; collisions are
// treated as negligible, not impossible.
func (h *History) AddOrder(data OrderData) domain.Order {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	order := domain.Order{
		ID:              generateID(now),
		Number:          h.generateNumberLocked(now),
		Date:            now,
		Status:          data.Status,
		Total:           data.Total,
		TotalItems:      data.TotalItems,
		Items:           copyItems(data.Items),
		DeliveryAddress: data.DeliveryAddress,
	}

	h.orders = append([]domain.Order{order}, h.orders...)
	return h.cloneLocked(order)
}

// UpdateOrderStatus overwrites the order's status in place. Any status may
// follow any other; no-op when the id is unknown.
func (h *History) UpdateOrderStatus(id string, status domain.OrderStatus) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.orders {
		if h.orders[i].ID == id {
			h.orders[i].Status = status
			return true
		}
	}
	return false
}

// OrderByID returns the order with the given identifier.
func (h *History) OrderByID(id string) (domain.Order, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.orders {
		if h.orders[i].ID == id {
			return h.cloneLocked(h.orders[i]), true
		}
	}
	return domain.Order{}, false
}

// OrderByNumber returns the order with the given display number.
func (h *History) OrderByNumber(number string) (domain.Order, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.orders {
		if h.orders[i].Number == number {
			return h.cloneLocked(h.orders[i]), true
		}
	}
	return domain.Order{}, false
}

// Orders returns a copy of the full history, most recent first.
func (h *History) Orders() []domain.Order {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]domain.Order, 0, len(h.orders))
	for i := range h.orders {
		out = append(out, h.cloneLocked(h.orders[i]))
	}
	return out
}

// RecentOrders returns the five most-recently-dated orders, descending by
// date. The sort runs over a copy; the underlying list keeps its insertion
// order.
func (h *History) RecentOrders() []domain.Order {
	recent := h.Orders()
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	return recent
}

// OrdersByStatus returns every order with exactly the given status.
func (h *History) OrdersByStatus(status domain.OrderStatus) []domain.Order {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]domain.Order, 0)
	for i := range h.orders {
		if h.orders[i].Status == status {
			out = append(out, h.cloneLocked(h.orders[i]))
		}
	}
	return out
}

// TotalOrders returns the number of orders placed this session.
func (h *History) TotalOrders() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.orders)
}

// cloneLocked deep-copies an order so callers cannot reach into the log.
func (h *History) cloneLocked(o domain.Order) domain.Order {
	o.Items = copyItems(o.Items)
	return o
}

func copyItems(items []domain.OrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	copy(out, items)
	return out
}

// generateID builds an opaque identifier from the creation timestamp and a
// random suffix.
func generateID(now time.Time) string {
	suffix := uuid.New().String()[:8]
	return strconv.FormatInt(now.UnixMilli(), 10) + suffix
}

// generateNumberLocked formats the next session-scoped display number:
// ECO-<year>-<seq3>, seq = current order count + 1.
func (h *History) generateNumberLocked(now time.Time) string {
	return fmt.Sprintf("%s-%d-%03d", numberPrefix, now.Year(), len(h.orders)+1)
}
