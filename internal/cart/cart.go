// Package cart implements the shopping cart state container. The cart owns
// its line items exclusively; callers only see copies. Derived values
// (ItemCount, TotalPrice, IsEmpty) are recomputed on every read from the
// current state, never cached.
package cart

import (
	"fmt"
	"sync"

	"ecomarket/internal/domain"
	"ecomarket/internal/notify"
)

// Cart maintains the list of line items. At most one line exists per product
// id; adding an existing product merges quantities.
type Cart struct {
	mu       sync.Mutex
	items    []domain.CartItem
	notifier notify.Notifier
}

// New creates an empty cart. A nil notifier is replaced with a no-op.
func New(notifier notify.Notifier) *Cart {
	return &Cart{notifier: notify.OrNop(notifier)}
}

// AddItem adds quantity units of the product. When a line for the product
// already exists its quantity is incremented; otherwise a new line is
// appended with a snapshot of the product's name, price, image and artisan.
// A quantity below 1 is treated as 1.
func (c *Cart) AddItem(p domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity += quantity
			total := c.items[i].Quantity
			c.mu.Unlock()

			c.notifier.Show(notify.Toast{
				Type:     notify.TypeSuccess,
				Title:    "Quantity updated",
				Message:  fmt.Sprintf("%s - Quantity: %d", p.Name, total),
				Duration: 3000,
			})
			return
		}
	}
	c.items = append(c.items, domain.CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: quantity,
		Artisan:  p.Artisan,
	})
	c.mu.Unlock()

	c.notifier.Show(notify.Toast{
		Type:     notify.TypeSuccess,
		Title:    "Product added to cart",
		Message:  fmt.Sprintf("%s has been added to your cart", p.Name),
		Duration: 3000,
		Actions:  []notify.Action{{Label: "View cart", Target: "/cart"}},
	})
}

// RemoveItem deletes the line with the given product id. No-op when absent.
func (c *Cart) RemoveItem(id int) {
	c.mu.Lock()
	removed, ok := c.removeLocked(id)
	c.mu.Unlock()
	if !ok {
		return
	}

	c.notifier.Show(notify.Toast{
		Type:     notify.TypeInfo,
		Title:    "Product removed",
		Message:  fmt.Sprintf("%s has been removed from your cart", removed.Name),
		Duration: 3000,
	})
}

func (c *Cart) removeLocked(id int) (domain.CartItem, bool) {
	for i := range c.items {
		if c.items[i].ID == id {
			removed := c.items[i]
			c.items = append(c.items[:i], c.items[i+1:]...)
			return removed, true
		}
	}
	return domain.CartItem{}, false
}

// UpdateQuantity sets the line's quantity to quantity, replacing the prior
// value. A quantity of zero or below removes the line entirely. No-op when
// the product is not in the cart.
func (c *Cart) UpdateQuantity(id, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}

	c.mu.Lock()
	var (
		name  string
		prev  int
		found bool
	)
	for i := range c.items {
		if c.items[i].ID == id {
			name = c.items[i].Name
			prev = c.items[i].Quantity
			c.items[i].Quantity = quantity
			found = true
			break
		}
	}
	c.mu.Unlock()
	if !found {
		return
	}

	toast := notify.Toast{
		Type:     notify.TypeInfo,
		Title:    "Quantity decreased",
		Message:  fmt.Sprintf("%s - New quantity: %d", name, quantity),
		Duration: 2000,
	}
	if quantity > prev {
		toast.Type = notify.TypeSuccess
		toast.Title = "Quantity increased"
	}
	c.notifier.Show(toast)
}

// Clear empties the cart. No-op (and no toast) when already empty.
func (c *Cart) Clear() {
	c.mu.Lock()
	empty := len(c.items) == 0
	c.items = nil
	c.mu.Unlock()
	if empty {
		return
	}

	c.notifier.Show(notify.Toast{
		Type:     notify.TypeWarning,
		Title:    "Cart cleared",
		Message:  "All products have been removed from your cart",
		Duration: 3000,
	})
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount returns the sum of all line quantities, not the number of
// distinct lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// TotalPrice returns the sum of price * quantity over all lines, using each
// line's snapshotted price.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}
