package orders

import (
	"time"

	"ecomarket/internal/domain"
)

// SeedSampleOrders populates an empty history with three demo orders spaced
// five days apart, so the order pages have content on a fresh session. No-op
// when any order already exists.
func (h *History) SeedSampleOrders() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.orders) > 0 {
		return
	}

	address := domain.DeliveryAddress{
		Name:       "Jean Dupont",
		Street:     "123 rue de la Paix",
		PostalCode: "75001",
		City:       "Paris",
	}

	samples := []OrderData{
		{
			Status:     domain.StatusDelivered,
			Total:      45.90,
			TotalItems: 3,
			Items: []domain.OrderItem{
				{ID: 1, Name: "Sac en toile de jute bio", Price: 15.90, Quantity: 1, Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=100&h=100&fit=crop"},
				{ID: 2, Name: "Savon artisanal à l'huile d'olive", Price: 8.50, Quantity: 2, Image: "https://images.unsplash.com/photo-1544207240-1b6ee5e12b51?w=100&h=100&fit=crop"},
				{ID: 3, Name: "Gourde en inox 500ml", Price: 12.50, Quantity: 1, Image: "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=100&h=100&fit=crop"},
			},
			DeliveryAddress: address,
		},
		{
			Status:     domain.StatusShipped,
			Total:      28.90,
			TotalItems: 2,
			Items: []domain.OrderItem{
				{ID: 4, Name: "Brosse à dents en bambou", Price: 4.90, Quantity: 2, Image: "https://images.unsplash.com/photo-1607613009820-a29f7bb81c04?w=100&h=100&fit=crop"},
				{ID: 5, Name: "Shampoing solide naturel", Price: 19.10, Quantity: 1, Image: "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=100&h=100&fit=crop"},
			},
			DeliveryAddress: address,
		},
		{
			Status:     domain.StatusProcessing,
			Total:      67.80,
			TotalItems: 4,
			Items: []domain.OrderItem{
				{ID: 6, Name: "Couverts en bambou réutilisables", Price: 12.90, Quantity: 1, Image: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=100&h=100&fit=crop"},
				{ID: 7, Name: "Lingettes démaquillantes lavables", Price: 18.30, Quantity: 2, Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=100&h=100&fit=crop"},
				{ID: 8, Name: "Bee-wrap réutilisable", Price: 18.30, Quantity: 1, Image: "https://images.unsplash.com/photo-1610736969678-7b8f81ac0a2a?w=100&h=100&fit=crop"},
			},
			DeliveryAddress: address,
		},
	}

	for i, data := range samples {
		date := h.now().Add(-time.Duration(i) * 5 * 24 * time.Hour)
		order := domain.Order{
			ID:              generateID(date),
			Number:          h.generateNumberLocked(date),
			Date:            date,
			Status:          data.Status,
			Total:           data.Total,
			TotalItems:      data.TotalItems,
			Items:           copyItems(data.Items),
			DeliveryAddress: data.DeliveryAddress,
		}
		h.orders = append(h.orders, order)
	}
}
