package domain

// CartItem is one cart line aggregating a product with a quantity. Name,
// price, image and artisan are snapshotted at add-time so the line is
// insulated from later catalog refreshes. Quantity is always >= 1; an update
// that would drive it to zero removes the line instead.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
	Artisan  string  `json:"artisan"`
}
