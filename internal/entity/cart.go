package domain

// CartLine is a product snapshot plus the shopper's choice of size,
// color and quantity. Two lines are the same entry iff product id,
// size and color all match; the price is frozen at add time, so a
// later catalog change never rewrites a line already in the cart.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// Matches reports whether the line is the entry identified by the
// (product, size, color) triple.
func (l CartLine) Matches(productID, size, color string) bool {
	return l.ProductID == productID && l.Size == size && l.Color == color
}

// LineFromProduct snapshots a product into a quantity-1 cart line.
func LineFromProduct(p Product, size, color string) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		ImageURL:  p.ImageURL,
		Quantity:  1,
		Size:      size,
		Color:     color,
	}
}

// Cart is an ordered sequence of lines, insertion order preserved.
type Cart []CartLine

// Total is the subtotal over all lines.
func (c Cart) Total() int64 {
	var sum int64
	for _, l := range c {
		sum += l.Price * int64(l.Quantity)
	}
	return sum
}

// Count is the number of articles, quantities included.
func (c Cart) Count() int {
	var n int
	for _, l := range c {
		n += l.Quantity
	}
	return n
}
