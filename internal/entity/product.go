package domain

import (
	"errors"
	"time"
)

var ErrInvalidProduct = errors.New("invalid product")

// Product is a catalog entry. Prices are whole FCFA, no cents.
// The catalog owns products; the shop never mutates one after fetch.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	Sizes     []string  `json:"sizes,omitempty"`
	Colors    []string  `json:"colors,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func (p *Product) Validate() error {
	if p.Name == "" || p.Price <= 0 {
		return ErrInvalidProduct
	}
	return nil
}
