package model

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURLs   []string        `json:"imageUrls"` // ordered, first one is the cover
	Stock       int             `json:"stock"`
	Active      bool            `json:"active"`
	BrandID     int64           `json:"brandId"`
	CategoryID  int64           `json:"categoryId"`
}

// OutOfStock is the only product state the client derives itself.
func (p Product) OutOfStock() bool {
	return p.Stock <= 0
}
