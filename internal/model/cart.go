package model

import "github.com/shopspring/decimal"

// Cart is server-owned; this value is only a copy of the last response.
type Cart struct {
	ID    int64           `json:"id"`
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type CartItem struct {
	ProductID      int64           `json:"productId"`
	ProductName    string          `json:"productName"`
	ImageURL       string          `json:"imageUrl"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	AvailableStock int             `json:"availableStock"`
}

type ShippingMethod struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	BaseCost decimal.Decimal `json:"baseCost"` // zero means free shipping
}

// Checkout is the server's checkout payload. Displayed amounts always come
// from here, never from a local recomputation.
type Checkout struct {
	Items           []CartItem       `json:"items"`
	ShippingMethods []ShippingMethod `json:"shippingMethods"`
	SelectedMethod  *ShippingMethod  `json:"selectedMethod"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	ShippingCost    decimal.Decimal  `json:"shippingCost"`
	Total           decimal.Decimal  `json:"total"`
}

// PaymentPreference is the token handed to the embedded payment widget.
type PaymentPreference struct {
	PreferenceID string `json:"preferenceId"`
	InitPoint    string `json:"initPoint"`
}
