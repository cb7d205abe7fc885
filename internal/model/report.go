package model

import "github.com/shopspring/decimal"

type PaymentMethodReportRow struct {
	PaymentMethod string          `json:"paymentMethod"`
	OrderCount    int             `json:"orderCount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

type TopSellingProductRow struct {
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	UnitsSold    int             `json:"unitsSold"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}
