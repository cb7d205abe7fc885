package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURLs   []string        `json:"imageUrls"`
	Stock       int             `json:"stock"`
	BrandID     int64           `json:"brandId" binding:"required"`
	CategoryID  int64           `json:"categoryId" binding:"required"`
}

type UpdateProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURLs   []string        `json:"imageUrls"`
	Stock       int             `json:"stock"`
	BrandID     int64           `json:"brandId" binding:"required"`
	CategoryID  int64           `json:"categoryId" binding:"required"`
}
