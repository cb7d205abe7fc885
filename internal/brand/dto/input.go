package dto

type BrandInput struct {
	Name string `json:"name" binding:"required"`
}
