package dto

type AddItemInput struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type SetShippingInput struct {
	ShippingMethodID int64 `json:"shippingMethodId" binding:"required"`
}
