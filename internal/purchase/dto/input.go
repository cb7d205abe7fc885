package dto

type CreatePurchaseOrderInput struct {
	ProviderID int64               `json:"providerId" binding:"required"`
	Items      []PurchaseItemInput `json:"items" binding:"required,min=1,dive"`
}

type PurchaseItemInput struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type ConfirmPurchaseOrderInput struct {
	Items []ReceivedItemInput `json:"items" binding:"required,min=1,dive"`
}

type ReceivedItemInput struct {
	ProductID        int64 `json:"productId" binding:"required"`
	ReceivedQuantity int   `json:"receivedQuantity" binding:"min=0"`
}
