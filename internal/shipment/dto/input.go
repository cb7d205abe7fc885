package dto

import "github.com/lucasbarrena/shopsphere-gateway/internal/model"

type CreateShipmentInput struct {
	OrderID int64  `json:"orderId" binding:"required"`
	Carrier string `json:"carrier" binding:"required"`
}

type UpdateStatusInput struct {
	Status   model.ShipmentStatus `json:"status" binding:"required"`
	Location string               `json:"location"`
	Note     string               `json:"note"`
}
