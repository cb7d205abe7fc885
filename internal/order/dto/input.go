package dto

import "github.com/lucasbarrena/shopsphere-gateway/internal/model"

type UpdateStatusInput struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}
