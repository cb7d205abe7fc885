package model

import "time"

type ShipmentStatus string

const (
	ShipmentStatusPending        ShipmentStatus = "PENDING"
	ShipmentStatusPreparing      ShipmentStatus = "PREPARING"
	ShipmentStatusShipped        ShipmentStatus = "SHIPPED"
	ShipmentStatusInTransit      ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	ShipmentStatusDelivered      ShipmentStatus = "DELIVERED"
	ShipmentStatusFailedDelivery ShipmentStatus = "FAILED_DELIVERY"
	ShipmentStatusReturned       ShipmentStatus = "RETURNED"
	ShipmentStatusCancelled      ShipmentStatus = "CANCELLED"
)

func ValidShipmentStatus(s ShipmentStatus) bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusPreparing, ShipmentStatusShipped,
		ShipmentStatusInTransit, ShipmentStatusOutForDelivery, ShipmentStatusDelivered,
		ShipmentStatusFailedDelivery, ShipmentStatusReturned, ShipmentStatusCancelled:
		return true
	}
	return false
}

type Shipment struct {
	ID           int64           `json:"id"`
	OrderID      int64           `json:"orderId"`
	TrackingCode string          `json:"trackingCode"`
	Carrier      string          `json:"carrier"`
	Status       ShipmentStatus  `json:"status"`
	History      []TrackingEvent `json:"history"` // append-only, rendered as-is
}

type TrackingEvent struct {
	Status   ShipmentStatus `json:"status"`
	Location string         `json:"location"`
	Note     string         `json:"note"`
	At       time.Time      `json:"at"`
}
