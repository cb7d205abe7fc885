package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Provider struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

type DeliveryOutcome string

const (
	DeliveryComplete     DeliveryOutcome = "COMPLETE"
	DeliveryPartial      DeliveryOutcome = "PARTIAL"
	DeliveryNotAvailable DeliveryOutcome = "NOT_AVAILABLE"
)

type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "DRAFT"
	PurchaseOrderSimulated PurchaseOrderStatus = "SIMULATED"
	PurchaseOrderConfirmed PurchaseOrderStatus = "CONFIRMED"
)

type PurchaseOrder struct {
	ID         int64               `json:"id"`
	ProviderID int64               `json:"providerId"`
	Status     PurchaseOrderStatus `json:"status"`
	Items      []PurchaseOrderItem `json:"items"`
	CreatedAt  time.Time           `json:"createdAt"`
}

type PurchaseOrderItem struct {
	ProductID         int64           `json:"productId"`
	ProductName       string          `json:"productName"`
	RequestedQuantity int             `json:"requestedQuantity"`
	ReceivedQuantity  int             `json:"receivedQuantity"`
	UnitCost          decimal.Decimal `json:"unitCost"`
	Outcome           DeliveryOutcome `json:"outcome"` // filled by the simulate step
}

type StockMovement struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"productId"`
	ProductName  string    `json:"productName"`
	MovementType string    `json:"movementType"`
	Quantity     int       `json:"quantity"`
	Reference    string    `json:"reference"`
	CreatedAt    time.Time `json:"createdAt"`
}
