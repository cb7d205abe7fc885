package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductOutOfStock(t *testing.T) {
	assert.True(t, Product{Stock: 0}.OutOfStock())
	assert.True(t, Product{Stock: -1}.OutOfStock())
	assert.False(t, Product{Stock: 1}.OutOfStock())
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCompleted,
		OrderStatusCancelled,
	} {
		assert.True(t, ValidOrderStatus(s), string(s))
	}
	assert.False(t, ValidOrderStatus("REFUNDED"))
	assert.False(t, ValidOrderStatus(""))
}

func TestValidShipmentStatus(t *testing.T) {
	assert.True(t, ValidShipmentStatus(ShipmentStatusOutForDelivery))
	assert.False(t, ValidShipmentStatus("LOST"))
	assert.False(t, ValidShipmentStatus(""))
}

func TestPageDecodesSpringEnvelope(t *testing.T) {
	raw := []byte(`{
		"content":[{"id":1,"name":"Keyboard","price":"25.50","stock":3}],
		"number":2,"size":10,"totalElements":21,"totalPages":3
	}`)

	var page Page[Product]
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, int64(21), page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "25.5", page.Content[0].Price.String())
}
