package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/shipment"
	"github.com/lucasbarrena/shopsphere-gateway/internal/shipment/dto"
)

type ShipmentHandler struct {
	client shipment.Client
}

func NewShipmentHandler(client shipment.Client) *ShipmentHandler {
	return &ShipmentHandler{client: client}
}

func (h *ShipmentHandler) Create(c *gin.Context) {
	var input dto.CreateShipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "orderId and carrier are required")
		return
	}
	s, err := h.client.Create(c.Request.Context(), &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// UpdateStatus relays a transition request; whether it is legal for the
// shipment's current state is the backend's decision.
func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		api.BadRequest(c, "invalid shipment id")
		return
	}
	var input dto.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "status is required")
		return
	}
	if !model.ValidShipmentStatus(input.Status) {
		api.BadRequest(c, "unknown shipment status")
		return
	}
	s, err := h.client.UpdateStatus(c.Request.Context(), id, &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *ShipmentHandler) ByOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		api.BadRequest(c, "invalid order id")
		return
	}
	s, err := h.client.FindByOrder(c.Request.Context(), orderID)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *ShipmentHandler) Track(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		api.BadRequest(c, "tracking code is required")
		return
	}
	s, err := h.client.Track(c.Request.Context(), code)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
