package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/purchase"
	"github.com/lucasbarrena/shopsphere-gateway/internal/purchase/dto"
)

type PurchaseHandler struct {
	client purchase.Client
}

func NewPurchaseHandler(client purchase.Client) *PurchaseHandler {
	return &PurchaseHandler{client: client}
}

func (h *PurchaseHandler) Create(c *gin.Context) {
	var input dto.CreatePurchaseOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "providerId and at least one item are required")
		return
	}
	po, err := h.client.Create(c.Request.Context(), &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}

func (h *PurchaseHandler) List(c *gin.Context) {
	params := listquery.Parse(c.Request.URL.Query())
	page, err := h.client.FindAll(c.Request.Context(), params)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PurchaseHandler) Detail(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid purchase order id")
		return
	}
	po, err := h.client.FindByID(c.Request.Context(), id)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func (h *PurchaseHandler) Simulate(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid purchase order id")
		return
	}
	po, err := h.client.Simulate(c.Request.Context(), id)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func (h *PurchaseHandler) Confirm(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid purchase order id")
		return
	}
	var input dto.ConfirmPurchaseOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "received items are required")
		return
	}
	po, err := h.client.Confirm(c.Request.Context(), id, &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
