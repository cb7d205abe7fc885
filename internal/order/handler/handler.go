package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/middleware"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/order"
	"github.com/lucasbarrena/shopsphere-gateway/internal/order/dto"
)

type OrderHandler struct {
	uc order.UseCase
}

func NewOrderHandler(uc order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) Mine(c *gin.Context) {
	params := listquery.Parse(c.Request.URL.Query())
	viewer := middleware.SessionFrom(c).Email

	page, err := h.uc.MyOrders(c.Request.Context(), viewer, params)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *OrderHandler) AdminList(c *gin.Context) {
	params := listquery.Parse(c.Request.URL.Query())
	viewer := middleware.SessionFrom(c).Email

	page, err := h.uc.AdminOrders(c.Request.Context(), viewer, params)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *OrderHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		api.BadRequest(c, "invalid order id")
		return
	}
	o, err := h.uc.OrderDetail(c.Request.Context(), id)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		api.BadRequest(c, "invalid order id")
		return
	}
	var input dto.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "status is required")
		return
	}
	if !model.ValidOrderStatus(input.Status) {
		api.BadRequest(c, "unknown order status")
		return
	}
	o, err := h.uc.RequestStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
