package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/cart"
	"github.com/lucasbarrena/shopsphere-gateway/internal/cart/dto"
)

type CartHandler struct {
	uc cart.UseCase
}

func NewCartHandler(uc cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) Get(c *gin.Context) {
	crt, err := h.uc.GetCart(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var input dto.AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "productId and a positive quantity are required")
		return
	}
	crt, err := h.uc.AddItem(c.Request.Context(), &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		api.BadRequest(c, "invalid product id")
		return
	}
	var input dto.UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "a positive quantity is required")
		return
	}
	crt, err := h.uc.UpdateItem(c.Request.Context(), productID, &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		api.BadRequest(c, "invalid product id")
		return
	}
	crt, err := h.uc.RemoveItem(c.Request.Context(), productID)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

func (h *CartHandler) Checkout(c *gin.Context) {
	co, err := h.uc.Checkout(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, co)
}

func (h *CartHandler) SetShipping(c *gin.Context) {
	var input dto.SetShippingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "shippingMethodId is required")
		return
	}
	co, err := h.uc.SetShipping(c.Request.Context(), &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, co)
}

func (h *CartHandler) PaymentPreference(c *gin.Context) {
	pref, err := h.uc.CreatePaymentPreference(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, pref)
}
