package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/provider"
	"github.com/lucasbarrena/shopsphere-gateway/internal/provider/dto"
)

type ProviderHandler struct {
	client provider.Client
}

func NewProviderHandler(client provider.Client) *ProviderHandler {
	return &ProviderHandler{client: client}
}

func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.client.FindAll(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (h *ProviderHandler) Detail(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid provider id")
		return
	}
	p, err := h.client.FindByID(c.Request.Context(), id)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) Create(c *gin.Context) {
	var input dto.ProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "name and a valid email are required")
		return
	}
	p, err := h.client.Create(c.Request.Context(), &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProviderHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid provider id")
		return
	}
	var input dto.ProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "name and a valid email are required")
		return
	}
	p, err := h.client.Update(c.Request.Context(), id, &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid provider id")
		return
	}
	if err := h.client.Deactivate(c.Request.Context(), id); err != nil {
		api.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
