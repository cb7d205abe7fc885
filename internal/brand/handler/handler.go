package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/brand"
	"github.com/lucasbarrena/shopsphere-gateway/internal/brand/dto"
)

// BrandHandler proxies brand administration straight to the brands
// backend; there is no gateway-side logic beyond input validation.
type BrandHandler struct {
	client brand.Client
}

func NewBrandHandler(client brand.Client) *BrandHandler {
	return &BrandHandler{client: client}
}

func (h *BrandHandler) Active(c *gin.Context) {
	brands, err := h.client.Active(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

// List returns all brands, inactive ones included, for the admin table.
// The screen re-fetches this list after every toggle so the rows always
// reflect the server's state.
func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.client.FindAll(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) Create(c *gin.Context) {
	var input dto.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "brand name is required")
		return
	}
	b, err := h.client.Create(c.Request.Context(), &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BrandHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid brand id")
		return
	}
	var input dto.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "brand name is required")
		return
	}
	b, err := h.client.Update(c.Request.Context(), id, &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BrandHandler) Deactivate(c *gin.Context) {
	h.toggle(c, h.client.Deactivate)
}

func (h *BrandHandler) Reactivate(c *gin.Context) {
	h.toggle(c, h.client.Reactivate)
}

func (h *BrandHandler) toggle(c *gin.Context, op func(ctx context.Context, id int64) error) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid brand id")
		return
	}
	if err := op(c.Request.Context(), id); err != nil {
		api.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
