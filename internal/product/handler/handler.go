package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/middleware"
	"github.com/lucasbarrena/shopsphere-gateway/internal/product"
	"github.com/lucasbarrena/shopsphere-gateway/internal/product/dto"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

// Storefront returns the active products for the public listing page.
func (h *ProductHandler) Storefront(c *gin.Context) {
	products, err := h.uc.StorefrontProducts(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Detail(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid product id")
		return
	}
	p, err := h.uc.ProductDetail(c.Request.Context(), id)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// AdminList serves the paginated, filterable admin table. Each response
// replaces the displayed rows client-side.
func (h *ProductHandler) AdminList(c *gin.Context) {
	params := listquery.Parse(c.Request.URL.Query())
	viewer := middleware.SessionFrom(c).Email

	page, err := h.uc.AdminList(c.Request.Context(), viewer, params)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) Suggest(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusOK, []any{})
		return
	}
	viewer := middleware.SessionFrom(c).Email

	products, err := h.uc.Suggest(c.Request.Context(), viewer, term)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "invalid product payload")
		return
	}
	p, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid product id")
		return
	}
	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "invalid product payload")
		return
	}
	p, err := h.uc.UpdateProduct(c.Request.Context(), id, &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Deactivate(c *gin.Context) {
	h.toggle(c, h.uc.DeactivateProduct)
}

func (h *ProductHandler) Reactivate(c *gin.Context) {
	h.toggle(c, h.uc.ReactivateProduct)
}

func (h *ProductHandler) toggle(c *gin.Context, op func(ctx context.Context, id int64) error) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid product id")
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
