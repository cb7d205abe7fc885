package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/category"
	"github.com/lucasbarrena/shopsphere-gateway/internal/category/dto"
)

type CategoryHandler struct {
	uc category.UseCase
}

func NewCategoryHandler(uc category.UseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Active serves the storefront; an optional brandId narrows the list to
// the selected brand.
func (h *CategoryHandler) Active(c *gin.Context) {
	if v := c.Query("brandId"); v != "" {
		brandID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			api.BadRequest(c, "invalid brand id")
			return
		}
		categories, err := h.uc.CategoriesByBrand(c.Request.Context(), brandID)
		if err != nil {
			api.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
		return
	}

	categories, err := h.uc.ActiveCategories(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.uc.AllCategories(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input dto.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "invalid category payload")
		return
	}
	cat, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid category id")
		return
	}
	var input dto.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "invalid category payload")
		return
	}
	cat, err := h.uc.UpdateCategory(c.Request.Context(), id, &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Deactivate(c *gin.Context) {
	h.toggle(c, h.uc.DeactivateCategory)
}

func (h *CategoryHandler) Reactivate(c *gin.Context) {
	h.toggle(c, h.uc.ReactivateCategory)
}

func (h *CategoryHandler) toggle(c *gin.Context, op func(ctx context.Context, id int64) error) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid category id")
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
