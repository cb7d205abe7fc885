package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/stock"
)

type StockHandler struct {
	client stock.Client
}

func NewStockHandler(client stock.Client) *StockHandler {
	return &StockHandler{client: client}
}

func (h *StockHandler) Movements(c *gin.Context) {
	params := listquery.Parse(c.Request.URL.Query())
	page, err := h.client.Movements(c.Request.Context(), params)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
