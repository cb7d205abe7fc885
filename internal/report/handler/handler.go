package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/report"
)

type ReportHandler struct {
	client report.Client
}

func NewReportHandler(client report.Client) *ReportHandler {
	return &ReportHandler{client: client}
}

// dateRange applies the shared range policy: both bounds required, an
// inverted range is corrected by listquery before use.
func dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	p := listquery.Parse(c.Request.URL.Query())
	if p.From == nil || p.To == nil {
		api.BadRequest(c, "dateFrom and dateTo are required")
		return time.Time{}, time.Time{}, false
	}
	return *p.From, *p.To, true
}

func (h *ReportHandler) PaymentMethods(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	rows, err := h.client.PaymentMethods(c.Request.Context(), from, to)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) TopSellingProducts(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	rows, err := h.client.TopSellingProducts(c.Request.Context(), from, to, limit)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
