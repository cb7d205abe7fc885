package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/report"
)

const dateLayout = "2006-01-02"

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) report.Client {
	return &restClient{http: http}
}

func (c *restClient) PaymentMethods(ctx context.Context, from, to time.Time) ([]model.PaymentMethodReportRow, error) {
	q := url.Values{}
	q.Set("from", from.Format(dateLayout))
	q.Set("to", to.Format(dateLayout))

	var out []model.PaymentMethodReportRow
	if err := c.http.Get(ctx, "/payment-methods", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClient) TopSellingProducts(ctx context.Context, from, to time.Time, limit int) ([]model.TopSellingProductRow, error) {
	q := url.Values{}
	q.Set("from", from.Format(dateLayout))
	q.Set("to", to.Format(dateLayout))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []model.TopSellingProductRow
	if err := c.http.Get(ctx, "/top-selling-products", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
