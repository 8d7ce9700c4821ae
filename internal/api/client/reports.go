package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/domain"
)

// SalesReport returns the aggregated revenue summary for a period.
func (c *Client) SalesReport(ctx context.Context, from, to time.Time) (*domain.SalesReport, error) {
	q := url.Values{}
	q.Set("from", from.Format(time.RFC3339))
	q.Set("to", to.Format(time.RFC3339))

	var out domain.SalesReport
	if err := c.Do(ctx, http.MethodGet, "/reports/sales?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
