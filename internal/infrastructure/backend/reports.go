package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// MenuStatsByDate returns aggregated menu rows for settled coupons in the
// inclusive date range (yyyy-mm-dd).
func (c *Client) MenuStatsByDate(ctx context.Context, startDate, endDate string) ([]entity.MenuStat, error) {
	var rows []entity.MenuStat
	path := "/coupon/coupons/date?startDate=" + url.QueryEscape(startDate) +
		"&endDate=" + url.QueryEscape(endDate)
	if err := c.request(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
