package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// BillsByTable fetches the bills the backend holds for a table.
func (c *Client) BillsByTable(ctx context.Context, tableID string) ([]entity.BillSummary, error) {
	var bills []entity.BillSummary
	path := "/order/order/" + url.PathEscape(tableID)
	if err := c.request(ctx, http.MethodGet, path, nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// SettleCoupon PATCHes the payment breakdown for an order number.
func (c *Client) SettleCoupon(ctx context.Context, orderNumber string, update entity.CouponUpdate) error {
	path := "/coupon/update/" + url.PathEscape(orderNumber)
	return c.request(ctx, http.MethodPatch, path, update, nil)
}
