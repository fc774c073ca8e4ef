package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// SaveBill posts a completed purchase bill.
func (c *Client) SaveBill(ctx context.Context, bill entity.PurchaseBill) error {
	return c.request(ctx, http.MethodPost, "/purchase/purchase/savebill", bill, nil)
}

// StockQty returns the current stock quantity for an item name.
func (c *Client) StockQty(ctx context.Context, itemName string) (float64, error) {
	var out struct {
		StockQty float64 `json:"stockQty"`
	}
	path := "/purchase/purchase/stockQty?itemName=" + url.QueryEscape(itemName)
	if err := c.request(ctx, http.MethodGet, path, nil, &out); err != nil {
		return 0, err
	}
	return out.StockQty, nil
}

// PostVendorCredit records an unpaid balance against the vendor's account.
func (c *Client) PostVendorCredit(ctx context.Context, txn entity.VendorTransaction) error {
	return c.request(ctx, http.MethodPost, "/supplier/supplier/credit", txn, nil)
}

// PostVendorDebit records an overpayment against the vendor's account.
func (c *Client) PostVendorDebit(ctx context.Context, txn entity.VendorTransaction) error {
	return c.request(ctx, http.MethodPost, "/supplier/supplier/debit", txn, nil)
}
