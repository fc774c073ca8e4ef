package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// --- Items ---

func (c *Client) ListItems(ctx context.Context) ([]entity.Item, error) {
	var items []entity.Item
	if err := c.request(ctx, http.MethodGet, "/item/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateItem(ctx context.Context, item entity.Item) (*entity.Item, error) {
	var created entity.Item
	if err := c.request(ctx, http.MethodPost, "/item/items", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateItem(ctx context.Context, id string, item entity.Item) error {
	return c.request(ctx, http.MethodPut, "/item/items/"+url.PathEscape(id), item, nil)
}

// --- Units ---

func (c *Client) ListUnits(ctx context.Context) ([]entity.Unit, error) {
	var units []entity.Unit
	if err := c.request(ctx, http.MethodGet, "/unit/units", nil, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (c *Client) GetUnit(ctx context.Context, id string) (*entity.Unit, error) {
	var unit entity.Unit
	if err := c.request(ctx, http.MethodGet, "/unit/units/"+url.PathEscape(id), nil, &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (c *Client) CreateUnit(ctx context.Context, unit entity.Unit) (*entity.Unit, error) {
	var created entity.Unit
	if err := c.request(ctx, http.MethodPost, "/unit/units", unit, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUnit(ctx context.Context, id string, unit entity.Unit) error {
	return c.request(ctx, http.MethodPatch, "/unit/units/"+url.PathEscape(id), unit, nil)
}

func (c *Client) DeleteUnit(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/unit/units/"+url.PathEscape(id), nil, nil)
}

// --- GST rates ---

func (c *Client) ListGstRates(ctx context.Context) ([]entity.GstRate, error) {
	var rates []entity.GstRate
	if err := c.request(ctx, http.MethodGet, "/gst/list", nil, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (c *Client) CreateGstRate(ctx context.Context, rate entity.GstRate) (*entity.GstRate, error) {
	var created entity.GstRate
	if err := c.request(ctx, http.MethodPost, "/gst/create", rate, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteGstRate(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/gst/gst/"+url.PathEscape(id), nil, nil)
}

// --- Vendors ---

func (c *Client) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	if err := c.request(ctx, http.MethodGet, "/supplier/suppliers", nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (c *Client) CreateVendor(ctx context.Context, vendor entity.Vendor) (*entity.Vendor, error) {
	var created entity.Vendor
	if err := c.request(ctx, http.MethodPost, "/supplier/suppliers", vendor, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateVendor(ctx context.Context, id string, vendor entity.Vendor) error {
	return c.request(ctx, http.MethodPatch, "/supplier/suppliers/"+url.PathEscape(id), vendor, nil)
}

func (c *Client) DeleteVendor(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/supplier/suppliers/"+url.PathEscape(id), nil, nil)
}
