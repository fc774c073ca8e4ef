package backend

import (
	"context"
	"net/http"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// ListSections fetches all dining sections.
func (c *Client) ListSections(ctx context.Context) ([]entity.Section, error) {
	var sections []entity.Section
	if err := c.request(ctx, http.MethodGet, "/section", nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// ListTables fetches all tables across sections.
func (c *Client) ListTables(ctx context.Context) ([]entity.Table, error) {
	var tables []entity.Table
	if err := c.request(ctx, http.MethodGet, "/table/tables", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}
