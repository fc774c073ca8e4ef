package gateway

import (
	"context"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// CatalogGateway defines backend operations for sections and tables
type CatalogGateway interface {
	ListSections(ctx context.Context) ([]entity.Section, error)
	ListTables(ctx context.Context) ([]entity.Table, error)
}
