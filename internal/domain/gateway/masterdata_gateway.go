package gateway

import (
	"context"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// ItemGateway defines backend operations for stock items
type ItemGateway interface {
	ListItems(ctx context.Context) ([]entity.Item, error)
	CreateItem(ctx context.Context, item entity.Item) (*entity.Item, error)
	UpdateItem(ctx context.Context, id string, item entity.Item) error
}

// UnitGateway defines backend operations for measurement units
type UnitGateway interface {
	ListUnits(ctx context.Context) ([]entity.Unit, error)
	GetUnit(ctx context.Context, id string) (*entity.Unit, error)
	CreateUnit(ctx context.Context, unit entity.Unit) (*entity.Unit, error)
	UpdateUnit(ctx context.Context, id string, unit entity.Unit) error
	DeleteUnit(ctx context.Context, id string) error
}

// GstGateway defines backend operations for GST rates
type GstGateway interface {
	ListGstRates(ctx context.Context) ([]entity.GstRate, error)
	CreateGstRate(ctx context.Context, rate entity.GstRate) (*entity.GstRate, error)
	DeleteGstRate(ctx context.Context, id string) error
}

// VendorGateway defines backend operations for suppliers
type VendorGateway interface {
	ListVendors(ctx context.Context) ([]entity.Vendor, error)
	CreateVendor(ctx context.Context, vendor entity.Vendor) (*entity.Vendor, error)
	UpdateVendor(ctx context.Context, id string, vendor entity.Vendor) error
	DeleteVendor(ctx context.Context, id string) error
}
