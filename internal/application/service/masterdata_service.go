package service

import (
	"context"
	"strings"

	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/internal/domain/gateway"
	"github.com/lotuspos/counter/pkg/apperror"
	"github.com/lotuspos/counter/pkg/utils"
)

// MasterDataService backs the item, unit, GST and vendor modals on the
// purchase screen. Input normalization and uniqueness pre-checks happen
// here; the backend stays the system of record.
type MasterDataService struct {
	items   gateway.ItemGateway
	units   gateway.UnitGateway
	gst     gateway.GstGateway
	vendors gateway.VendorGateway
}

func NewMasterDataService(items gateway.ItemGateway, units gateway.UnitGateway, gst gateway.GstGateway, vendors gateway.VendorGateway) *MasterDataService {
	return &MasterDataService{items: items, units: units, gst: gst, vendors: vendors}
}

// --- Items ---

func (s *MasterDataService) ListItems(ctx context.Context) ([]entity.Item, error) {
	return s.items.ListItems(ctx)
}

// CreateItem normalizes and creates a stock item. The name must be unique
// within the currently loaded list.
func (s *MasterDataService) CreateItem(ctx context.Context, item entity.Item) (*entity.Item, error) {
	item.ItemName = utils.CapitalizeFirst(item.ItemName)
	item.CompanyName = utils.CapitalizeFirst(item.CompanyName)
	if item.ItemName == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "itemName", Message: "Item name is required"},
		})
	}

	existing, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if strings.EqualFold(e.ItemName, item.ItemName) {
			return nil, apperror.NewDuplicateError("Item name already exists")
		}
	}
	return s.items.CreateItem(ctx, item)
}

func (s *MasterDataService) UpdateItem(ctx context.Context, id string, item entity.Item) error {
	item.ItemName = utils.CapitalizeFirst(item.ItemName)
	item.CompanyName = utils.CapitalizeFirst(item.CompanyName)
	if item.ItemName == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "itemName", Message: "Item name is required"},
		})
	}
	return s.items.UpdateItem(ctx, id, item)
}

// ResolveUnit fetches the full unit record when one is picked in the item
// modal.
func (s *MasterDataService) ResolveUnit(ctx context.Context, id string) (*entity.Unit, error) {
	return s.units.GetUnit(ctx, id)
}

// --- Units ---

func (s *MasterDataService) ListUnits(ctx context.Context) ([]entity.Unit, error) {
	return s.units.ListUnits(ctx)
}

func (s *MasterDataService) CreateUnit(ctx context.Context, unit entity.Unit) (*entity.Unit, error) {
	if strings.TrimSpace(unit.Unit) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "unit", Message: "Unit is required"},
		})
	}
	return s.units.CreateUnit(ctx, unit)
}

// UpdateUnit rejects blanking a unit out.
func (s *MasterDataService) UpdateUnit(ctx context.Context, id string, unit entity.Unit) error {
	if strings.TrimSpace(unit.Unit) == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "unit", Message: "Unit cannot be empty"},
		})
	}
	return s.units.UpdateUnit(ctx, id, unit)
}

func (s *MasterDataService) DeleteUnit(ctx context.Context, id string) error {
	return s.units.DeleteUnit(ctx, id)
}

// --- GST rates ---

func (s *MasterDataService) ListGstRates(ctx context.Context) ([]entity.GstRate, error) {
	return s.gst.ListGstRates(ctx)
}

// CreateGstRate passes through to the backend; its 400 message is
// surfaced to the modal as-is.
func (s *MasterDataService) CreateGstRate(ctx context.Context, rate entity.GstRate) (*entity.GstRate, error) {
	return s.gst.CreateGstRate(ctx, rate)
}

func (s *MasterDataService) DeleteGstRate(ctx context.Context, id string) error {
	return s.gst.DeleteGstRate(ctx, id)
}

// --- Vendors ---

func (s *MasterDataService) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	return s.vendors.ListVendors(ctx)
}

func (s *MasterDataService) CreateVendor(ctx context.Context, vendor entity.Vendor) (*entity.Vendor, error) {
	normalized, err := normalizeVendor(vendor)
	if err != nil {
		return nil, err
	}
	return s.vendors.CreateVendor(ctx, normalized)
}

func (s *MasterDataService) UpdateVendor(ctx context.Context, id string, vendor entity.Vendor) error {
	normalized, err := normalizeVendor(vendor)
	if err != nil {
		return err
	}
	return s.vendors.UpdateVendor(ctx, id, normalized)
}

func (s *MasterDataService) DeleteVendor(ctx context.Context, id string) error {
	return s.vendors.DeleteVendor(ctx, id)
}

// normalizeVendor applies the vendor form rules: capitalized name and
// address, a contact number of exactly ten digits after stripping.
func normalizeVendor(vendor entity.Vendor) (entity.Vendor, error) {
	vendor.VendorName = utils.CapitalizeFirst(vendor.VendorName)
	vendor.Address = utils.CapitalizeFirst(vendor.Address)
	vendor.ContactNumber = utils.DigitsOnly(vendor.ContactNumber, 10)

	var fields []apperror.FieldError
	if vendor.VendorName == "" {
		fields = append(fields, apperror.FieldError{Field: "vendorName", Message: "Vendor name is required"})
	}
	if len(vendor.ContactNumber) != 10 {
		fields = append(fields, apperror.FieldError{Field: "contactNumber", Message: "Contact number must be 10 digits"})
	}
	if len(fields) > 0 {
		return entity.Vendor{}, apperror.NewValidationError(fields)
	}
	return vendor, nil
}
