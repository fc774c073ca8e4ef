package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/pkg/apperror"
)

func newMasterData(backend *fakeBackend) *MasterDataService {
	return NewMasterDataService(backend, backend, backend, backend)
}

func TestCreateItemCapitalizesAndChecksUniqueness(t *testing.T) {
	backend := &fakeBackend{items: []entity.Item{{ID: "i1", ItemName: "Rice"}}}
	svc := newMasterData(backend)
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, entity.Item{ItemName: "sugar", CompanyName: "sweetco"})
	require.NoError(t, err)
	assert.Equal(t, "Sugar", created.ItemName)
	assert.Equal(t, "Sweetco", created.CompanyName)

	// duplicate check is case-insensitive against the loaded list
	_, err = svc.CreateItem(ctx, entity.Item{ItemName: "rice"})
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicate(err))
}

func TestCreateItemRequiresName(t *testing.T) {
	svc := newMasterData(&fakeBackend{})
	_, err := svc.CreateItem(context.Background(), entity.Item{})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestResolveUnit(t *testing.T) {
	backend := &fakeBackend{units: []entity.Unit{{ID: "u1", Unit: "Kg"}}}
	svc := newMasterData(backend)

	unit, err := svc.ResolveUnit(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Kg", unit.Unit)
}

func TestUnitCreateAndUpdateRejectEmpty(t *testing.T) {
	svc := newMasterData(&fakeBackend{})
	ctx := context.Background()

	_, err := svc.CreateUnit(ctx, entity.Unit{Unit: "  "})
	assert.Error(t, err)

	err = svc.UpdateUnit(ctx, "u1", entity.Unit{Unit: ""})
	assert.Error(t, err)

	created, err := svc.CreateUnit(ctx, entity.Unit{Unit: "Litre"})
	require.NoError(t, err)
	assert.Equal(t, "Litre", created.Unit)
}

func TestGstCreateSurfacesBackendError(t *testing.T) {
	backend := &fakeBackend{gstErr: apperror.NewUpstreamError(400, `{"error":"rate exists"}`)}
	svc := newMasterData(backend)

	_, err := svc.CreateGstRate(context.Background(), entity.GstRate{GstPercentage: 5})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Upstream, "rate exists")
}

func TestCreateVendorNormalization(t *testing.T) {
	backend := &fakeBackend{}
	svc := newMasterData(backend)

	created, err := svc.CreateVendor(context.Background(), entity.Vendor{
		VendorName:    "fresh farms",
		Address:       "market road",
		ContactNumber: "(987) 654-3210 ext 9",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fresh farms", created.VendorName)
	assert.Equal(t, "Market road", created.Address)
	assert.Equal(t, "9876543210", created.ContactNumber)
}

func TestCreateVendorContactMustBeTenDigits(t *testing.T) {
	svc := newMasterData(&fakeBackend{})

	_, err := svc.CreateVendor(context.Background(), entity.Vendor{
		VendorName:    "Fresh Farms",
		ContactNumber: "98765",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "contactNumber", appErr.Errors[0].Field)
}
