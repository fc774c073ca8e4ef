package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotuspos/counter/internal/application/staging"
	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/internal/domain/enum"
	"github.com/lotuspos/counter/pkg/apperror"
)

func newPurchase(backend *fakeBackend) *PurchaseService {
	return NewPurchaseService(staging.NewStore(), backend, 3*time.Second)
}

func stageBill(t *testing.T, svc *PurchaseService) {
	t.Helper()
	svc.SetHeader(entity.PurchaseHeader{
		Date:   "2026-08-31",
		BillNo: "B-9",
		Vendor: "Fresh Farms",
	})
	_, err := svc.AddLine(entity.PurchaseLine{
		ItemName:    "Rice",
		Quantity:    10,
		Unit:        "kg",
		PricePerQty: 50,
	})
	require.NoError(t, err)
	svc.SetPaidAmount(400)
}

func TestSaveWithoutLines(t *testing.T) {
	svc := newPurchase(&fakeBackend{})
	_, err := svc.Save(context.Background())
	assert.Error(t, err)
}

func TestSavePostsBillAndVendorCredit(t *testing.T) {
	backend := &fakeBackend{}
	svc := newPurchase(backend)
	stageBill(t, svc)

	result, err := svc.Save(context.Background())
	require.NoError(t, err)

	require.Len(t, backend.savedBills, 1)
	bill := backend.savedBills[0]
	assert.Equal(t, "B-9", bill.BillNo)
	assert.Equal(t, 500.0, bill.Subtotal)
	assert.Equal(t, 100.0, bill.Balance)

	// the unpaid balance lands on the vendor's account
	require.Len(t, backend.credits, 1)
	assert.Equal(t, "Fresh Farms", backend.credits[0].VendorName)
	assert.Equal(t, 100.0, backend.credits[0].Amount)
	assert.Empty(t, backend.debits)

	require.NotNil(t, result.Banner)
	assert.Equal(t, BannerSuccess, result.Banner.Kind)
	assert.Empty(t, result.View.Lines)
}

func TestSaveDuplicateBillKeepsStagedLines(t *testing.T) {
	backend := &fakeBackend{saveErr: apperror.NewUpstreamError(400, `{"error":"bill exists"}`)}
	svc := newPurchase(backend)
	stageBill(t, svc)

	result, err := svc.Save(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Banner)
	assert.Equal(t, BannerDuplicate, result.Banner.Kind)
	assert.Len(t, result.View.Lines, 1)
	assert.Empty(t, backend.credits)
}

func TestSaveOtherFailurePropagates(t *testing.T) {
	backend := &fakeBackend{saveErr: apperror.NewUpstreamError(500, "boom")}
	svc := newPurchase(backend)
	stageBill(t, svc)

	_, err := svc.Save(context.Background())
	assert.Error(t, err)
	assert.Len(t, svc.View().Lines, 1)
}

func TestOverlayIsExclusive(t *testing.T) {
	svc := newPurchase(&fakeBackend{})

	assert.Equal(t, enum.OverlayNone, svc.Overlay())
	assert.Equal(t, enum.OverlayItem, svc.OpenOverlay(enum.OverlayItem))

	// opening another replaces the first
	assert.Equal(t, enum.OverlayVendor, svc.OpenOverlay(enum.OverlayVendor))
	assert.Equal(t, enum.OverlayVendor, svc.View().Overlay)

	svc.CloseOverlay()
	assert.Equal(t, enum.OverlayNone, svc.Overlay())
}

func TestStockQtyLookup(t *testing.T) {
	backend := &fakeBackend{stock: map[string]float64{"Rice": 42.5}}
	svc := newPurchase(backend)

	qty, err := svc.StockQty(context.Background(), "Rice")
	require.NoError(t, err)
	assert.Equal(t, 42.5, qty)
}
