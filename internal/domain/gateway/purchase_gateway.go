package gateway

import (
	"context"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// PurchaseGateway defines backend operations for purchase bills and stock
type PurchaseGateway interface {
	SaveBill(ctx context.Context, bill entity.PurchaseBill) error
	// StockQty returns the current stock quantity for an item name.
	StockQty(ctx context.Context, itemName string) (float64, error)
	// PostVendorCredit records the unpaid balance of a purchase against
	// the vendor's account.
	PostVendorCredit(ctx context.Context, txn entity.VendorTransaction) error
	// PostVendorDebit records an overpayment in the vendor's favour. The
	// purchase flow never produces one, so only the credit side is
	// exercised; the endpoint stays on the port as part of the supplier
	// ledger surface.
	PostVendorDebit(ctx context.Context, txn entity.VendorTransaction) error
}
