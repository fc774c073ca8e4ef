package gateway

import (
	"context"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// OrderGateway defines backend operations for bills and coupon settlement
type OrderGateway interface {
	// BillsByTable returns every bill the backend holds for a table,
	// newest first.
	BillsByTable(ctx context.Context, tableID string) ([]entity.BillSummary, error)
	// SettleCoupon PATCHes the payment breakdown for an order number.
	SettleCoupon(ctx context.Context, orderNumber string, update entity.CouponUpdate) error
}
