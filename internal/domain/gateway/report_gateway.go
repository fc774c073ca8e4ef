package gateway

import (
	"context"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// ReportGateway defines backend operations for settled-coupon statistics
type ReportGateway interface {
	// MenuStatsByDate returns aggregated menu rows for the inclusive
	// date range, dates formatted yyyy-mm-dd.
	MenuStatsByDate(ctx context.Context, startDate, endDate string) ([]entity.MenuStat, error)
}
