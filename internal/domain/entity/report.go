package entity

// MenuStat is one aggregated menu row in the sales report.
type MenuStat struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// MenuReport is the sales report for a date range, with terminal-side totals.
type MenuReport struct {
	StartDate     string     `json:"startDate"`
	EndDate       string     `json:"endDate"`
	Rows          []MenuStat `json:"rows"`
	TotalQuantity int        `json:"totalQuantity"`
	TotalAmount   float64    `json:"totalAmount"`
}
