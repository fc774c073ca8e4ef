package request

// LoginRequest carries credentials for the employee or report login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SelectSectionRequest selects (or toggles off) a board section by id.
type SelectSectionRequest struct {
	Section string `json:"section" binding:"required"`
}

// KeyInputRequest feeds keyboard-wedge characters to the board.
type KeyInputRequest struct {
	Input string `json:"input" binding:"required"`
}

// PaymentOpenRequest opens the payment panel for a table's bill.
type PaymentOpenRequest struct {
	TableID string `json:"tableId" binding:"required"`
}

// PaymentAmountsRequest updates the editable parts of the split.
type PaymentAmountsRequest struct {
	Cash          float64 `json:"cash"`
	Due           float64 `json:"due"`
	Complimentary float64 `json:"complimentary"`
	Discount      float64 `json:"discount"`
}

// PaymentCustomerRequest records optional customer details.
type PaymentCustomerRequest struct {
	CustomerName string `json:"customerName"`
	MobileNumber string `json:"mobileNumber"`
}

// DiscountRequest updates the purchase bill discount.
type DiscountRequest struct {
	Discount float64 `json:"discount"`
}

// PaidAmountRequest updates the amount paid to the vendor.
type PaidAmountRequest struct {
	PaidAmount float64 `json:"paidAmount"`
}

// LineIndexRequest addresses a staged purchase line.
type LineIndexRequest struct {
	Index int `json:"index"`
}

// OverlayRequest opens one of the master-data modals.
type OverlayRequest struct {
	Overlay string `json:"overlay" binding:"required"`
}
