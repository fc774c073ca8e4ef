package entity

// PaymentBreakdown is the settlement split for a bill. Online is always
// derived from the total and the other components, never entered directly.
type PaymentBreakdown struct {
	Cash          float64 `json:"cash"`
	Online        float64 `json:"online"`
	Due           float64 `json:"due"`
	Complimentary float64 `json:"complimentary"`
	Discount      float64 `json:"discount"`
	CustomerName  string  `json:"customerName,omitempty"`
	MobileNumber  string  `json:"mobileNumber,omitempty"`
}

// CouponUpdate is the PATCH body settling a coupon by order number. The
// field names follow the backend's coupon schema.
type CouponUpdate struct {
	OrderNumber         string  `json:"orderNumber"`
	TotalAmount         float64 `json:"totalAmount"`
	CashAmount          float64 `json:"cashAmount"`
	DueAmount           float64 `json:"dueAmount"`
	ComplimentaryAmount float64 `json:"complimentaryAmount"`
	OnlinePaymentAmount float64 `json:"onlinePaymentAmount"`
	Discount            float64 `json:"discount"`
	CustomerName        string  `json:"customerName"`
	MobileNumber        string  `json:"mobileNumber"`
}
