package entity

// PurchaseLine is one staged line of a purchase bill. GstAmount is the
// computed tax for the line, not the percentage.
type PurchaseLine struct {
	ItemName    string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	PricePerQty float64 `json:"pricePerQty"`
	GstPercent  float64 `json:"gstPercent"`
	GstAmount   float64 `json:"gstAmount"`
}

// ItemTotal returns the line total: quantity x price, plus GST when the
// line carries a non-zero rate.
func (l PurchaseLine) ItemTotal() float64 {
	base := l.Quantity * l.PricePerQty
	if l.GstPercent != 0 {
		return base + base*l.GstPercent/100
	}
	return base
}

// PurchaseHeader is the bill-level portion of a staged purchase.
type PurchaseHeader struct {
	Date       string  `json:"date"`
	BillNo     string  `json:"billNo"`
	Vendor     string  `json:"vendor"`
	GstPercent float64 `json:"gst"`
	Discount   float64 `json:"discount"`
	PaidAmount float64 `json:"paidAmount"`
}

// PurchaseTotals are the derived amounts shown under the staged lines.
type PurchaseTotals struct {
	Subtotal   float64 `json:"subtotal"`
	GrandTotal float64 `json:"grandTotal"`
	Balance    float64 `json:"balance"`
}

// PurchaseBill is the savebill payload sent to the backend.
type PurchaseBill struct {
	Date       string         `json:"date"`
	BillNo     string         `json:"billNo"`
	Vendor     string         `json:"vendor"`
	Subtotal   float64        `json:"subtotal"`
	Gst        float64        `json:"gst"`
	GstAmount  float64        `json:"gstAmount"`
	PaidAmount float64        `json:"paidAmount"`
	Discount   float64        `json:"discount"`
	Items      []PurchaseLine `json:"items"`
	Balance    float64        `json:"balance"`
}

// VendorTransaction posts a credit or debit against a vendor's account.
type VendorTransaction struct {
	VendorName string  `json:"vendorName"`
	Amount     float64 `json:"amount"`
}
