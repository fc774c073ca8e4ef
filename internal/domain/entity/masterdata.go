package entity

// Item is a purchasable stock item.
type Item struct {
	ID          string  `json:"_id,omitempty"`
	ItemName    string  `json:"itemName"`
	CompanyName string  `json:"companyName"`
	Unit        string  `json:"unit"`
	LessStock   float64 `json:"lessStock"`
	StockQty    float64 `json:"stockQty,omitempty"`
}

// Unit is a measurement unit for stock items.
type Unit struct {
	ID   string `json:"_id,omitempty"`
	Unit string `json:"unit"`
}

// GstRate is a configured GST percentage.
type GstRate struct {
	ID            string  `json:"_id,omitempty"`
	GstPercentage float64 `json:"gstPercentage"`
}

// Vendor is a supplier of stock items.
type Vendor struct {
	ID             string  `json:"_id,omitempty"`
	VendorName     string  `json:"vendorName"`
	Address        string  `json:"address"`
	ContactNumber  string  `json:"contactNumber"`
	Email          string  `json:"email,omitempty"`
	GstNumber      string  `json:"gstNumber,omitempty"`
	OpeningBalance float64 `json:"openingBalance,omitempty"`
}
