package entity

// Section is a dining area grouping tables, as served by the backend.
type Section struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

// Table is a dining table belonging to a section. The backend embeds the
// section as a populated object, not an id string.
type Table struct {
	ID      string  `json:"_id"`
	Name    string  `json:"tableName"`
	Section Section `json:"section"`
}

// BillItem is a single ordered line on a bill.
type BillItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// BillSummary is an open or settled bill for a table. IsPrint mirrors the
// backend's integer flag: 1 once the kitchen copy has been printed.
type BillSummary struct {
	ID          string     `json:"_id"`
	OrderNumber string     `json:"orderNumber"`
	TableID     string     `json:"tableId"`
	TableName   string     `json:"tableName"`
	IsTemporary bool       `json:"isTemporary"`
	IsPrint     int        `json:"isPrint"`
	Items       []BillItem `json:"items"`
	Total       float64    `json:"total"`
}

// TableActivation is the outcome of activating a table on the board: either
// the payment panel opens for its bill, or the terminal navigates to order
// entry for the table.
type TableActivation struct {
	TableID     string       `json:"tableId"`
	TableName   string       `json:"tableName"`
	OpenPayment bool         `json:"openPayment"`
	OrderRoute  string       `json:"orderRoute,omitempty"`
	Bill        *BillSummary `json:"bill,omitempty"`
}

// BoardSnapshot is everything the table board renders in one frame.
type BoardSnapshot struct {
	Sections        []Section               `json:"sections"`
	Tables          []Table                 `json:"tables"`
	Bills           map[string]*BillSummary `json:"bills"`
	SelectedSection string                  `json:"selectedSection"`
	InUseCount      int                     `json:"inUseCount"`
}
