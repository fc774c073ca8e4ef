package enum

import "encoding/json"

// Overlay identifies which master-data modal is open on the purchase screen.
// At most one overlay is open at a time.
type Overlay int

const (
	OverlayNone   Overlay = 0
	OverlayItem   Overlay = 1
	OverlayUnit   Overlay = 2
	OverlayGst    Overlay = 3
	OverlayVendor Overlay = 4
)

func (o Overlay) String() string {
	return [...]string{"None", "Item", "Unit", "Gst", "Vendor"}[o]
}

func (o Overlay) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Overlay) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*o = Overlay(i)
		return nil
	}
	switch str {
	case "Item":
		*o = OverlayItem
	case "Unit":
		*o = OverlayUnit
	case "Gst":
		*o = OverlayGst
	case "Vendor":
		*o = OverlayVendor
	default:
		*o = OverlayNone
	}
	return nil
}
