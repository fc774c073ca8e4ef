package enum

import "encoding/json"

// PaymentState tracks the payment panel's lifecycle for a bill.
type PaymentState int

const (
	PaymentClosed     PaymentState = 0
	PaymentOpen       PaymentState = 1
	PaymentSubmitting PaymentState = 2
	PaymentSucceeded  PaymentState = 3
	PaymentFailed     PaymentState = 4
)

func (s PaymentState) String() string {
	return [...]string{"Closed", "Open", "Submitting", "Succeeded", "Failed"}[s]
}

func (s PaymentState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentState(i)
		return nil
	}
	switch str {
	case "Open":
		*s = PaymentOpen
	case "Submitting":
		*s = PaymentSubmitting
	case "Succeeded":
		*s = PaymentSucceeded
	case "Failed":
		*s = PaymentFailed
	default:
		*s = PaymentClosed
	}
	return nil
}
