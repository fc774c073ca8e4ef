package staging

import (
	"sync"

	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/pkg/apperror"
	"github.com/lotuspos/counter/pkg/utils"
)

// Store holds the purchase bill being keyed in at the counter: a header,
// an ordered set of lines unique by item name, and the derived totals.
// Nothing here touches the backend; Bill() serializes the staged state
// for a savebill call.
type Store struct {
	mu sync.Mutex

	header entity.PurchaseHeader
	lines  []entity.PurchaseLine

	// editingIndex marks the line pulled back into the entry form; -1
	// when no edit is in progress. The marked line is excluded from
	// totals and from the duplicate check until re-added or restored.
	editingIndex int

	// pendingDelete marks the line awaiting delete confirmation; -1
	// when none.
	pendingDelete int

	totals entity.PurchaseTotals
}

func NewStore() *Store {
	return &Store{
		header:        entity.PurchaseHeader{Date: utils.CurrentDate()},
		editingIndex:  -1,
		pendingDelete: -1,
	}
}

// Snapshot is the staged state as rendered by the purchase screen.
type Snapshot struct {
	Header        entity.PurchaseHeader `json:"header"`
	Lines         []entity.PurchaseLine `json:"lines"`
	EditingIndex  int                   `json:"editingIndex"`
	PendingDelete int                   `json:"pendingDelete"`
	Totals        entity.PurchaseTotals `json:"totals"`
}

// Snapshot returns a copy of the staged state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	lines := make([]entity.PurchaseLine, len(s.lines))
	copy(lines, s.lines)
	return Snapshot{
		Header:        s.header,
		Lines:         lines,
		EditingIndex:  s.editingIndex,
		PendingDelete: s.pendingDelete,
		Totals:        s.totals,
	}
}

// SetHeader replaces the bill header fields and recomputes totals.
func (s *Store) SetHeader(header entity.PurchaseHeader) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if header.Date == "" {
		header.Date = utils.CurrentDate()
	}
	s.header = header
	s.recomputeLocked()
	return s.snapshotLocked()
}

// AddLine validates and stages a purchase line. When an edit is in
// progress the new line replaces the one under edit; otherwise it is
// appended. A zero GST rate skips the header required-field check; the
// line fields themselves are always required.
func (s *Store) AddLine(line entity.PurchaseLine) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateLineLocked(line); err != nil {
		return Snapshot{}, err
	}

	for i, existing := range s.lines {
		if i == s.editingIndex {
			continue
		}
		if existing.ItemName == line.ItemName {
			return Snapshot{}, apperror.NewDuplicateError("Item already added to this bill")
		}
	}

	base := line.Quantity * line.PricePerQty
	if line.GstPercent != 0 {
		line.GstAmount = base * line.GstPercent / 100
	} else {
		line.GstAmount = 0
	}

	if s.editingIndex >= 0 && s.editingIndex < len(s.lines) {
		s.lines[s.editingIndex] = line
		s.editingIndex = -1
	} else {
		s.lines = append(s.lines, line)
	}
	s.recomputeLocked()
	return s.snapshotLocked(), nil
}

func (s *Store) validateLineLocked(line entity.PurchaseLine) error {
	var fields []apperror.FieldError
	if line.GstPercent != 0 {
		if s.header.BillNo == "" {
			fields = append(fields, apperror.FieldError{Field: "billNo", Message: "Bill number is required"})
		}
		if s.header.Date == "" {
			fields = append(fields, apperror.FieldError{Field: "date", Message: "Date is required"})
		}
		if s.header.Vendor == "" {
			fields = append(fields, apperror.FieldError{Field: "vendor", Message: "Vendor is required"})
		}
	}
	if line.ItemName == "" {
		fields = append(fields, apperror.FieldError{Field: "itemName", Message: "Item name is required"})
	}
	if line.Quantity == 0 {
		fields = append(fields, apperror.FieldError{Field: "quantity", Message: "Quantity is required"})
	}
	if line.Unit == "" {
		fields = append(fields, apperror.FieldError{Field: "unit", Message: "Unit is required"})
	}
	if line.PricePerQty == 0 {
		fields = append(fields, apperror.FieldError{Field: "pricePerQty", Message: "Price per quantity is required"})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

// BeginEdit marks a line for editing and returns it so the entry form can
// be pre-filled. Starting an edit cancels any pending delete.
func (s *Store) BeginEdit(index int) (entity.PurchaseLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.lines) {
		return entity.PurchaseLine{}, apperror.NewNotFoundError("Purchase line")
	}
	s.editingIndex = index
	s.pendingDelete = -1
	s.recomputeLocked()
	return s.lines[index], nil
}

// CancelEdit restores the line under edit without changes.
func (s *Store) CancelEdit() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingIndex = -1
	s.recomputeLocked()
	return s.snapshotLocked()
}

// MarkDelete stages a line for deletion pending confirmation.
func (s *Store) MarkDelete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.lines) {
		return apperror.NewNotFoundError("Purchase line")
	}
	s.pendingDelete = index
	return nil
}

// ConfirmDelete removes the marked line. Confirming also resets the
// discount to zero and abandons any in-progress edit.
func (s *Store) ConfirmDelete() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingDelete < 0 || s.pendingDelete >= len(s.lines) {
		return Snapshot{}, apperror.NewAppError(409, "No line marked for deletion")
	}
	s.lines = append(s.lines[:s.pendingDelete], s.lines[s.pendingDelete+1:]...)
	s.pendingDelete = -1
	s.editingIndex = -1
	s.header.Discount = 0
	s.recomputeLocked()
	return s.snapshotLocked(), nil
}

// CancelDelete clears the pending-delete mark.
func (s *Store) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = -1
}

// SetDiscount updates the bill discount and recomputes totals.
func (s *Store) SetDiscount(discount float64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header.Discount = discount
	s.recomputeLocked()
	return s.snapshotLocked()
}

// SetPaidAmount updates the paid amount and recomputes totals.
func (s *Store) SetPaidAmount(paid float64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header.PaidAmount = paid
	s.recomputeLocked()
	return s.snapshotLocked()
}

// Totals returns the current derived amounts.
func (s *Store) Totals() entity.PurchaseTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// Lines returns a copy of the staged lines.
func (s *Store) Lines() []entity.PurchaseLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]entity.PurchaseLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Empty reports whether any lines are staged.
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Bill serializes the staged state into a savebill payload.
func (s *Store) Bill() entity.PurchaseBill {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]entity.PurchaseLine, len(s.lines))
	copy(lines, s.lines)

	var gstAmount float64
	for _, line := range lines {
		gstAmount += line.GstAmount
	}

	return entity.PurchaseBill{
		Date:       s.header.Date,
		BillNo:     s.header.BillNo,
		Vendor:     s.header.Vendor,
		Subtotal:   s.totals.Subtotal,
		Gst:        s.header.GstPercent,
		GstAmount:  gstAmount,
		PaidAmount: s.header.PaidAmount,
		Discount:   s.header.Discount,
		Items:      lines,
		Balance:    s.totals.Balance,
	}
}

// Reset clears the staged bill back to an empty form dated today.
func (s *Store) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header = entity.PurchaseHeader{Date: utils.CurrentDate()}
	s.lines = nil
	s.editingIndex = -1
	s.pendingDelete = -1
	s.recomputeLocked()
	return s.snapshotLocked()
}

// recomputeLocked rebuilds subtotal, grand total and balance. The line
// under edit does not count until it is re-added.
func (s *Store) recomputeLocked() {
	var subtotal float64
	for i, line := range s.lines {
		if i == s.editingIndex {
			continue
		}
		subtotal += line.ItemTotal()
	}
	grand := subtotal - s.header.Discount
	s.totals = entity.PurchaseTotals{
		Subtotal:   subtotal,
		GrandTotal: grand,
		Balance:    grand - s.header.PaidAmount,
	}
}
