package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lotuspos/counter/internal/application/staging"
	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/internal/domain/enum"
	"github.com/lotuspos/counter/internal/domain/gateway"
	"github.com/lotuspos/counter/pkg/apperror"
)

// PurchaseView is the purchase screen: the staged bill plus which
// master-data overlay is open.
type PurchaseView struct {
	staging.Snapshot
	Overlay enum.Overlay `json:"overlay"`
}

// PurchaseResult is returned by Save: the screen state after the attempt
// and the banner to show.
type PurchaseResult struct {
	View   PurchaseView `json:"view"`
	Banner *Banner      `json:"banner,omitempty"`
}

// PurchaseService drives purchase-bill entry: staging lines, the overlay
// union, stock lookups and the savebill commit.
type PurchaseService struct {
	store     *staging.Store
	purchases gateway.PurchaseGateway

	bannerTTL time.Duration

	mu      sync.Mutex
	overlay enum.Overlay
}

func NewPurchaseService(store *staging.Store, purchases gateway.PurchaseGateway, bannerTTL time.Duration) *PurchaseService {
	return &PurchaseService{
		store:     store,
		purchases: purchases,
		bannerTTL: bannerTTL,
	}
}

// View returns the current purchase screen state.
func (s *PurchaseService) View() PurchaseView {
	return s.view(s.store.Snapshot())
}

func (s *PurchaseService) view(snap staging.Snapshot) PurchaseView {
	s.mu.Lock()
	overlay := s.overlay
	s.mu.Unlock()
	return PurchaseView{Snapshot: snap, Overlay: overlay}
}

// SetHeader updates the bill header.
func (s *PurchaseService) SetHeader(header entity.PurchaseHeader) PurchaseView {
	return s.view(s.store.SetHeader(header))
}

// AddLine stages a purchase line.
func (s *PurchaseService) AddLine(line entity.PurchaseLine) (PurchaseView, error) {
	snap, err := s.store.AddLine(line)
	if err != nil {
		return PurchaseView{}, err
	}
	return s.view(snap), nil
}

// BeginEdit pulls a staged line back into the entry form.
func (s *PurchaseService) BeginEdit(index int) (entity.PurchaseLine, error) {
	return s.store.BeginEdit(index)
}

// CancelEdit restores the line under edit.
func (s *PurchaseService) CancelEdit() PurchaseView {
	return s.view(s.store.CancelEdit())
}

// MarkDelete stages a line for confirmed deletion.
func (s *PurchaseService) MarkDelete(index int) error {
	return s.store.MarkDelete(index)
}

// ConfirmDelete removes the marked line.
func (s *PurchaseService) ConfirmDelete() (PurchaseView, error) {
	snap, err := s.store.ConfirmDelete()
	if err != nil {
		return PurchaseView{}, err
	}
	return s.view(snap), nil
}

// CancelDelete clears the pending deletion.
func (s *PurchaseService) CancelDelete() PurchaseView {
	s.store.CancelDelete()
	return s.View()
}

// SetDiscount updates the bill discount.
func (s *PurchaseService) SetDiscount(discount float64) PurchaseView {
	return s.view(s.store.SetDiscount(discount))
}

// SetPaidAmount updates the amount paid to the vendor.
func (s *PurchaseService) SetPaidAmount(paid float64) PurchaseView {
	return s.view(s.store.SetPaidAmount(paid))
}

// StockQty looks up the current stock for an item as it is selected.
func (s *PurchaseService) StockQty(ctx context.Context, itemName string) (float64, error) {
	return s.purchases.StockQty(ctx, itemName)
}

// OpenOverlay opens one master-data modal, closing any other.
func (s *PurchaseService) OpenOverlay(overlay enum.Overlay) enum.Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay = overlay
	return s.overlay
}

// CloseOverlay dismisses the open modal.
func (s *PurchaseService) CloseOverlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay = enum.OverlayNone
}

// Overlay reports which modal is open.
func (s *PurchaseService) Overlay() enum.Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlay
}

// Save commits the staged bill to the backend. A duplicate bill number
// (backend 400) leaves the staged state intact behind a duplicate banner.
// On success the remaining balance is posted as vendor credit and the
// form clears. The vendor debit path is unreachable here: the saved bill
// never reports an overpayment, so the follow-up is always a credit.
func (s *PurchaseService) Save(ctx context.Context) (PurchaseResult, error) {
	if s.store.Empty() {
		return PurchaseResult{}, apperror.NewAppError(409, "No items staged on this bill")
	}

	bill := s.store.Bill()
	if err := s.purchases.SaveBill(ctx, bill); err != nil {
		if apperror.IsDuplicate(err) {
			return PurchaseResult{
				View:   s.View(),
				Banner: NewBanner(BannerDuplicate, "Bill number already exists", s.bannerTTL),
			}, nil
		}
		return PurchaseResult{}, err
	}

	if err := s.purchases.PostVendorCredit(ctx, entity.VendorTransaction{
		VendorName: bill.Vendor,
		Amount:     bill.Balance,
	}); err != nil {
		log.Printf("purchase: post vendor credit for %s: %v", bill.Vendor, err)
	}

	snap := s.store.Reset()
	return PurchaseResult{
		View:   s.view(snap),
		Banner: NewBanner(BannerSuccess, "Purchase bill saved", s.bannerTTL),
	}, nil
}
