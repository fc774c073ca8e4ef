package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/internal/domain/enum"
	"github.com/lotuspos/counter/internal/domain/gateway"
	"github.com/lotuspos/counter/pkg/apperror"
	"github.com/lotuspos/counter/pkg/utils"
)

// PaymentPanel is the payment screen's state for the bill being settled.
type PaymentPanel struct {
	State     enum.PaymentState       `json:"state"`
	Bill      *entity.BillSummary     `json:"bill,omitempty"`
	Breakdown entity.PaymentBreakdown `json:"breakdown"`
}

// PaymentResult is returned by Submit: the new panel state, an optional
// banner, and the redirect delay on success.
type PaymentResult struct {
	Panel        PaymentPanel `json:"panel"`
	Banner       *Banner      `json:"banner,omitempty"`
	RedirectInMs int64        `json:"redirectInMs,omitempty"`
}

// PaymentService drives the settlement flow for one bill at a time: open
// with the bill total, collect the split, submit, print, redirect.
type PaymentService struct {
	orders  gateway.OrderGateway
	printer *PrintService

	bannerTTL      time.Duration
	redirectDelay  time.Duration
	printStepDelay time.Duration

	mu    sync.Mutex
	panel PaymentPanel
}

func NewPaymentService(orders gateway.OrderGateway, printer *PrintService, bannerTTL, redirectDelay, printStepDelay time.Duration) *PaymentService {
	return &PaymentService{
		orders:         orders,
		printer:        printer,
		bannerTTL:      bannerTTL,
		redirectDelay:  redirectDelay,
		printStepDelay: printStepDelay,
		panel:          PaymentPanel{State: enum.PaymentClosed},
	}
}

// Open starts a payment for a bill, pre-filling the total as the online
// amount until the cashier splits it.
func (s *PaymentService) Open(bill *entity.BillSummary) (PaymentPanel, error) {
	if bill == nil {
		return PaymentPanel{}, apperror.ErrBadRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b := *bill
	s.panel = PaymentPanel{
		State:     enum.PaymentOpen,
		Bill:      &b,
		Breakdown: entity.PaymentBreakdown{Online: b.Total},
	}
	return s.panel, nil
}

// Close abandons the payment without settling.
func (s *PaymentService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panel = PaymentPanel{State: enum.PaymentClosed}
}

// Panel returns the current payment state.
func (s *PaymentService) Panel() PaymentPanel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel
}

// SetAmounts updates the editable components of the split. The online
// amount is always derived: total minus everything else.
func (s *PaymentService) SetAmounts(cash, due, complimentary, discount float64) (PaymentPanel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.panel.State != enum.PaymentOpen && s.panel.State != enum.PaymentFailed {
		return PaymentPanel{}, apperror.NewAppError(409, "No payment in progress")
	}
	s.panel.Breakdown.Cash = cash
	s.panel.Breakdown.Due = due
	s.panel.Breakdown.Complimentary = complimentary
	s.panel.Breakdown.Discount = discount
	s.panel.Breakdown.Online = s.panel.Bill.Total - cash - due - complimentary - discount
	s.panel.State = enum.PaymentOpen
	return s.panel, nil
}

// SetCustomer records the optional customer details. The name must be
// alphabetic; the mobile number keeps digits only, at most ten.
func (s *PaymentService) SetCustomer(name, mobile string) (PaymentPanel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.panel.State != enum.PaymentOpen && s.panel.State != enum.PaymentFailed {
		return PaymentPanel{}, apperror.NewAppError(409, "No payment in progress")
	}
	if name != "" && !utils.IsAlphabetic(name) {
		return PaymentPanel{}, apperror.NewValidationError([]apperror.FieldError{
			{Field: "customerName", Message: "Customer name must contain only letters"},
		})
	}
	s.panel.Breakdown.CustomerName = name
	s.panel.Breakdown.MobileNumber = utils.DigitsOnly(mobile, 10)
	s.panel.State = enum.PaymentOpen
	return s.panel, nil
}

// Submit settles the bill. On success the coupon prints immediately, the
// bill prints after the print-step delay, and the caller redirects after
// the redirect delay. A backend 404 means the order vanished underneath
// us: it is logged and the form stays open. Any other failure shows the
// failed banner and keeps the form open for another attempt.
func (s *PaymentService) Submit(ctx context.Context) (PaymentResult, error) {
	s.mu.Lock()
	if s.panel.State != enum.PaymentOpen && s.panel.State != enum.PaymentFailed {
		s.mu.Unlock()
		return PaymentResult{}, apperror.NewAppError(409, "No payment in progress")
	}
	s.panel.State = enum.PaymentSubmitting
	bill := *s.panel.Bill
	breakdown := s.panel.Breakdown
	s.mu.Unlock()

	update := entity.CouponUpdate{
		OrderNumber:         bill.OrderNumber,
		TotalAmount:         bill.Total,
		CashAmount:          breakdown.Cash,
		DueAmount:           breakdown.Due,
		ComplimentaryAmount: breakdown.Complimentary,
		OnlinePaymentAmount: breakdown.Online,
		Discount:            breakdown.Discount,
		CustomerName:        breakdown.CustomerName,
		MobileNumber:        breakdown.MobileNumber,
	}
	err := s.orders.SettleCoupon(ctx, bill.OrderNumber, update)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if apperror.IsUpstreamNotFound(err) {
			log.Printf("payment: order %s not found on backend, leaving form open", bill.OrderNumber)
			s.panel.State = enum.PaymentOpen
			return PaymentResult{Panel: s.panel}, nil
		}
		log.Printf("payment: settle order %s: %v", bill.OrderNumber, err)
		s.panel.State = enum.PaymentFailed
		return PaymentResult{
			Panel:  s.panel,
			Banner: NewBanner(BannerFailed, "Payment failed", s.bannerTTL),
		}, nil
	}

	s.panel.State = enum.PaymentSucceeded
	result := PaymentResult{
		Panel:        s.panel,
		Banner:       NewBanner(BannerSuccess, "Payment collected", s.bannerTTL),
		RedirectInMs: s.redirectDelay.Milliseconds(),
	}

	go s.printSettlement(bill, breakdown)
	return result, nil
}

// printSettlement prints the coupon, waits one print step, then prints
// the bill. Printer failures only log; the payment is already settled.
func (s *PaymentService) printSettlement(bill entity.BillSummary, breakdown entity.PaymentBreakdown) {
	if err := s.printer.PrintCoupon(&bill); err != nil {
		log.Printf("payment: print coupon for order %s: %v", bill.OrderNumber, err)
	}
	time.Sleep(s.printStepDelay)
	if err := s.printer.PrintBill(&bill, breakdown); err != nil {
		log.Printf("payment: print bill for order %s: %v", bill.OrderNumber, err)
	}
}
