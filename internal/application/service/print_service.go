package service

import (
	"fmt"

	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/pkg/printer"
	"github.com/lotuspos/counter/pkg/utils"
)

// PrintService renders coupons, bills and reports to ESC/POS and sends
// them to the counter's printer.
type PrintService struct {
	printer printer.Printer
	width   int
}

func NewPrintService(p printer.Printer, width int) *PrintService {
	if width <= 0 {
		width = 32
	}
	return &PrintService{printer: p, width: width}
}

// PrintCoupon prints the kitchen coupon for a bill: table, order number
// and the ordered items.
func (s *PrintService) PrintCoupon(bill *entity.BillSummary) error {
	doc := printer.NewDocument(s.width)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text("COUPON").
		SetFontSize(printer.FontNormal).
		SetBold(false).
		TextF("Table %s", bill.TableName).
		TextF("Order #%s", bill.OrderNumber).
		SetAlign(printer.AlignLeft).
		Separator('-')
	for _, item := range bill.Items {
		doc.TextF("%dx %s", item.Quantity, item.Name)
	}
	doc.Separator('-').FeedLines(3).Cut()
	return s.printer.Print(doc.Bytes())
}

// PrintBill prints the customer bill with the payment breakdown.
func (s *PrintService) PrintBill(bill *entity.BillSummary, breakdown entity.PaymentBreakdown) error {
	doc := printer.NewDocument(s.width)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("BILL").
		SetBold(false).
		TextF("Table %s  Order #%s", bill.TableName, bill.OrderNumber).
		SetAlign(printer.AlignLeft).
		Separator('-')
	for _, item := range bill.Items {
		doc.ItemLine(item.Quantity, item.Name, money(item.Price*float64(item.Quantity)))
	}
	doc.Separator('-').
		SetBold(true).
		KeyValue("Total", money(bill.Total)).
		SetBold(false)
	if breakdown.Discount != 0 {
		doc.KeyValue("Discount", money(breakdown.Discount))
	}
	doc.KeyValue("Cash", money(breakdown.Cash)).
		KeyValue("Online", money(breakdown.Online))
	if breakdown.Due != 0 {
		doc.KeyValue("Due", money(breakdown.Due))
	}
	if breakdown.Complimentary != 0 {
		doc.KeyValue("Complimentary", money(breakdown.Complimentary))
	}
	if breakdown.CustomerName != "" {
		doc.Separator('-').TextF("Customer: %s", breakdown.CustomerName)
		if breakdown.MobileNumber != "" {
			doc.TextF("Mobile: %s", breakdown.MobileNumber)
		}
	}
	doc.FeedLines(3).Cut()
	return s.printer.Print(doc.Bytes())
}

// PrintReport prints the menu sales report for a date range.
func (s *PrintService) PrintReport(report entity.MenuReport) error {
	doc := printer.NewDocument(s.width)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("MENU REPORT").
		SetBold(false).
		TextF("%s - %s",
			utils.FormatDisplayDate(report.StartDate),
			utils.FormatDisplayDate(report.EndDate)).
		SetAlign(printer.AlignLeft).
		Separator('-')
	for _, row := range report.Rows {
		doc.StatLine(row.Name, row.Quantity, money(row.Price))
	}
	doc.Separator('-').
		SetBold(true).
		KeyValue(fmt.Sprintf("Total (%d)", report.TotalQuantity), money(report.TotalAmount)).
		SetBold(false).
		FeedLines(3).
		Cut()
	return s.printer.Print(doc.Bytes())
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
