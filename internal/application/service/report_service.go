package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/internal/domain/gateway"
	"github.com/lotuspos/counter/pkg/utils"
)

const (
	reportSheetName = "MenuStatistics"
	reportFileName  = "menu_Report.xlsx"
)

// ReportService builds the menu sales report: backend rows for a date
// range with terminal-side totals, Excel export and printing.
type ReportService struct {
	reports gateway.ReportGateway
	printer *PrintService
}

func NewReportService(reports gateway.ReportGateway, printer *PrintService) *ReportService {
	return &ReportService{reports: reports, printer: printer}
}

// MenuReport fetches the aggregated rows for the inclusive date range and
// sums quantity and amount. Empty dates default to today.
func (s *ReportService) MenuReport(ctx context.Context, startDate, endDate string) (*entity.MenuReport, error) {
	if startDate == "" {
		startDate = utils.CurrentDate()
	}
	if endDate == "" {
		endDate = utils.CurrentDate()
	}

	rows, err := s.reports.MenuStatsByDate(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := &entity.MenuReport{
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      rows,
	}
	for _, row := range rows {
		report.TotalQuantity += row.Quantity
		report.TotalAmount += row.Price
	}
	return report, nil
}

// Export renders the report as an xlsx workbook and returns its bytes
// with the download file name.
func (s *ReportService) Export(report *entity.MenuReport) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheetName); err != nil {
		return nil, "", fmt.Errorf("report: rename sheet: %w", err)
	}

	headers := []string{"MenuName", "Quantity", "TotalAmount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(reportSheetName, cell, h); err != nil {
			return nil, "", fmt.Errorf("report: write header: %w", err)
		}
	}

	for i, row := range report.Rows {
		values := []interface{}{row.Name, row.Quantity, row.Price}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(reportSheetName, cell, v); err != nil {
				return nil, "", fmt.Errorf("report: write row %d: %w", i, err)
			}
		}
	}

	totalRow := len(report.Rows) + 2
	totals := []interface{}{"Total", report.TotalQuantity, report.TotalAmount}
	for j, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(j+1, totalRow)
		if err := f.SetCellValue(reportSheetName, cell, v); err != nil {
			return nil, "", fmt.Errorf("report: write totals: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("report: serialize workbook: %w", err)
	}
	return buf.Bytes(), reportFileName, nil
}

// Print sends the report to the counter printer.
func (s *ReportService) Print(report *entity.MenuReport) error {
	return s.printer.PrintReport(*report)
}
