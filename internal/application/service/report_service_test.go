package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lotuspos/counter/internal/domain/entity"
)

func reportBackend() *fakeBackend {
	return &fakeBackend{
		menuStats: []entity.MenuStat{
			{Name: "Masala Dosa", Quantity: 12, Price: 960},
			{Name: "Coffee", Quantity: 30, Price: 1200},
		},
	}
}

func TestMenuReportSumsTotals(t *testing.T) {
	svc := NewReportService(reportBackend(), NewPrintService(&capturePrinter{}, 32))

	report, err := svc.MenuReport(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 42, report.TotalQuantity)
	assert.Equal(t, 2160.0, report.TotalAmount)
	assert.Len(t, report.Rows, 2)
}

func TestMenuReportDefaultsDatesToToday(t *testing.T) {
	svc := NewReportService(reportBackend(), NewPrintService(&capturePrinter{}, 32))

	report, err := svc.MenuReport(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, report.StartDate)
	assert.Equal(t, report.StartDate, report.EndDate)
}

func TestExportWritesMenuStatisticsSheet(t *testing.T) {
	svc := NewReportService(reportBackend(), NewPrintService(&capturePrinter{}, 32))
	report, err := svc.MenuReport(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	data, name, err := svc.Export(report)
	require.NoError(t, err)
	assert.Equal(t, "menu_Report.xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("MenuStatistics")
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 2 rows + totals

	assert.Equal(t, []string{"MenuName", "Quantity", "TotalAmount"}, rows[0])
	assert.Equal(t, "Masala Dosa", rows[1][0])
	assert.Equal(t, "12", rows[1][1])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "42", rows[3][1])
	assert.Equal(t, "2160", rows[3][2])
}

func TestPrintReportRendersDateRangeAndTotals(t *testing.T) {
	printer := &capturePrinter{}
	svc := NewReportService(reportBackend(), NewPrintService(printer, 32))
	report, err := svc.MenuReport(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	require.NoError(t, svc.Print(report))
	out := printer.allOutput()
	assert.Contains(t, out, "MENU REPORT")
	assert.Contains(t, out, "01/08/2026 - 31/08/2026")
	assert.Contains(t, out, "Coffee")
	assert.Contains(t, out, "2160.00")
}
