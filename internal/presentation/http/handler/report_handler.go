package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotuspos/counter/internal/application/service"
	"github.com/lotuspos/counter/internal/presentation/http/dto/response"
)

// ReportHandler exposes the menu sales report with Excel export and
// printing. Access control lives in the report middleware.
type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Menu returns the report for the date range in the query string.
func (h *ReportHandler) Menu(c *gin.Context) {
	report, err := h.reports.MenuReport(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu report", report)
}

// Export streams the report as an xlsx download.
func (h *ReportHandler) Export(c *gin.Context) {
	report, err := h.reports.MenuReport(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, name, err := h.reports.Export(report)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Print sends the report to the counter printer.
func (h *ReportHandler) Print(c *gin.Context) {
	report, err := h.reports.MenuReport(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.reports.Print(report); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report printed", nil)
}
