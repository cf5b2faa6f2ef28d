package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
	"github.com/gstbill/gst_billing_app/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerReportingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &reportingHandler{reportingService: services.Reporting}

	reports := rg.Group("/reports", caOnly())
	reports.GET("/dashboard", h.getDashboard)
	reports.GET("/bills", h.getDetailedReport)
	reports.GET("/bills/export", h.exportBills)
}

func (h *reportingHandler) getDashboard(c *gin.Context) {
	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	kpis, err := h.reportingService.GetDashboardKPIs(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, kpis)
}

func (h *reportingHandler) getDetailedReport(c *gin.Context) {
	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	rows, err := h.reportingService.GetDetailedReport(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}

// exportBills streams the filtered bill rows as an xlsx attachment.
func (h *reportingHandler) exportBills(c *gin.Context) {
	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	f, err := h.reportingService.ExportBillsWorkbook(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("bills_report_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to stream workbook", "error", err.Error())
	}
}
