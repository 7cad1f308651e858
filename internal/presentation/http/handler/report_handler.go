package handler

import (
	"fmt"
	"time"

	"github.com/cancha-central/pos-api/internal/application/service"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/presentation/http/dto/request"
	"github.com/cancha-central/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles consolidated report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func reportFilter(c *gin.Context) (*service.ReportFilter, error) {
	var req request.ReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, err
	}

	filter := &service.ReportFilter{}
	if req.Type != "" {
		if txType, ok := enum.ParseTransactionType(req.Type); ok {
			filter.Type = &txType
		}
	}
	if req.Method != "" {
		if method, ok := enum.ParsePaymentMethod(req.Method); ok {
			filter.Method = &method
		}
	}
	if req.StartDate != "" {
		if start, err := time.Parse(time.RFC3339, req.StartDate); err == nil {
			filter.StartDate = &start
		}
	}
	if req.EndDate != "" {
		if end, err := time.Parse(time.RFC3339, req.EndDate); err == nil {
			filter.EndDate = &end
		}
	}
	return filter, nil
}

// Get builds and returns the consolidated report
func (h *ReportHandler) Get(c *gin.Context) {
	filter, err := reportFilter(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	report, err := h.reportService.BuildReport(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}

// Export renders the filtered report as a downloadable file
func (h *ReportHandler) Export(c *gin.Context) {
	filter, err := reportFilter(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	report, err := h.reportService.BuildReport(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	stamp := time.Now().Format("2006-01-02")
	format := c.DefaultQuery("format", "xlsx")

	switch format {
	case "xlsx":
		data, err := h.reportService.ExportXLSX(report)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report_%s.xlsx", stamp))
		c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "pdf":
		data, err := h.reportService.ExportPDF(report)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report_%s.pdf", stamp))
		c.Data(200, "application/pdf", data)
	case "csv":
		data, err := h.reportService.ExportCSV(report)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report_%s.csv", stamp))
		c.Data(200, "text/csv", data)
	default:
		response.BadRequest(c, "Unknown export format")
	}
}
