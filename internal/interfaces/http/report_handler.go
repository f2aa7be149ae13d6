package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldops-api/internal/application/report"
)

// ReportHandler sirve reportes descargables.
type ReportHandler struct {
	stock *report.StockReportUseCase
}

func NewReportHandler(stock *report.StockReportUseCase) *ReportHandler {
	return &ReportHandler{stock: stock}
}

// DownloadInventoryPDF godoc
// @Summary      Reporte de existencias en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) DownloadInventoryPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	pdfBytes, filename, err := h.stock.Download(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
