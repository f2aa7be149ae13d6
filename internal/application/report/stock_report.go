package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fieldops-api/internal/domain"
	"github.com/jhoicas/fieldops-api/internal/domain/inventory"
	"github.com/jhoicas/fieldops-api/internal/domain/repository"
)

// StockReportUseCase genera el reporte PDF de existencias de una empresa.
type StockReportUseCase struct {
	itemRepo  repository.ItemRepository
	generator StockReportGenerator
	now       func() time.Time
}

// NewStockReportUseCase construye el caso de uso inyectando el generador.
func NewStockReportUseCase(itemRepo repository.ItemRepository, generator StockReportGenerator) *StockReportUseCase {
	return &StockReportUseCase{
		itemRepo:  itemRepo,
		generator: generator,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Download devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *StockReportUseCase) Download(ctx context.Context, companyID string) (pdfBytes []byte, filename string, err error) {
	if companyID == "" {
		return nil, "", domain.NewValidationError("company_id", "es requerido")
	}
	items, err := uc.itemRepo.ListByCompany(ctx, companyID, repository.ItemFilter{})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar ítems: %w", err)
	}
	at := uc.now()
	data := StockReportData{
		CompanyID:   companyID,
		GeneratedAt: at,
		Items:       items,
		Summary:     inventory.Summarize(items),
	}
	pdfBytes, err = uc.generator.GenerateStockReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("inventario_%s.pdf", at.Format("20060102"))
	return pdfBytes, filename, nil
}
