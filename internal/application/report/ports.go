package report

import (
	"context"
	"time"

	"github.com/jhoicas/fieldops-api/internal/domain/entity"
	"github.com/jhoicas/fieldops-api/internal/domain/inventory"
)

// StockReportData datos ya agregados que recibe el generador.
type StockReportData struct {
	CompanyID   string
	GeneratedAt time.Time
	Items       []*entity.Item
	Summary     inventory.Summary
}

// StockReportGenerator puerto de salida para renderizar el reporte de existencias.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, data StockReportData) ([]byte, error)
}
