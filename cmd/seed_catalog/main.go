// seed_catalog importa un catálogo de ítems desde CSV separado por ';'.
//
// Uso: go run ./cmd/seed_catalog <ruta/catalogo.csv> <company_id>
// Columnas: sku;name;category;unit_price;cost_price;quantity;min_quantity
// La primera fila se omite si es encabezado. Archivos exportados desde Excel en
// Windows-1252 se decodifican automáticamente.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/fieldops-api/internal/application/inventory"
	"github.com/jhoicas/fieldops-api/internal/application/usecase"
	"github.com/jhoicas/fieldops-api/internal/infrastructure/storage"
	"github.com/jhoicas/fieldops-api/pkg/config"
	"github.com/jhoicas/fieldops-api/pkg/logger"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed_catalog <archivo.csv> <company_id>")
		os.Exit(2)
	}
	csvPath, companyID := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, App: "seed_catalog"})

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", csvPath).Msg("abrir CSV")
	}
	defer f.Close()

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer store.Close()

	retry := inventory.RetryPolicy{MaxRetries: cfg.Ledger.MaxRetries, Backoff: cfg.Ledger.Backoff()}
	imp := &importer{
		items:      usecase.NewItemUseCase(store.Items, store.Categories, store.Tx, retry, log.Component("catalog")),
		categories: usecase.NewCategoryUseCase(store.Categories),
		log:        log.Component("seed_catalog"),
	}

	res, err := imp.Import(ctx, companyID, f)
	if err != nil {
		log.Fatal().Err(err).Msg("importar catálogo")
	}
	for _, re := range res.Failed {
		log.Warn().Int("line", re.Line).Err(re.Err).Msg("fila rechazada")
	}
	fmt.Printf("Importados %d ítems, %d omitidos (SKU existente), %d con error\n",
		res.Created, res.Skipped, len(res.Failed))
}
