package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/fieldops-api/internal/application/dto"
	"github.com/jhoicas/fieldops-api/internal/application/usecase"
	"github.com/jhoicas/fieldops-api/internal/domain"
)

const csvColumns = 7

type importer struct {
	items      *usecase.ItemUseCase
	categories *usecase.CategoryUseCase
	log        zerolog.Logger
}

type rowError struct {
	Line int
	Err  error
}

type importResult struct {
	Created int
	Skipped int
	Failed  []rowError
}

// Import crea un ítem por fila. Un error en una fila no detiene la importación;
// solo errores de lectura del archivo o de persistencia abortan.
func (imp *importer) Import(ctx context.Context, companyID string, r io.Reader) (*importResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	text, err := decodeText(raw)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	res := &importResult{}
	categoryIDs := make(map[string]string)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "sku") {
			continue
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}

		req, categoryName, err := parseRow(rec)
		if err != nil {
			res.Failed = append(res.Failed, rowError{Line: line, Err: err})
			continue
		}
		if categoryName != "" {
			id, ok := categoryIDs[strings.ToLower(categoryName)]
			if !ok {
				cat, err := imp.categories.FindOrCreate(ctx, companyID, categoryName)
				if err != nil {
					return res, fmt.Errorf("línea %d: categoría %q: %w", line, categoryName, err)
				}
				id = cat.ID
				categoryIDs[strings.ToLower(categoryName)] = id
			}
			req.CategoryID = id
		}

		_, err = imp.items.Create(ctx, companyID, req)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, domain.ErrDuplicate):
			imp.log.Debug().Str("sku", req.SKU).Msg("SKU ya existe, se omite")
			res.Skipped++
		case errors.Is(err, domain.ErrInvalidInput):
			res.Failed = append(res.Failed, rowError{Line: line, Err: err})
		default:
			return res, fmt.Errorf("línea %d: %w", line, err)
		}
	}
	return res, nil
}

// decodeText devuelve el contenido como UTF-8. Si los bytes no son UTF-8 válido se asume
// Windows-1252 (exportación de Excel en Windows). Se descarta el BOM.
func decodeText(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("decodificar Windows-1252: %w", err)
	}
	return string(out), nil
}

func parseRow(rec []string) (dto.CreateItemRequest, string, error) {
	if len(rec) < csvColumns {
		return dto.CreateItemRequest{}, "", fmt.Errorf("se esperaban %d columnas, llegaron %d", csvColumns, len(rec))
	}
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	unitPrice, err := parseMoney(rec[3])
	if err != nil {
		return dto.CreateItemRequest{}, "", fmt.Errorf("unit_price: %w", err)
	}
	costPrice, err := parseMoney(rec[4])
	if err != nil {
		return dto.CreateItemRequest{}, "", fmt.Errorf("cost_price: %w", err)
	}
	qty, err := parseInt(rec[5])
	if err != nil {
		return dto.CreateItemRequest{}, "", fmt.Errorf("quantity: %w", err)
	}
	minQty, err := parseInt(rec[6])
	if err != nil {
		return dto.CreateItemRequest{}, "", fmt.Errorf("min_quantity: %w", err)
	}
	return dto.CreateItemRequest{
		SKU:         rec[0],
		Name:        rec[1],
		UnitPrice:   unitPrice,
		CostPrice:   costPrice,
		Quantity:    qty,
		MinQuantity: minQty,
	}, rec[2], nil
}

// parseMoney acepta "1234.50" y también "1234,50" (coma decimal).
func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

func parseInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
