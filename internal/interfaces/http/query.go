package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldops-api/internal/application/dto"
	"github.com/jhoicas/fieldops-api/internal/domain"
)

// pageFromQuery lee limit/offset. Valores no numéricos son error de validación.
func pageFromQuery(c *fiber.Ctx) (dto.PageRequest, error) {
	var p dto.PageRequest
	for _, f := range []struct {
		name string
		dst  *int
	}{{"limit", &p.Limit}, {"offset", &p.Offset}} {
		raw := c.Query(f.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, domain.NewValidationError(f.name, "debe ser un entero")
		}
		*f.dst = n
	}
	return p, nil
}

// timeFromQuery parsea un parámetro RFC3339 opcional.
func timeFromQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "debe tener formato RFC3339")
	}
	t = t.UTC()
	return &t, nil
}
