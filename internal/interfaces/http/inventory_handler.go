package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldops-api/internal/application/analytics"
	"github.com/jhoicas/fieldops-api/internal/application/dto"
	"github.com/jhoicas/fieldops-api/internal/application/inventory"
)

// InventoryHandler maneja movimientos, resumen y reposición (protegido).
type InventoryHandler struct {
	uc            *inventory.RegisterMovementUseCase
	history       *inventory.MovementHistoryUseCase
	replenishment *inventory.ReplenishmentUseCase
	summary       *analytics.SummaryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	uc *inventory.RegisterMovementUseCase,
	history *inventory.MovementHistoryUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	summary *analytics.SummaryUseCase,
) *InventoryHandler {
	return &InventoryHandler{uc: uc, history: history, replenishment: replenishment, summary: summary}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  in suma, out resta (rechazado si deja stock negativo), adjust fija la cantidad absoluta.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterMovementRequest  true  "item_id, type (in|out|adjust), quantity > 0, notes"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegisterMovementFromRequest(c.UserContext(), companyID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  string  false  "Filtrar por ítem"
// @Param        from     query  string  false  "Desde (RFC3339)"
// @Param        to       query  string  false  "Hasta (RFC3339)"
// @Param        limit    query  int     false  "Límite (máx 100)"
// @Param        offset   query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	page, err := pageFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	from, err := timeFromQuery(c, "from")
	if err != nil {
		return respondError(c, err)
	}
	to, err := timeFromQuery(c, "to")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.history.List(c.UserContext(), companyID, dto.MovementListQuery{
		PageRequest: page,
		ItemID:      c.Query("item_id"),
		From:        from,
		To:          to,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetSummary godoc
// @Summary      Resumen de inventario
// @Description  Conteos por estado y valor total (costo × cantidad), calculado al momento.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) GetSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.summary.GetSummary(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Ítems no descontinuados en o por debajo de su mínimo, con la cantidad sugerida
//
//	de pedido, ordenados por déficit.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment-list [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}

	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}
