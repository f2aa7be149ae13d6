package inventory

import (
	"context"

	"github.com/jhoicas/fieldops-api/internal/application/dto"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement(ctx, MovementInputDTO).
// Usar desde handlers HTTP o desde otros casos de uso que tengan companyID, userID y dto.RegisterMovementRequest.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(
	ctx context.Context,
	companyID, userID string,
	in dto.RegisterMovementRequest,
) (*dto.RegisterMovementResponse, error) {
	input := MovementInputDTO{
		CompanyID: companyID,
		UserID:    userID,
		ItemID:    in.ItemID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
	}
	mov, item, err := uc.apply(ctx, input)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterMovementResponse{
		Movement: dto.NewMovementResponse(mov),
		Item:     dto.NewItemResponse(item),
	}, nil
}
