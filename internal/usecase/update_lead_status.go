package usecase

import (
	"context"
	"errors"

	"captaleads/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewUpdateLeadStatusUseCase(repo entity.LeadRepositoryInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Repo: repo}
}

// Execute move o lead para qualquer status válido, em qualquer direção.
// Repetir o status atual também atualiza o updatedAt.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, id int, status string) (*entity.Lead, error) {
	if !entity.ValidStatus(status) {
		return nil, ValidationErrors{
			{Field: "status", Message: "Status deve ser: NOVO, EM_CONTATO ou CONVERTIDO"},
		}
	}

	lead, err := uc.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{
				Code:    CodeLeadNotFound,
				Message: "Lead não encontrado",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "erro ao atualizar status do lead: " + err.Error(),
		}
	}

	return lead, nil
}
