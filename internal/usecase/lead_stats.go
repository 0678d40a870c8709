package usecase

import (
	"context"

	"captaleads/internal/entity"
)

type LeadStatsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewLeadStatsUseCase(repo entity.LeadRepositoryInterface) *LeadStatsUseCase {
	return &LeadStatsUseCase{Repo: repo}
}

// Execute devolve as contagens globais por status mais o TOTAL,
// calculadas sobre a base inteira (sem filtro).
func (uc *LeadStatsUseCase) Execute(ctx context.Context) (map[string]int64, error) {
	grouped, err := uc.Repo.CountByStatus(ctx, entity.LeadFilter{})
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "erro ao buscar estatísticas: " + err.Error()}
	}

	total, err := uc.Repo.Count(ctx, entity.LeadFilter{})
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "erro ao contar leads: " + err.Error()}
	}

	stats := fillStatusCount(grouped)
	stats["TOTAL"] = total
	return stats, nil
}
