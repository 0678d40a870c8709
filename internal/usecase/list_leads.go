package usecase

import (
	"context"
	"time"

	"captaleads/internal/entity"
)

type ListLeadsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewListLeadsUseCase(repo entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, input ListLeadsInput) (*ListLeadsOutput, error) {
	filter, errs := buildLeadFilter(input)
	if len(errs) > 0 {
		return nil, errs
	}

	// Três leituras sobre o mesmo filtro: lista ordenada, total e
	// contagem agrupada por status. Sem paginação, o dashboard recebe
	// o conjunto filtrado inteiro.
	leads, err := uc.Repo.FindAll(ctx, filter)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "erro ao buscar leads: " + err.Error()}
	}

	total, err := uc.Repo.Count(ctx, filter)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "erro ao contar leads: " + err.Error()}
	}

	grouped, err := uc.Repo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "erro ao agrupar leads: " + err.Error()}
	}

	return &ListLeadsOutput{
		Leads: leads,
		Total: total,
		Filters: ListFilters{
			Search:    input.Search,
			Status:    input.Status,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
		},
		StatusCount: fillStatusCount(grouped),
	}, nil
}

func buildLeadFilter(input ListLeadsInput) (entity.LeadFilter, ValidationErrors) {
	var errs ValidationErrors

	filter := entity.LeadFilter{
		Search: input.Search,
		Status: input.Status,
	}

	if input.Status != "" && !entity.ValidStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "Status deve ser: NOVO, EM_CONTATO ou CONVERTIDO"})
	}

	if input.StartDate != "" {
		t, err := parseDate(input.StartDate)
		if err != nil {
			errs = append(errs, ValidationError{"startDate", "Data inicial inválida"})
		} else {
			filter.StartDate = &t
		}
	}

	if input.EndDate != "" {
		t, err := parseDate(input.EndDate)
		if err != nil {
			errs = append(errs, ValidationError{"endDate", "Data final inválida"})
		} else {
			filter.EndDate = &t
		}
	}

	return filter, errs
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// fillStatusCount garante zero para status ausentes do agrupamento.
func fillStatusCount(grouped map[string]int64) map[string]int64 {
	counts := map[string]int64{
		entity.StatusNovo:       0,
		entity.StatusEmContato:  0,
		entity.StatusConvertido: 0,
	}
	for status, total := range grouped {
		counts[status] = total
	}
	return counts
}
