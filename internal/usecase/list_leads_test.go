package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"captaleads/internal/entity"
	"captaleads/internal/usecase"
)

// TestListLeadsStatusCountZeroDefaults - status ausentes do agrupamento viram zero
func TestListLeadsStatusCountZeroDefaults(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := usecase.NewListLeadsUseCase(mockRepo)

	mockRepo.On("FindAll", mock.Anything, mock.Anything).Return([]entity.Lead{}, nil)
	mockRepo.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)
	mockRepo.On("CountByStatus", mock.Anything, mock.Anything).
		Return(map[string]int64{entity.StatusConvertido: 2}, nil)

	output, err := uc.Execute(context.Background(), usecase.ListLeadsInput{
		Status: entity.StatusConvertido,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), output.Total)
	assert.Equal(t, int64(0), output.StatusCount[entity.StatusNovo])
	assert.Equal(t, int64(0), output.StatusCount[entity.StatusEmContato])
	assert.Equal(t, int64(2), output.StatusCount[entity.StatusConvertido])
	assert.Equal(t, entity.StatusConvertido, output.Filters.Status)
}

// TestListLeadsParsesDateRange - startDate/endDate viram limites no filtro
func TestListLeadsParsesDateRange(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := usecase.NewListLeadsUseCase(mockRepo)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	matchFilter := mock.MatchedBy(func(f entity.LeadFilter) bool {
		return f.StartDate != nil && f.StartDate.Equal(start) &&
			f.EndDate != nil && f.EndDate.Equal(end) &&
			f.Search == "ana"
	})

	mockRepo.On("FindAll", mock.Anything, matchFilter).Return([]entity.Lead{}, nil)
	mockRepo.On("Count", mock.Anything, matchFilter).Return(int64(0), nil)
	mockRepo.On("CountByStatus", mock.Anything, matchFilter).Return(map[string]int64{}, nil)

	output, err := uc.Execute(context.Background(), usecase.ListLeadsInput{
		Search:    "ana",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2025-03-01", output.Filters.StartDate)
	mockRepo.AssertExpectations(t)
}

// TestListLeadsInvalidDate - data malformada é rejeitada antes do banco
func TestListLeadsInvalidDate(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := usecase.NewListLeadsUseCase(mockRepo)

	_, err := uc.Execute(context.Background(), usecase.ListLeadsInput{
		StartDate: "31/03/2025",
	})

	var validationErrs usecase.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "startDate", validationErrs[0].Field)

	mockRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

// TestLeadStats - contagem global com TOTAL e zeros preenchidos
func TestLeadStats(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := usecase.NewLeadStatsUseCase(mockRepo)

	mockRepo.On("CountByStatus", mock.Anything, entity.LeadFilter{}).
		Return(map[string]int64{entity.StatusNovo: 5, entity.StatusEmContato: 3}, nil)
	mockRepo.On("Count", mock.Anything, entity.LeadFilter{}).Return(int64(8), nil)

	stats, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(5), stats[entity.StatusNovo])
	assert.Equal(t, int64(3), stats[entity.StatusEmContato])
	assert.Equal(t, int64(0), stats[entity.StatusConvertido])
	assert.Equal(t, int64(8), stats["TOTAL"])
}
