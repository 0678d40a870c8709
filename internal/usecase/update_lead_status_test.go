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

// TestUpdateStatusInvalidValue - status fora do enum não toca o banco
func TestUpdateStatusInvalidValue(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := usecase.NewUpdateLeadStatusUseCase(mockRepo)

	_, err := uc.Execute(context.Background(), 1, "QUALIFICADO")

	var validationErrs usecase.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "status", validationErrs[0].Field)

	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// TestUpdateStatusNotFound - id desconhecido vira LEAD_NOT_FOUND
func TestUpdateStatusNotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := usecase.NewUpdateLeadStatusUseCase(mockRepo)

	mockRepo.On("UpdateStatus", mock.Anything, 999, entity.StatusEmContato).
		Return(nil, entity.ErrLeadNotFound)

	_, err := uc.Execute(context.Background(), 999, entity.StatusEmContato)

	var domainErr *usecase.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, usecase.CodeLeadNotFound, domainErr.Code)
}

// TestUpdateStatusSuccess - qualquer direção de transição é aceita
func TestUpdateStatusSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := usecase.NewUpdateLeadStatusUseCase(mockRepo)

	createdAt := time.Now().Add(-1 * time.Hour)
	updated := &entity.Lead{
		ID:        7,
		Nome:      "Carlos Oliveira",
		Email:     "carlos.oliveira@hotmail.com",
		Telefone:  "21976543210",
		Status:    entity.StatusConvertido,
		CreatedAt: createdAt,
		UpdatedAt: time.Now(),
	}
	mockRepo.On("UpdateStatus", mock.Anything, 7, entity.StatusConvertido).
		Return(updated, nil)

	lead, err := uc.Execute(context.Background(), 7, entity.StatusConvertido)

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusConvertido, lead.Status)
	assert.True(t, lead.UpdatedAt.After(lead.CreatedAt))
}
