package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"captaleads/internal/entity"
	"captaleads/internal/infra/queue"
)

// DuplicateWindow é a janela deslizante em que um email repetido é rejeitado.
const DuplicateWindow = 60 * time.Minute

type CreateLeadUseCase struct {
	Repo  entity.LeadRepositoryInterface
	Queue queue.QueueProducerInterface

	// Now é injetável para os testes da janela de duplicidade.
	Now func() time.Time
}

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface, producer queue.QueueProducerInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:  repo,
		Queue: producer,
		Now:   time.Now,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	// Checagem da última hora. É um check-then-act: duas submissões
	// simultâneas do mesmo email podem passar pela checagem antes de
	// qualquer insert.
	windowStart := uc.Now().Add(-DuplicateWindow)
	existing, err := uc.Repo.FindRecentByEmail(ctx, input.Email, windowStart)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "erro ao consultar leads recentes: " + err.Error(),
		}
	}
	if existing != nil {
		return nil, &DomainError{
			Code:    CodeDuplicateRecent,
			Message: "Já existe um lead com este email cadastrado na última hora",
		}
	}

	lead := &entity.Lead{
		Nome:     strings.TrimSpace(input.Nome),
		Email:    strings.TrimSpace(input.Email),
		Telefone: strings.TrimSpace(input.Telefone),
		Status:   entity.StatusNovo,
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			// Constraint de unicidade no banco, independente da janela.
			return nil, &DomainError{
				Code:    CodeEmailAlreadyExists,
				Message: "Este email já está cadastrado no sistema",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "erro ao cadastrar lead: " + err.Error(),
		}
	}

	// Notificação é melhor-esforço: o lead já está persistido.
	if uc.Queue != nil {
		payload := queue.LeadCapturedPayload{
			LeadID:     lead.ID,
			Nome:       lead.Nome,
			Email:      lead.Email,
			Telefone:   lead.Telefone,
			CapturedAt: lead.CreatedAt,
		}
		if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
			log.Printf("⚠️ Falha ao publicar lead %d na fila: %v", lead.ID, err)
		}
	}

	return lead, nil
}
