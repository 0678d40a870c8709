package entity

import (
	"context"
	"errors"
	"time"
)

const (
	StatusNovo       = "NOVO"
	StatusEmContato  = "EM_CONTATO"
	StatusConvertido = "CONVERTIDO"
)

var ErrLeadNotFound = errors.New("lead não encontrado")
var ErrEmailAlreadyExists = errors.New("email já cadastrado")

// Lead é o registro capturado pelo formulário público.
// O índice composto (email, created_at) atende a checagem da janela de duplicidade.
type Lead struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome      string    `gorm:"not null" json:"nome"`
	Email     string    `gorm:"not null;index:idx_leads_email_created_at,priority:1" json:"email"`
	Telefone  string    `gorm:"not null" json:"telefone"`
	Status    string    `gorm:"not null;default:'NOVO';index" json:"status"`
	CreatedAt time.Time `gorm:"index:idx_leads_email_created_at,priority:2" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Lead) TableName() string {
	return "leads"
}

func ValidStatus(status string) bool {
	switch status {
	case StatusNovo, StatusEmContato, StatusConvertido:
		return true
	}
	return false
}

// LeadFilter é o filtro conjuntivo da listagem do dashboard.
// Campos zerados são ignorados.
type LeadFilter struct {
	Search    string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindRecentByEmail(ctx context.Context, email string, since time.Time) (*Lead, error)
	FindAll(ctx context.Context, filter LeadFilter) ([]Lead, error)
	Count(ctx context.Context, filter LeadFilter) (int64, error)
	CountByStatus(ctx context.Context, filter LeadFilter) (map[string]int64, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Lead, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
