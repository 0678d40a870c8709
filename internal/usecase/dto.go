package usecase

import "captaleads/internal/entity"

type CreateLeadInput struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

type ListLeadsInput struct {
	Search    string
	Status    string
	StartDate string
	EndDate   string
}

// ListFilters ecoa os filtros recebidos, como o dashboard espera.
type ListFilters struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type ListLeadsOutput struct {
	Leads       []entity.Lead    `json:"leads"`
	Total       int64            `json:"total"`
	Filters     ListFilters      `json:"filters"`
	StatusCount map[string]int64 `json:"statusCount"`
}
