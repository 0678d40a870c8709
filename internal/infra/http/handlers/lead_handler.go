package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"captaleads/internal/infra/http/middleware"
	"captaleads/internal/usecase"
)

type LeadHandler struct {
	CreateUC       *usecase.CreateLeadUseCase
	ListUC         *usecase.ListLeadsUseCase
	StatsUC        *usecase.LeadStatsUseCase
	UpdateStatusUC *usecase.UpdateLeadStatusUseCase

	// Número fixo do WhatsApp comercial, formato E.164 sem o "+".
	WhatsAppNumber string

	rateLimiter *RateLimiter
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
	statsUC *usecase.LeadStatsUseCase,
	updateStatusUC *usecase.UpdateLeadStatusUseCase,
	whatsAppNumber string,
) *LeadHandler {
	return &LeadHandler{
		CreateUC:       createUC,
		ListUC:         listUC,
		StatsUC:        statsUC,
		UpdateStatusUC: updateStatusUC,
		WhatsAppNumber: whatsAppNumber,
		rateLimiter:    NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// Create trata POST /api/leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Muitas requisições. Tente novamente em instantes.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Lead cadastrado com sucesso!",
		"lead":    lead,
	})
}

func (h *LeadHandler) writeCreateError(w http.ResponseWriter, err error) {
	var validationErrs usecase.ValidationErrors
	if errors.As(err, &validationErrs) {
		middleware.RecordLeadRejected("validation")
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": validationErrs})
		return
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case usecase.CodeDuplicateRecent:
			middleware.RecordLeadRejected("duplicate_recent")
		case usecase.CodeEmailAlreadyExists:
			middleware.RecordLeadRejected("email_conflict")
		}
		writeError(w, http.StatusBadRequest, domainErr.Message)
		return
	}

	log.Printf("❌ Erro ao cadastrar lead: %v", err)
	writeError(w, http.StatusInternalServerError, "Erro interno do servidor")
}

// List trata GET /api/leads com os filtros do dashboard.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := usecase.ListLeadsInput{
		Search:    strings.TrimSpace(q.Get("search")),
		Status:    strings.TrimSpace(q.Get("status")),
		StartDate: strings.TrimSpace(q.Get("startDate")),
		EndDate:   strings.TrimSpace(q.Get("endDate")),
	}

	output, err := h.ListUC.Execute(r.Context(), input)
	if err != nil {
		var validationErrs usecase.ValidationErrors
		if errors.As(err, &validationErrs) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": validationErrs})
			return
		}
		log.Printf("❌ Erro ao buscar leads: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao buscar leads")
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// Stats trata GET /api/leads/stats.
func (h *LeadHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.Execute(r.Context())
	if err != nil {
		log.Printf("❌ Erro ao buscar estatísticas: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao buscar estatísticas")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// WhatsApp trata GET /api/leads/whatsapp: o frontend busca o deep link
// logo após um cadastro bem-sucedido e abre em nova aba.
func (h *LeadHandler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"whatsappUrl": "https://wa.me/" + h.WhatsAppNumber,
		"numero":      formatNumero(h.WhatsAppNumber),
	})
}

// UpdateStatus trata PUT /api/leads/{id}/status.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Lead não encontrado")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	lead, err := h.UpdateStatusUC.Execute(r.Context(), id, body.Status)
	if err != nil {
		var validationErrs usecase.ValidationErrors
		if errors.As(err, &validationErrs) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": validationErrs})
			return
		}

		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == usecase.CodeLeadNotFound {
			writeError(w, http.StatusNotFound, domainErr.Message)
			return
		}

		log.Printf("❌ Erro ao atualizar status do lead: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	middleware.RecordStatusTransition(lead.Status)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Status do lead atualizado com sucesso!",
		"lead":    lead,
	})
}

// formatNumero monta a exibição "DD NNNNN-NNNN" a partir do E.164 nacional.
func formatNumero(number string) string {
	digits := strings.TrimPrefix(number, "55")
	if len(digits) != 11 {
		return digits
	}
	return digits[:2] + " " + digits[2:7] + "-" + digits[7:]
}
