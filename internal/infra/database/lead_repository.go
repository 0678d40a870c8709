package database

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"captaleads/internal/entity"
)

type LeadRepository struct {
	DB *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if err := r.DB.WithContext(ctx).Create(lead).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}
	return nil
}

// FindRecentByEmail busca um lead com o mesmo email criado a partir de since.
// Retorna nil (sem erro) quando não há duplicata na janela.
func (r *LeadRepository) FindRecentByEmail(ctx context.Context, email string, since time.Time) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.DB.WithContext(ctx).
		Where("email = ? AND created_at >= ?", email, since).
		First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// applyFilter monta o filtro conjuntivo da listagem. LOWER + LIKE em vez de
// ILIKE para a mesma query valer no postgres e no sqlite dos testes.
func applyFilter(q *gorm.DB, filter entity.LeadFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		q = q.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("created_at <= ?", *filter.EndDate)
	}
	return q
}

func (r *LeadRepository) FindAll(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	leads := []entity.Lead{}
	err := applyFilter(r.DB.WithContext(ctx).Model(&entity.Lead{}), filter).
		Order("created_at DESC").
		Find(&leads).Error
	return leads, err
}

func (r *LeadRepository) Count(ctx context.Context, filter entity.LeadFilter) (int64, error) {
	var total int64
	err := applyFilter(r.DB.WithContext(ctx).Model(&entity.Lead{}), filter).
		Count(&total).Error
	return total, err
}

func (r *LeadRepository) CountByStatus(ctx context.Context, filter entity.LeadFilter) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}

	err := applyFilter(r.DB.WithContext(ctx).Model(&entity.Lead{}), filter).
		Select("status, COUNT(id) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int, status string) (*entity.Lead, error) {
	var lead entity.Lead
	if err := r.DB.WithContext(ctx).First(&lead, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	// Save atualiza o updated_at mesmo quando o status repete.
	lead.Status = status
	if err := r.DB.WithContext(ctx).Save(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&entity.Lead{}).
		Where("email = ?", email).
		Count(&total).Error
	return total > 0, err
}
