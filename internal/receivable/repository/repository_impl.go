package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/smallbiznis/fiado/internal/receivable/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, receivable *domain.Receivable) error {
	return conn.WithContext(ctx).Exec(
		`INSERT INTO receivables (id, description, amount, due_date, status, note, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		receivable.ID,
		receivable.Description,
		receivable.Amount,
		receivable.DueDate,
		receivable.Status,
		receivable.Note,
		receivable.CreatedAt,
		receivable.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, conn *gorm.DB, id string) (*domain.Receivable, error) {
	var receivable domain.Receivable
	err := conn.WithContext(ctx).Raw(
		`SELECT id, description, amount, due_date, status, note, created_at, updated_at
		 FROM receivables WHERE id = ?`,
		id,
	).Scan(&receivable).Error
	if err != nil {
		return nil, err
	}
	if receivable.ID == "" {
		return nil, nil
	}
	return &receivable, nil
}

func (r *repo) List(ctx context.Context, conn *gorm.DB) ([]*domain.Receivable, error) {
	var receivables []*domain.Receivable
	err := conn.WithContext(ctx).
		Model(&domain.Receivable{}).
		Order("due_date asc, id asc").
		Find(&receivables).Error
	if err != nil {
		return nil, err
	}
	return receivables, nil
}

func (r *repo) Update(ctx context.Context, conn *gorm.DB, receivable *domain.Receivable) error {
	return conn.WithContext(ctx).Exec(
		`UPDATE receivables SET description = ?, amount = ?, due_date = ?, status = ?, note = ?, updated_at = ?
		 WHERE id = ?`,
		receivable.Description,
		receivable.Amount,
		receivable.DueDate,
		receivable.Status,
		receivable.Note,
		receivable.UpdatedAt,
		receivable.ID,
	).Error
}
