package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/smallbiznis/fiado/internal/debt/domain"
	"github.com/smallbiznis/fiado/pkg/db"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertDebt(ctx context.Context, conn *gorm.DB, debt *domain.Debt) error {
	return conn.WithContext(ctx).Exec(
		`INSERT INTO debts (id, name, phone, amount, date, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		debt.ID,
		debt.Name,
		debt.Phone,
		debt.Amount,
		debt.Date,
		debt.Status,
		debt.Notes,
		debt.CreatedAt,
		debt.UpdatedAt,
	).Error
}

func (r *repo) FindDebtByID(ctx context.Context, conn *gorm.DB, id string) (*domain.Debt, error) {
	var debt domain.Debt
	err := conn.WithContext(ctx).Raw(
		`SELECT id, name, phone, amount, date, status, notes, created_at, updated_at
		 FROM debts WHERE id = ?`,
		id,
	).Scan(&debt).Error
	if err != nil {
		return nil, err
	}
	if debt.ID == "" {
		return nil, nil
	}
	return &debt, nil
}

func (r *repo) ListDebts(ctx context.Context, conn *gorm.DB) ([]*domain.Debt, error) {
	var debts []*domain.Debt
	err := conn.WithContext(ctx).
		Model(&domain.Debt{}).
		Order("created_at asc, id asc").
		Find(&debts).Error
	if err != nil {
		return nil, err
	}
	return debts, nil
}

func (r *repo) UpdateDebt(ctx context.Context, conn *gorm.DB, debt *domain.Debt) error {
	return conn.WithContext(ctx).Exec(
		`UPDATE debts SET name = ?, phone = ?, amount = ?, date = ?, status = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		debt.Name,
		debt.Phone,
		debt.Amount,
		debt.Date,
		debt.Status,
		debt.Notes,
		debt.UpdatedAt,
		debt.ID,
	).Error
}

func (r *repo) InsertPayment(ctx context.Context, conn *gorm.DB, payment *domain.Payment) error {
	return conn.WithContext(ctx).Exec(
		`INSERT INTO payments (id, debt_id, name, amount, date, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		payment.ID,
		payment.DebtID,
		payment.Name,
		payment.Amount,
		payment.Date,
		payment.Note,
		payment.CreatedAt,
	).Error
}

func (r *repo) ListPayments(ctx context.Context, conn *gorm.DB) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	err := conn.WithContext(ctx).
		Model(&domain.Payment{}).
		Order("created_at asc, id asc").
		Find(&payments).Error
	if err != nil {
		// A store that never recorded a payment behaves as empty.
		if db.IsMissingTableErr(err) {
			return nil, nil
		}
		return nil, err
	}
	return payments, nil
}

func (r *repo) ListPaymentsByDebt(ctx context.Context, conn *gorm.DB, debtID string) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	err := conn.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("debt_id = ?", debtID).
		Order("created_at asc, id asc").
		Find(&payments).Error
	if err != nil {
		if db.IsMissingTableErr(err) {
			return nil, nil
		}
		return nil, err
	}
	return payments, nil
}

func (r *repo) InsertAddition(ctx context.Context, conn *gorm.DB, addition *domain.Addition) error {
	return conn.WithContext(ctx).Exec(
		`INSERT INTO additions (id, debt_id, amount, date, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		addition.ID,
		addition.DebtID,
		addition.Amount,
		addition.Date,
		addition.Note,
		addition.CreatedAt,
	).Error
}

func (r *repo) ListAdditionsByDebt(ctx context.Context, conn *gorm.DB, debtID string) ([]*domain.Addition, error) {
	var additions []*domain.Addition
	err := conn.WithContext(ctx).
		Model(&domain.Addition{}).
		Where("debt_id = ?", debtID).
		Order("created_at asc, id asc").
		Find(&additions).Error
	if err != nil {
		if db.IsMissingTableErr(err) {
			return nil, nil
		}
		return nil, err
	}
	return additions, nil
}
