package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InsertDebt(ctx context.Context, db *gorm.DB, debt *Debt) error
	FindDebtByID(ctx context.Context, db *gorm.DB, id string) (*Debt, error)
	ListDebts(ctx context.Context, db *gorm.DB) ([]*Debt, error)
	UpdateDebt(ctx context.Context, db *gorm.DB, debt *Debt) error

	InsertPayment(ctx context.Context, db *gorm.DB, payment *Payment) error
	ListPayments(ctx context.Context, db *gorm.DB) ([]*Payment, error)
	ListPaymentsByDebt(ctx context.Context, db *gorm.DB, debtID string) ([]*Payment, error)

	InsertAddition(ctx context.Context, db *gorm.DB, addition *Addition) error
	ListAdditionsByDebt(ctx context.Context, db *gorm.DB, debtID string) ([]*Addition, error)
}
