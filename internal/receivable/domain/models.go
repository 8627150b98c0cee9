// Package domain contains persistence models for receivables.
package domain

import "time"

// ReceivableStatus mirrors the debt lifecycle: settling is terminal.
type ReceivableStatus string

const (
	ReceivableStatusPending ReceivableStatus = "pendente"
	ReceivableStatusSettled ReceivableStatus = "paga"
)

// Receivable is an amount owed to the operator, tracked independently
// of debtor debts. Created once, mutated only on settlement.
type Receivable struct {
	ID          string           `gorm:"primaryKey"`
	Description string           `gorm:"type:text;not null"`
	Amount      string           `gorm:"type:text;not null"`
	DueDate     string           `gorm:"type:text"`
	Status      ReceivableStatus `gorm:"type:text;not null;default:'pendente'"`
	Note        string           `gorm:"type:text"`
	CreatedAt   time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Receivable) TableName() string { return "receivables" }
