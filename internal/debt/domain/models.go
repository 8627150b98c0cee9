// Package domain contains persistence models for promissory notes.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// DebtStatus represents the lifecycle of a promissory note. The
// transition to settled is terminal; nothing moves a note back.
type DebtStatus string

const (
	DebtStatusPending DebtStatus = "pendente"
	DebtStatusSettled DebtStatus = "paga"
)

// Debt is a tracked amount owed by a named debtor. Amount keeps the
// operator's text exactly as entered; parsing happens at read time so a
// malformed historical value is never silently rewritten.
type Debt struct {
	ID        string     `gorm:"primaryKey"`
	Name      string     `gorm:"not null;index"`
	Phone     string     `gorm:"type:text"`
	Amount    string     `gorm:"type:text;not null"`
	Date      string     `gorm:"type:text"`
	Status    DebtStatus `gorm:"type:text;not null;default:'pendente';index"`
	Notes     string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Debt) TableName() string { return "debts" }

// Payment is an immutable record of money received against a debt.
// DebtID is not a foreign key; orphaned references are tolerated.
type Payment struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	DebtID    string       `gorm:"not null;index"`
	Name      string       `gorm:"type:text"`
	Amount    string       `gorm:"type:text;not null"`
	Date      string       `gorm:"type:text"`
	Note      string       `gorm:"type:text"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }

// Addition is an immutable record of an increase to a debt's original
// amount, written alongside the mutation of the debt row itself.
type Addition struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	DebtID    string       `gorm:"not null;index"`
	Amount    string       `gorm:"type:text;not null"`
	Date      string       `gorm:"type:text"`
	Note      string       `gorm:"type:text"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Addition) TableName() string { return "additions" }
