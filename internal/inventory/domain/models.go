// Package domain contains persistence models for stock control.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/smallbiznis/fiado/pkg/money"
)

// MovementKind says which way stock moved.
type MovementKind string

const (
	MovementKindIn  MovementKind = "entrada"
	MovementKindOut MovementKind = "saida"
)

// Product keeps the running stock balance per product name. The
// balance never goes below zero no matter what movement is requested.
type Product struct {
	Name      string       `gorm:"primaryKey"`
	Balance   money.Amount `gorm:"not null;default:0"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// Movement is the append-only stock movement log.
type Movement struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	Product   string       `gorm:"not null;index"`
	Quantity  money.Amount `gorm:"not null"`
	Kind      MovementKind `gorm:"type:text;not null"`
	Date      string       `gorm:"type:text"`
	Reason    string       `gorm:"type:text"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Movement) TableName() string { return "movements" }
