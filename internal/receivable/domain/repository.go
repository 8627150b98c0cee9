package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, receivable *Receivable) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Receivable, error)
	List(ctx context.Context, db *gorm.DB) ([]*Receivable, error)
	Update(ctx context.Context, db *gorm.DB, receivable *Receivable) error
}
