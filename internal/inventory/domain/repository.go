package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindProduct(ctx context.Context, db *gorm.DB, name string) (*Product, error)
	UpsertProduct(ctx context.Context, db *gorm.DB, product *Product) error
	ListProducts(ctx context.Context, db *gorm.DB) ([]*Product, error)

	InsertMovement(ctx context.Context, db *gorm.DB, movement *Movement) error
	ListMovements(ctx context.Context, db *gorm.DB) ([]*Movement, error)
}
