package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smallbiznis/fiado/internal/inventory/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindProduct(ctx context.Context, conn *gorm.DB, name string) (*domain.Product, error) {
	var product domain.Product
	err := conn.WithContext(ctx).Raw(
		`SELECT name, balance, updated_at FROM products WHERE name = ?`,
		name,
	).Scan(&product).Error
	if err != nil {
		return nil, err
	}
	if product.Name == "" {
		return nil, nil
	}
	return &product, nil
}

func (r *repo) UpsertProduct(ctx context.Context, conn *gorm.DB, product *domain.Product) error {
	return conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance", "updated_at"}),
		}).
		Create(product).Error
}

func (r *repo) ListProducts(ctx context.Context, conn *gorm.DB) ([]*domain.Product, error) {
	var products []*domain.Product
	err := conn.WithContext(ctx).
		Model(&domain.Product{}).
		Order("name asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repo) InsertMovement(ctx context.Context, conn *gorm.DB, movement *domain.Movement) error {
	return conn.WithContext(ctx).Exec(
		`INSERT INTO movements (id, product, quantity, kind, date, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		movement.ID,
		movement.Product,
		movement.Quantity,
		movement.Kind,
		movement.Date,
		movement.Reason,
		movement.CreatedAt,
	).Error
}

func (r *repo) ListMovements(ctx context.Context, conn *gorm.DB) ([]*domain.Movement, error) {
	var movements []*domain.Movement
	err := conn.WithContext(ctx).
		Model(&domain.Movement{}).
		Order("created_at asc, id asc").
		Find(&movements).Error
	if err != nil {
		return nil, err
	}
	return movements, nil
}
