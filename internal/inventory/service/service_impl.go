package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smallbiznis/fiado/internal/inventory/domain"
	"github.com/smallbiznis/fiado/pkg/money"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("inventory.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// RecordMovement applies a signed stock delta, floored at zero, and
// appends the movement to the log. An unseen product gets its row
// created on first movement.
func (s *Service) RecordMovement(ctx context.Context, req domain.RecordMovementRequest) error {
	name := strings.TrimSpace(req.Produto)
	if name == "" {
		return domain.ErrInvalidProduct
	}

	kind := domain.MovementKind(strings.ToLower(strings.TrimSpace(req.Tipo)))
	if kind != domain.MovementKindIn && kind != domain.MovementKindOut {
		return domain.ErrInvalidKind
	}

	quantity, err := money.ParsePositive(req.Quantidade)
	if err != nil {
		return domain.ErrInvalidQuantity
	}

	product, err := s.repo.FindProduct(ctx, s.db, name)
	if err != nil {
		return err
	}
	if product == nil {
		product = &domain.Product{Name: name}
	}

	delta := quantity
	if kind == domain.MovementKindOut {
		delta = -quantity
	}
	balance := product.Balance + delta
	if balance < 0 {
		balance = 0
	}
	product.Balance = balance
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpsertProduct(ctx, s.db, product); err != nil {
		return err
	}

	date := strings.TrimSpace(req.Data)
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	movement := domain.Movement{
		ID:        s.genID.Generate(),
		Product:   name,
		Quantity:  quantity,
		Kind:      kind,
		Date:      date,
		Reason:    req.Justificativa,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.InsertMovement(ctx, s.db, &movement)
}

func (s *Service) ListMovements(ctx context.Context) ([]domain.MovementView, error) {
	movements, err := s.repo.ListMovements(ctx, s.db)
	if err != nil {
		return nil, err
	}

	views := make([]domain.MovementView, 0, len(movements))
	for _, m := range movements {
		views = append(views, domain.MovementView{
			Produto:       m.Product,
			Quantidade:    m.Quantity,
			Tipo:          m.Kind,
			Data:          m.Date,
			Justificativa: m.Reason,
		})
	}
	return views, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.ProductView, error) {
	products, err := s.repo.ListProducts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	views := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, domain.ProductView{
			Produto: p.Name,
			Saldo:   p.Balance,
		})
	}
	return views, nil
}
