package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smallbiznis/fiado/internal/receivable/domain"
	"github.com/smallbiznis/fiado/pkg/db"
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
		log:   p.Log.Named("receivable.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.ReceivableView, error) {
	receivables, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	views := make([]domain.ReceivableView, 0, len(receivables))
	for _, r := range receivables {
		views = append(views, domain.ReceivableView{
			ID:         r.ID,
			Descricao:  r.Description,
			Valor:      money.Display(r.Amount),
			Vencimento: r.DueDate,
			Status:     r.Status,
			Observacao: r.Note,
		})
	}
	return views, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateReceivableRequest) (*domain.Receivable, error) {
	description := strings.TrimSpace(req.Descricao)
	if description == "" {
		return nil, domain.ErrInvalidDescription
	}
	if _, err := money.ParseNonNegative(req.Valor); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	receivable := domain.Receivable{
		ID:          s.genID.Generate().String(),
		Description: description,
		Amount:      strings.TrimSpace(req.Valor),
		DueDate:     strings.TrimSpace(req.Vencimento),
		Status:      domain.ReceivableStatusPending,
		Note:        req.Observacao,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &receivable); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateID
		}
		return nil, err
	}
	return &receivable, nil
}

// Settle marks a receivable as settled. The transition is terminal.
func (s *Service) Settle(ctx context.Context, id string) error {
	receivable, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if receivable == nil {
		return domain.ErrNotFound
	}

	if receivable.Status == domain.ReceivableStatusSettled {
		return nil
	}

	receivable.Status = domain.ReceivableStatusSettled
	receivable.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, s.db, receivable)
}
