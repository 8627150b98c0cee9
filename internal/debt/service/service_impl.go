package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smallbiznis/fiado/internal/debt/domain"
	"github.com/smallbiznis/fiado/internal/debt/reconcile"
	"github.com/smallbiznis/fiado/pkg/db"
	"github.com/smallbiznis/fiado/pkg/money"
)

const manualSettlementNote = "quitação manual"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

// Service orchestrates debt reads, reconciliation and write-backs.
//
// Each operation is a plain read-modify-write cycle against the store
// with no locking; two concurrent writers touching the same debt can
// lose an update (last write wins). That matches the system it
// replaces and is accepted for its scale.
type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("debt.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// ListActive returns pending debts with derived paid and current
// amounts. Debts whose balance reached zero are flipped to settled,
// written back and dropped from the output.
func (s *Service) ListActive(ctx context.Context, nameFilter string) ([]domain.DebtView, error) {
	debts, err := s.repo.ListDebts(ctx, s.db)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListPayments(ctx, s.db)
	if err != nil {
		return nil, err
	}

	totals := reconcile.PaidTotals(payments)
	filter := strings.ToLower(strings.TrimSpace(nameFilter))

	views := make([]domain.DebtView, 0, len(debts))
	for _, debt := range debts {
		paid := totals[debt.ID]
		balance := reconcile.CurrentBalance(debt.Amount, paid)

		if reconcile.NeedsSettlement(debt, balance) {
			debt.Status = domain.DebtStatusSettled
			debt.UpdatedAt = time.Now().UTC()
			if err := s.repo.UpdateDebt(ctx, s.db, debt); err != nil {
				return nil, err
			}
			s.log.Info("debt auto-settled", zap.String("id", debt.ID))
		}
		if debt.Status == domain.DebtStatusSettled {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(debt.Name), filter) {
			continue
		}

		views = append(views, domain.DebtView{
			ID:          debt.ID,
			Nome:        debt.Name,
			Telefone:    debt.Phone,
			Valor:       money.Display(debt.Amount),
			ValorPago:   paid,
			ValorAtual:  balance,
			Data:        debt.Date,
			Status:      debt.Status,
			Observacoes: debt.Notes,
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return strings.ToLower(views[i].Nome) < strings.ToLower(views[j].Nome)
	})

	return views, nil
}

// ListSettled returns debts already marked settled. Status is
// authoritative here; balances are not recomputed.
func (s *Service) ListSettled(ctx context.Context, nameFilter string) ([]domain.DebtView, error) {
	debts, err := s.repo.ListDebts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	filter := strings.ToLower(strings.TrimSpace(nameFilter))

	views := make([]domain.DebtView, 0)
	for _, debt := range debts {
		if debt.Status != domain.DebtStatusSettled {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(debt.Name), filter) {
			continue
		}
		views = append(views, domain.DebtView{
			ID:          debt.ID,
			Nome:        debt.Name,
			Telefone:    debt.Phone,
			Valor:       money.Display(debt.Amount),
			ValorPago:   money.ParseLenient(debt.Amount),
			ValorAtual:  0,
			Data:        debt.Date,
			Status:      debt.Status,
			Observacoes: debt.Notes,
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return strings.ToLower(views[i].Nome) < strings.ToLower(views[j].Nome)
	})

	return views, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateDebtRequest) (*domain.Debt, error) {
	name := strings.TrimSpace(req.Nome)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if _, err := money.ParseNonNegative(req.Valor); err != nil {
		return nil, err
	}

	date := strings.TrimSpace(req.Data)
	if date == "" {
		date = today()
	}

	now := time.Now().UTC()
	debt := domain.Debt{
		ID:        s.genID.Generate().String(),
		Name:      name,
		Phone:     strings.TrimSpace(req.Telefone),
		Amount:    strings.TrimSpace(req.Valor),
		Date:      date,
		Status:    domain.DebtStatusPending,
		Notes:     req.Observacoes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.InsertDebt(ctx, s.db, &debt); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateID
		}
		return nil, err
	}

	return &debt, nil
}

// SettleManual forces a debt to settled before its balance reaches
// zero. Whatever remains unpaid is appended as a synthetic payment so
// the payment history still sums to the original amount.
func (s *Service) SettleManual(ctx context.Context, id string) error {
	debt, err := s.repo.FindDebtByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if debt == nil {
		return domain.ErrNotFound
	}

	payments, err := s.repo.ListPaymentsByDebt(ctx, s.db, id)
	if err != nil {
		return err
	}
	paid := reconcile.PaidTotals(payments)[id]

	remainder := reconcile.SettlementRemainder(debt.Amount, paid)
	if remainder > 0 {
		payment := domain.Payment{
			ID:        s.genID.Generate(),
			DebtID:    id,
			Name:      debt.Name,
			Amount:    remainder.String(),
			Date:      today(),
			Note:      manualSettlementNote,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.InsertPayment(ctx, s.db, &payment); err != nil {
			return err
		}
	}

	debt.Status = domain.DebtStatusSettled
	debt.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateDebt(ctx, s.db, debt); err != nil {
		return err
	}

	s.log.Info("debt settled manually",
		zap.String("id", id),
		zap.String("remainder", remainder.String()),
	)
	return nil
}

// RecordPayment appends a payment row. Balances are not recomputed
// here; the next listing reconciles. Identifiers are not checked
// against existing debts, so a payment may reference an unknown id.
func (s *Service) RecordPayment(ctx context.Context, req domain.RecordPaymentRequest) error {
	debtID := strings.TrimSpace(req.ID)
	if debtID == "" {
		return domain.ErrInvalidID
	}
	if _, err := money.ParsePositive(req.Valor); err != nil {
		return err
	}

	date := strings.TrimSpace(req.Data)
	if date == "" {
		date = today()
	}

	payment := domain.Payment{
		ID:        s.genID.Generate(),
		DebtID:    debtID,
		Name:      strings.TrimSpace(req.Nome),
		Amount:    strings.TrimSpace(req.Valor),
		Date:      date,
		Note:      req.Observacao,
		CreatedAt: time.Now().UTC(),
	}

	return s.repo.InsertPayment(ctx, s.db, &payment)
}

// AddToDebt increases a debt's original amount and appends the delta
// to the addition log. A partially paid debt grows; a settled debt
// stays settled regardless.
func (s *Service) AddToDebt(ctx context.Context, id string, req domain.AddToDebtRequest) error {
	debt, err := s.repo.FindDebtByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if debt == nil {
		return domain.ErrNotFound
	}

	delta, err := money.ParseNonNegative(req.ValorAdicional)
	if err != nil {
		return err
	}
	current, err := money.Parse(debt.Amount)
	if err != nil {
		// The stored text does not read as a number. Refusing beats
		// overwriting a value someone may still need to look at.
		return domain.ErrStoredAmount
	}

	debt.Amount = (current + delta).String()
	debt.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateDebt(ctx, s.db, debt); err != nil {
		return err
	}

	addition := domain.Addition{
		ID:        s.genID.Generate(),
		DebtID:    id,
		Amount:    delta.String(),
		Date:      today(),
		Note:      req.Observacao,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.InsertAddition(ctx, s.db, &addition)
}

func (s *Service) ListPayments(ctx context.Context, debtID string) ([]domain.PaymentView, error) {
	payments, err := s.repo.ListPaymentsByDebt(ctx, s.db, debtID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, domain.PaymentView{
			ID:         p.DebtID,
			Nome:       p.Name,
			Valor:      money.Display(p.Amount),
			Data:       p.Date,
			Observacao: p.Note,
		})
	}
	return views, nil
}

func (s *Service) ListAdditions(ctx context.Context, debtID string) ([]domain.AdditionView, error) {
	additions, err := s.repo.ListAdditionsByDebt(ctx, s.db, debtID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.AdditionView, 0, len(additions))
	for _, a := range additions {
		views = append(views, domain.AdditionView{
			ID:         a.DebtID,
			Valor:      money.Display(a.Amount),
			Data:       a.Date,
			Observacao: a.Note,
		})
	}
	return views, nil
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
