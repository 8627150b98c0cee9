package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smallbiznis/fiado/internal/debt/domain"
	"github.com/smallbiznis/fiado/internal/debt/repository"
	"github.com/smallbiznis/fiado/pkg/db"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := conn.AutoMigrate(&domain.Debt{}, &domain.Payment{}, &domain.Addition{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	svc := New(Params{DB: conn, Log: zap.NewNop(), GenID: node, Repo: repository.Provide()})
	return svc, conn
}

func createDebt(t *testing.T, svc domain.Service, nome, valor string) *domain.Debt {
	t.Helper()
	debt, err := svc.Create(context.Background(), domain.CreateDebtRequest{
		Nome:  nome,
		Valor: valor,
		Data:  "2026-08-01",
	})
	if err != nil {
		t.Fatalf("create debt: %v", err)
	}
	return debt
}

func recordPayment(t *testing.T, svc domain.Service, id, valor string) {
	t.Helper()
	err := svc.RecordPayment(context.Background(), domain.RecordPaymentRequest{
		ID:    id,
		Valor: valor,
		Data:  "2026-08-10",
	})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
}

func TestPartialPaymentsReduceBalance(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	debt := createDebt(t, svc, "Maria", "100.00")
	recordPayment(t, svc, debt.ID, "60.00")

	active, err := svc.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active debt, got %d", len(active))
	}
	if got := active[0].ValorAtual.String(); got != "40.00" {
		t.Fatalf("expected balance 40.00, got %s", got)
	}
	if got := active[0].ValorPago.String(); got != "60.00" {
		t.Fatalf("expected paid 60.00, got %s", got)
	}
	if active[0].Status != domain.DebtStatusPending {
		t.Fatalf("expected status pendente, got %s", active[0].Status)
	}
}

func TestFullPaymentAutoSettlesOnList(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	debt := createDebt(t, svc, "Maria", "100.00")
	recordPayment(t, svc, debt.ID, "60.00")
	recordPayment(t, svc, debt.ID, "40.00")

	active, err := svc.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("settled debt must leave the active list, got %d entries", len(active))
	}

	// The transition was written back, not just filtered out.
	var stored domain.Debt
	if err := conn.First(&stored, "id = ?", debt.ID).Error; err != nil {
		t.Fatalf("load debt: %v", err)
	}
	if stored.Status != domain.DebtStatusSettled {
		t.Fatalf("expected stored status paga, got %s", stored.Status)
	}

	settled, err := svc.ListSettled(ctx, "")
	if err != nil {
		t.Fatalf("list settled: %v", err)
	}
	if len(settled) != 1 || settled[0].ID != debt.ID {
		t.Fatalf("expected debt in settled list, got %+v", settled)
	}
}

func TestManualSettlementAppendsSyntheticPayment(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	debt := createDebt(t, svc, "João", "50.00")

	if err := svc.SettleManual(ctx, debt.ID); err != nil {
		t.Fatalf("settle manual: %v", err)
	}

	payments, err := svc.ListPayments(ctx, debt.ID)
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected 1 synthetic payment, got %d", len(payments))
	}
	if payments[0].Valor != "50.00" {
		t.Fatalf("expected synthetic payment of 50.00, got %s", payments[0].Valor)
	}
	if payments[0].Observacao != manualSettlementNote {
		t.Fatalf("unexpected note %q", payments[0].Observacao)
	}

	var stored domain.Debt
	if err := conn.First(&stored, "id = ?", debt.ID).Error; err != nil {
		t.Fatalf("load debt: %v", err)
	}
	if stored.Status != domain.DebtStatusSettled {
		t.Fatalf("expected status paga, got %s", stored.Status)
	}
}

func TestManualSettlementAfterPartialPayment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	debt := createDebt(t, svc, "João", "100.00")
	recordPayment(t, svc, debt.ID, "30.00")

	if err := svc.SettleManual(ctx, debt.ID); err != nil {
		t.Fatalf("settle manual: %v", err)
	}

	payments, err := svc.ListPayments(ctx, debt.ID)
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	// History sums to the original amount.
	if payments[1].Valor != "70.00" {
		t.Fatalf("expected remainder payment of 70.00, got %s", payments[1].Valor)
	}
}

func TestSettleManualNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.SettleManual(context.Background(), "999"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdditionGrowsPartiallyPaidDebt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	debt := createDebt(t, svc, "Ana", "100.00")
	recordPayment(t, svc, debt.ID, "30.00")

	err := svc.AddToDebt(ctx, debt.ID, domain.AddToDebtRequest{ValorAdicional: "20.00"})
	if err != nil {
		t.Fatalf("add to debt: %v", err)
	}

	active, err := svc.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active debt, got %d", len(active))
	}
	if active[0].Valor != "120.00" {
		t.Fatalf("expected original 120.00, got %s", active[0].Valor)
	}
	if got := active[0].ValorAtual.String(); got != "90.00" {
		t.Fatalf("expected balance 90.00, got %s", got)
	}

	additions, err := svc.ListAdditions(ctx, debt.ID)
	if err != nil {
		t.Fatalf("list additions: %v", err)
	}
	if len(additions) != 1 || additions[0].Valor != "20.00" {
		t.Fatalf("expected one addition of 20.00, got %+v", additions)
	}
}

func TestAdditionDoesNotReopenSettledDebt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	debt := createDebt(t, svc, "Ana", "50.00")
	if err := svc.SettleManual(ctx, debt.ID); err != nil {
		t.Fatalf("settle manual: %v", err)
	}
	if err := svc.AddToDebt(ctx, debt.ID, domain.AddToDebtRequest{ValorAdicional: "25.00"}); err != nil {
		t.Fatalf("add to debt: %v", err)
	}

	active, err := svc.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("settled debt must never reappear in the active list, got %d", len(active))
	}
}

func TestAddToDebtRejectsMalformedAmount(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	debt := createDebt(t, svc, "Ana", "100.00")

	if err := svc.AddToDebt(ctx, debt.ID, domain.AddToDebtRequest{ValorAdicional: "vinte"}); err == nil {
		t.Fatal("expected malformed addition to be rejected")
	}
	if err := svc.AddToDebt(ctx, debt.ID, domain.AddToDebtRequest{ValorAdicional: "-5.00"}); err == nil {
		t.Fatal("expected negative addition to be rejected")
	}

	// Nothing was mutated and no log row appended.
	var stored domain.Debt
	if err := conn.First(&stored, "id = ?", debt.ID).Error; err != nil {
		t.Fatalf("load debt: %v", err)
	}
	if stored.Amount != "100.00" {
		t.Fatalf("amount must be untouched, got %s", stored.Amount)
	}
	additions, err := svc.ListAdditions(ctx, debt.ID)
	if err != nil {
		t.Fatalf("list additions: %v", err)
	}
	if len(additions) != 0 {
		t.Fatalf("expected no additions, got %d", len(additions))
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{ID: "", Valor: "10.00"}); err != domain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{ID: "1", Valor: "dez"}); err == nil {
		t.Fatal("expected malformed payment amount to be rejected")
	}
	if err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{ID: "1", Valor: "0.00"}); err == nil {
		t.Fatal("expected zero payment amount to be rejected")
	}
}

func TestOrphanPaymentAcceptedAndHarmless(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	debt := createDebt(t, svc, "Maria", "100.00")
	recordPayment(t, svc, "does-not-exist", "999.00")

	active, err := svc.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].ID != debt.ID {
		t.Fatalf("expected only Maria's debt, got %+v", active)
	}
	if got := active[0].ValorAtual.String(); got != "100.00" {
		t.Fatalf("orphan payment must not touch other balances, got %s", got)
	}

	orphan, err := svc.ListPayments(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(orphan) != 1 {
		t.Fatalf("orphan payment must be stored, got %d rows", len(orphan))
	}
}

func TestMalformedPaymentRowContributesZero(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	debt := createDebt(t, svc, "Maria", "100.00")
	recordPayment(t, svc, debt.ID, "40.00")

	// A malformed historical row, as a broken import would leave it.
	err := conn.Exec(
		`INSERT INTO payments (id, debt_id, name, amount, date, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		12345, debt.ID, "Maria", "quarenta", "2026-08-15", "",
	).Error
	if err != nil {
		t.Fatalf("insert malformed payment: %v", err)
	}

	active, err := svc.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active debt, got %d", len(active))
	}
	if got := active[0].ValorAtual.String(); got != "60.00" {
		t.Fatalf("malformed row must count as zero, got balance %s", got)
	}
}

func TestDuplicateDebtIDRejected(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	debt := createDebt(t, svc, "Maria", "10.00")

	repo := repository.Provide()
	err := repo.InsertDebt(ctx, conn, debt)
	if err == nil {
		t.Fatal("expected duplicate insert to fail")
	}
	if !db.IsDuplicateKeyErr(err) {
		t.Fatalf("expected a duplicate key error, got %v", err)
	}
}

func TestListActiveSortsAndFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	createDebt(t, svc, "Zeca", "10.00")
	createDebt(t, svc, "ana", "20.00")
	createDebt(t, svc, "Bruno", "30.00")

	active, err := svc.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("expected 3 debts, got %d", len(active))
	}
	if active[0].Nome != "ana" || active[1].Nome != "Bruno" || active[2].Nome != "Zeca" {
		t.Fatalf("expected name order ana, Bruno, Zeca; got %s, %s, %s",
			active[0].Nome, active[1].Nome, active[2].Nome)
	}

	filtered, err := svc.ListActive(ctx, "bru")
	if err != nil {
		t.Fatalf("list active filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Nome != "Bruno" {
		t.Fatalf("expected only Bruno, got %+v", filtered)
	}
}

func TestListedValorIsTwoDecimalFormatted(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	createDebt(t, svc, "Maria", "100")
	createDebt(t, svc, "Pedro", "10,5")

	active, err := svc.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 debts, got %d", len(active))
	}
	if active[0].Valor != "100.00" {
		t.Fatalf("expected Maria's valor 100.00, got %s", active[0].Valor)
	}
	if active[1].Valor != "10.50" {
		t.Fatalf("expected Pedro's valor 10.50, got %s", active[1].Valor)
	}

	// A stored amount that does not parse keeps its raw text instead of
	// being rewritten on output.
	err = conn.Exec(
		`INSERT INTO debts (id, name, phone, amount, date, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		"77", "Rui", "", "sem valor", "2026-08-01", "pendente", "",
	).Error
	if err != nil {
		t.Fatalf("insert malformed debt: %v", err)
	}
	if _, err := svc.ListActive(ctx, ""); err != nil {
		t.Fatalf("list active: %v", err)
	}
	settled, err := svc.ListSettled(ctx, "rui")
	if err != nil {
		t.Fatalf("list settled: %v", err)
	}
	if len(settled) != 1 || settled[0].Valor != "sem valor" {
		t.Fatalf("raw text must survive formatting, got %+v", settled)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateDebtRequest{Nome: "", Valor: "10.00"}); err != domain.ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := svc.Create(ctx, domain.CreateDebtRequest{Nome: "Maria", Valor: "cem"}); err == nil {
		t.Fatal("expected malformed amount to be rejected")
	}
	if _, err := svc.Create(ctx, domain.CreateDebtRequest{Nome: "Maria", Valor: "-10.00"}); err == nil {
		t.Fatal("expected negative amount to be rejected")
	}
}
