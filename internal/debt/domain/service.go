package domain

import (
	"context"

	"github.com/smallbiznis/fiado/pkg/money"
)

// DebtView is the wire representation of a promissory note. Valor is
// rendered with two decimals when the stored text parses and kept raw
// otherwise; ValorPago and ValorAtual are derived at read time.
type DebtView struct {
	ID          string       `json:"id"`
	Nome        string       `json:"nome"`
	Telefone    string       `json:"telefone"`
	Valor       string       `json:"valor"`
	ValorPago   money.Amount `json:"valorPago"`
	ValorAtual  money.Amount `json:"valorAtual"`
	Data        string       `json:"data"`
	Status      DebtStatus   `json:"status"`
	Observacoes string       `json:"observacoes"`
}

// PaymentView mirrors the payment log row; id is the debt identifier.
type PaymentView struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Valor      string `json:"valor"`
	Data       string `json:"data"`
	Observacao string `json:"observacao"`
}

// AdditionView mirrors the addition log row; id is the debt identifier.
type AdditionView struct {
	ID         string `json:"id"`
	Valor      string `json:"valor"`
	Data       string `json:"data"`
	Observacao string `json:"observacao"`
}

type CreateDebtRequest struct {
	Nome        string `json:"nome"`
	Telefone    string `json:"telefone"`
	Valor       string `json:"valor"`
	Data        string `json:"data"`
	Observacoes string `json:"observacoes"`
}

type RecordPaymentRequest struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Valor      string `json:"valor"`
	Data       string `json:"data"`
	Observacao string `json:"observacao"`
}

type AddToDebtRequest struct {
	ValorAdicional string `json:"valorAdicional"`
	Observacao     string `json:"observacao"`
}

type Service interface {
	ListActive(ctx context.Context, nameFilter string) ([]DebtView, error)
	ListSettled(ctx context.Context, nameFilter string) ([]DebtView, error)
	Create(ctx context.Context, req CreateDebtRequest) (*Debt, error)
	SettleManual(ctx context.Context, id string) error
	RecordPayment(ctx context.Context, req RecordPaymentRequest) error
	AddToDebt(ctx context.Context, id string, req AddToDebtRequest) error
	ListPayments(ctx context.Context, debtID string) ([]PaymentView, error)
	ListAdditions(ctx context.Context, debtID string) ([]AdditionView, error)
}
