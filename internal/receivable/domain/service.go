package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("receivable_not_found")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrDuplicateID        = errors.New("duplicate_id")
)

type ReceivableView struct {
	ID         string           `json:"id"`
	Descricao  string           `json:"descricao"`
	Valor      string           `json:"valor"`
	Vencimento string           `json:"vencimento"`
	Status     ReceivableStatus `json:"status"`
	Observacao string           `json:"observacao"`
}

type CreateReceivableRequest struct {
	Descricao  string `json:"descricao"`
	Valor      string `json:"valor"`
	Vencimento string `json:"vencimento"`
	Observacao string `json:"observacao"`
}

type Service interface {
	List(ctx context.Context) ([]ReceivableView, error)
	Create(ctx context.Context, req CreateReceivableRequest) (*Receivable, error)
	Settle(ctx context.Context, id string) error
}
