package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/fiado/pkg/money"
)

var (
	ErrInvalidProduct  = errors.New("invalid_product")
	ErrInvalidKind     = errors.New("invalid_kind")
	ErrInvalidQuantity = errors.New("invalid_quantity")
)

type MovementView struct {
	Produto       string       `json:"produto"`
	Quantidade    money.Amount `json:"quantidade"`
	Tipo          MovementKind `json:"tipo"`
	Data          string       `json:"data"`
	Justificativa string       `json:"justificativa"`
}

type ProductView struct {
	Produto string       `json:"produto"`
	Saldo   money.Amount `json:"saldo"`
}

type RecordMovementRequest struct {
	Produto       string `json:"produto"`
	Quantidade    string `json:"quantidade"`
	Tipo          string `json:"tipo"`
	Data          string `json:"data"`
	Justificativa string `json:"justificativa"`
}

type Service interface {
	RecordMovement(ctx context.Context, req RecordMovementRequest) error
	ListMovements(ctx context.Context) ([]MovementView, error)
	ListProducts(ctx context.Context) ([]ProductView, error)
}
