package domain

import "errors"

var (
	ErrNotFound      = errors.New("debt_not_found")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrStoredAmount  = errors.New("stored_amount_unparseable")
	ErrDuplicateID   = errors.New("duplicate_id")
)
