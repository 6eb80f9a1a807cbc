package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("salary payment not found")
	ErrZeroAmount      = errors.New("payment amount must not be zero")
)
