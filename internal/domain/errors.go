package domain

import "errors"

var (
	// Input errors
	ErrEmptyInput = errors.New("no input provided")

	// Ledger errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrItemNotFound        = errors.New("inventory item not found")
)
