package domain

import "errors"

var (
	// Load time.
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrSchemaMismatch    = errors.New("schema mismatch")

	ErrUnknownQuery = errors.New("unknown query")
	ErrUnknownTable = errors.New("unknown table")
	ErrValidation   = errors.New("validation error")
	ErrDuplicateKey = errors.New("duplicate key")
)
