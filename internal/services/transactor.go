package services

import (
	"context"
	"errors"

	"github.com/learnhowtocode/backend/internal/apperrors"
)

// Transactor defines how services group repository calls into one transaction
type Transactor interface {
	// WithinTx runs fn in a transaction
	//
	// "ctx" is the context for the request.
	// "fn" receives the context that carries the transaction; repository calls made
	// with it are committed together when fn returns nil and rolled back otherwise.
	//
	// Returns the error of fn or of the commit.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// typedOr returns the *apperrors.Error carried by err, or fallback wrapping err
func typedOr(err error, fallback *apperrors.Error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return fallback.Wrap(err)
}
