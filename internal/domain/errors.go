package domain

import "errors"

var (
	ErrUnknownProduct    = errors.New("unknown product key")
	ErrForcedFailure     = errors.New("forced failure")
	ErrInvalidBatchCount = errors.New("batch count must be positive")
	ErrEmptyEntityID     = errors.New("entity id must not be empty")
)
