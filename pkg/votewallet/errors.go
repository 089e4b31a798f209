package votewallet

import (
	"errors"
)

var (
	ErrClosed              = errors.New("closed")
	ErrValidation          = errors.New("validation failed")
	ErrInsufficientBalance = errors.New("insufficient vote balance")
	ErrRemoteUnavailable   = errors.New("remote ledger unavailable")
)
