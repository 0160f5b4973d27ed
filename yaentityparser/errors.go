package yaentityparser

import (
	"errors"
	"fmt"
)

var (
	// ErrMarkup is the cause of every error returned by this package.
	ErrMarkup         = errors.New("bad markup")
	ErrNestedMarkup   = fmt.Errorf("%w: nested markup", ErrMarkup)
	ErrUnknownDialect = fmt.Errorf("%w: unknown dialect", ErrMarkup)
)
