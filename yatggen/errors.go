package yatggen

import "errors"

var (
	ErrBadUser          = errors.New("bad user")
	ErrBadChat          = errors.New("bad chat")
	ErrBadMessage       = errors.New("bad message")
	ErrBadCallbackQuery = errors.New("bad callback query")
	ErrBadInlineQuery   = errors.New("bad inline query")
)
