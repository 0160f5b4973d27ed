package yaentityparser

import (
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
)

// Dialect selects the markup grammar. Values are case-sensitive.
type Dialect string

const (
	Markdown Dialect = "Markdown"
	HTML     Dialect = "HTML"
)

// ParseDialect validates a parse mode string coming from a caller.
func ParseDialect(s string) (Dialect, yaerrors.Error) {
	switch d := Dialect(s); d {
	case Markdown, HTML:
		return d, nil
	default:
		return "", yaerrors.FromError(
			http.StatusBadRequest,
			ErrUnknownDialect,
			fmt.Sprintf("parse mode must be one of %q or %q, got %q", Markdown, HTML, s),
		)
	}
}

func (d Dialect) String() string {
	return string(d)
}

func (d Dialect) grammar() *grammar {
	if d == HTML {
		return htmlGrammar
	}

	return markdownGrammar
}
