package yaerrors

import "errors"

// ErrTeapot is reported instead of panicking when a method is called on a nil *yaError.
var ErrTeapot = errors.New("backend developer is a teapot")
