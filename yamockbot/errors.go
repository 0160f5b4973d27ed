package yamockbot

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrFailedToEncode  = errors.New("failed to encode parameter")
	ErrUnknownRecorder = errors.New("unknown recorder")
)
