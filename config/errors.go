package config

import "errors"

var (
	ErrValueIsRequired         = errors.New("value is required")
	ErrInvalidDotEnvFileFormat = errors.New("invalid .env file format")
	ErrUnknownRecorder         = errors.New("unknown recorder")
)
