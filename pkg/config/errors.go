package config

import "errors"

var (
	ErrParsingConfig   = errors.New("failed to parse environment variables into config")
	ErrLoadingEnvFile  = errors.New("failed to load env file")
	ErrNilPointer      = errors.New("nil pointer provided to config loader")
)
