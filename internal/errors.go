package internal

import "errors"

var (
	ErrLoadEnvFile   = errors.New("failed to load env file")
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	ErrLoadLocales   = errors.New("failed to load locales")
	ErrNoLocales     = errors.New("no locales loaded")
)
