package i18n

import "errors"

var (
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrFailedToParseJSON = errors.New("failed to parse JSON catalog")
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")
	ErrParsingCancelled  = errors.New("catalog parsing cancelled")
	ErrLoadingCancelled  = errors.New("loading catalog cancelled")
	ErrFailedToReadFile  = errors.New("failed to read catalog file")
	ErrFailedToParseFile = errors.New("failed to parse catalog file")
	ErrFailedToReadDir   = errors.New("failed to read catalog directory")
	ErrNoCatalogFiles    = errors.New("no catalog files found")
	ErrInvalidCatalog    = errors.New("invalid catalog structure")
)
