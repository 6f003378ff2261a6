package i18n

import "errors"

var (
	ErrNilSource          = errors.New("i18n: message source is nil")
	ErrUnsupportedFormat  = errors.New("i18n: unsupported catalog file format")
	ErrFailedToParse      = errors.New("i18n: failed to parse catalog")
	ErrFailedToRead       = errors.New("i18n: failed to read catalog")
	ErrInvalidCatalog     = errors.New("i18n: invalid catalog structure")
	ErrLoadingCancelled   = errors.New("i18n: loading catalog cancelled")
	ErrNoCatalogFilesInFS = errors.New("i18n: no catalog files found")
)
