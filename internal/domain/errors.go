package domain

import "errors"

var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrJobNotFound       = errors.New("job not found")
	ErrResultNotFound    = errors.New("detection result not found")
	ErrUnsupportedFile   = errors.New("unsupported file type")
	ErrPDFUnreadable     = errors.New("pdf could not be read")
	ErrInvalidPageParams = errors.New("invalid page parameters")
)
