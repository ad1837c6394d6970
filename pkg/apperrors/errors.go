package apperrors

import "errors"

var (
	ErrMissingCredentials = errors.New("text generation credentials not configured")
	ErrSchemaRequired     = errors.New("schema required: no schema supplied and no datasource configured")
	ErrInjectionDetected  = errors.New("generated SQL failed injection screening")
)
