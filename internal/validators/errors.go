package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidServerURL  = errors.New("server url must be an absolute http(s) url")
	ErrInvalidShareID    = errors.New("share id is required")
	ErrEmptyShareContent = errors.New("share content is required")
)
