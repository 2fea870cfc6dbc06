package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID     = errors.New("invalid id")
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyValue    = errors.New("value is required")
	ErrInvalidDates  = errors.New("updated timestamp precedes created timestamp")
	ErrNilEntries    = errors.New("entries list is nil")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyQuery    = errors.New("search query is required")
)
