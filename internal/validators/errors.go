package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidFields       = errors.New("invalid fields")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrInvalidItemID       = errors.New("invalid item id")
	ErrInvalidListKind     = errors.New("invalid list kind")
)
