package domain

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported dollar type")
)
