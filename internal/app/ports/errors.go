package ports

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrEngineDisabled = errors.New("engine disabled")
)
