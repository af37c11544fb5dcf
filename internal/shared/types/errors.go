package types

import "errors"

var (
	ErrUnknownService = errors.New("unknown service kind, use 'installation' or 'assistance'")
	ErrNoSpots        = errors.New("an installation needs at least one spot")
)
