package bindex

import (
	"errors"

	"github.com/alexhholmes/bindex/internal/base"
)

var (
	ErrKeyExists       = base.ErrKeyExists
	ErrInvalidCapacity = base.ErrInvalidCapacity
	ErrCorruption      = base.ErrCorruption

	ErrNilCompare = errors.New("compare function cannot be nil")
)
