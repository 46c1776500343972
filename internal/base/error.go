package base

import "errors"

var (
	ErrKeyExists       = errors.New("key already exists")
	ErrInvalidCapacity = errors.New("node capacity must be at least 2")
	ErrCorruption      = errors.New("tree invariant violated")
)
