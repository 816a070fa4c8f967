package service

import "linkvault/internal/errors"

// ErrRecordNotFound is returned by stores and caches for unknown keys.
var ErrRecordNotFound = errors.New("record not found")
