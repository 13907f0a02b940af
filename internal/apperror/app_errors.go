package apperror

import "errors"

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrInvalidMove     = errors.New("invalid move")
	ErrConcurrentWrite = errors.New("game was modified concurrently")
)
