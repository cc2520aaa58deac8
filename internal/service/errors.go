package service

import "errors"

var (
	ErrInvalidDocument = errors.New("invalid configuration document")
)
