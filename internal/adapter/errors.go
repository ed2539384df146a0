package adapter

import "errors"

var (
	ErrInvalidAddress   = errors.New("invalid server address")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
