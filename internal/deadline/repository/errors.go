package repository

import "errors"

var (
	ErrIndexOutOfRange = errors.New("deadline index out of range")
)
