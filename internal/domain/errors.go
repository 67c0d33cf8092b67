package domain

import "errors"

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrLogNotFound       = errors.New("room log not found")
	ErrRoomAlreadyExists = errors.New("room already exists")
	ErrInvalidInput      = errors.New("invalid input")
)
