package models

import "errors"

var (
	// ErrEmptyName is returned when the client name is blank
	ErrEmptyName = errors.New("client name is required")

	// ErrNameTooLong is returned when the client name exceeds the limit
	ErrNameTooLong = errors.New("client name is too long")

	// ErrNotesTooLong is returned when the notes exceed the limit
	ErrNotesTooLong = errors.New("client notes are too long")
)
