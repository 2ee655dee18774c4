package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrUserNotFound       = errors.New("user not found")
)

// Project errors
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotAuthor       = errors.New("only an author can modify this project")
	ErrNoAuthors       = errors.New("project needs at least one author")
	ErrNoTags          = errors.New("project needs at least one tag")
	ErrTooManyImages   = errors.New("too many additional images")
	ErrNoPendingDelete = errors.New("no delete pending")
)
