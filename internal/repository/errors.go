package repository

import "errors"

var (
	ErrUserNotFound        = errors.New("USER_NOT_FOUND")
	ErrUserExists          = errors.New("USER_EXISTED")
	ErrMovieNotFound       = errors.New("MOVIE_NOT_FOUND")
	ErrTransactionExisted  = errors.New("TRANSACTION_EXISTED")
	ErrInsufficientBalance = errors.New("INSUFFICIENT_BALANCE")
)
