package service

import "time"

type TopupCommand struct {
	UserID string
	Amount int64
}

type PurchaseCommand struct {
	UserID  string
	MovieID string
}

type TransactionResult struct {
	TransactionID   string    `json:"transactionId"`
	TransactionTime time.Time `json:"transactionTime"`
}

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type UpdateProfileCommand struct {
	UserID   string
	Username string
	Email    string
	Password string
}

type LoginCommand struct {
	Username string
	Password string
}

type AddMovieCommand struct {
	RequesterID string
	Title       string
	Synopsis    string
	Price       int64
	Year        int
	Video       string
	Image       []byte
}

type UpdateMovieCommand struct {
	RequesterID string
	MovieID     string
	Title       string
	Synopsis    string
	Price       int64
	Year        int
	Video       string
	Image       []byte
}
