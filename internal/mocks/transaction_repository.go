package mocks

import (
	"context"

	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/Calvin-77/movie-store-app/internal/repository"
	"github.com/stretchr/testify/mock"
)

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *TransactionRepository) CheckUserOwnership(ctx context.Context, userID, movieID string) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *TransactionRepository) GetUserTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionRepository) GetUserTransactionHistory(ctx context.Context, userID string) ([]repository.TransactionHistoryRow, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]repository.TransactionHistoryRow), args.Error(1)
}

func (m *TransactionRepository) GetAllSalesData(ctx context.Context) ([]repository.SalesRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.SalesRow), args.Error(1)
}

func (m *TransactionRepository) GetUserPurchasedMovies(ctx context.Context, userID string) ([]repository.PurchasedMovieRow, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]repository.PurchasedMovieRow), args.Error(1)
}
