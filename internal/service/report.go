package service

import (
	"context"
	"errors"

	"github.com/Calvin-77/movie-store-app/internal/constants"
	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/Calvin-77/movie-store-app/internal/repository"
	"go.uber.org/zap"
)

// ReportService serves the read side of the ledger: per-user history and
// the admin sales report.
type ReportService interface {
	// GetAllSalesData requires requesterID to be an admin.
	GetAllSalesData(ctx context.Context, requesterID string) ([]repository.SalesRow, error)
	GetUserTransactionHistory(ctx context.Context, userID string) ([]repository.TransactionHistoryRow, error)
	GetUserTopupHistory(ctx context.Context, userID string) ([]model.Transaction, error)
}

type reportService struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	log             *zap.Logger
}

func NewReportService(userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository, log *zap.Logger) ReportService {
	return &reportService{userRepo: userRepo, transactionRepo: transactionRepo, log: log}
}

func (s *reportService) GetAllSalesData(ctx context.Context, requesterID string) ([]repository.SalesRow, error) {
	isAdmin, err := s.userRepo.IsAdmin(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	if !isAdmin {
		return nil, NewServiceError(constants.ErrCodeForbiddenAccess, ErrForbiddenAccess)
	}

	rows, err := s.transactionRepo.GetAllSalesData(ctx)
	if err != nil {
		s.log.Error("error fetching sales data", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return rows, nil
}

func (s *reportService) GetUserTransactionHistory(ctx context.Context, userID string) ([]repository.TransactionHistoryRow, error) {
	rows, err := s.transactionRepo.GetUserTransactionHistory(ctx, userID)
	if err != nil {
		s.log.Error("error fetching transaction history", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return rows, nil
}

func (s *reportService) GetUserTopupHistory(ctx context.Context, userID string) ([]model.Transaction, error) {
	transactions, err := s.transactionRepo.GetUserTransactions(ctx, userID)
	if err != nil {
		s.log.Error("error fetching user transactions", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	topups := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Type == model.TxTypeTopup {
			topups = append(topups, tx)
		}
	}
	return topups, nil
}
