package service

import (
	"context"
	"errors"
	"time"

	"github.com/Calvin-77/movie-store-app/internal/constants"
	"github.com/Calvin-77/movie-store-app/internal/entity"
	"github.com/Calvin-77/movie-store-app/internal/metrics"
	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/Calvin-77/movie-store-app/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInsufficientBalance = errors.New("INSUFFICIENT_BALANCE")
	ErrMovieAlreadyOwned   = errors.New("MOVIE_ALREADY_OWNED")
)

// BalanceService owns every mutation of a user's balance. The balance
// change and its ledger entry are written in one database transaction;
// nothing else in the system touches the balance column.
type BalanceService interface {
	Topup(ctx context.Context, cmd TopupCommand) (TransactionResult, error)
	Purchase(ctx context.Context, cmd PurchaseCommand) (TransactionResult, error)
	GetBalance(ctx context.Context, userID string) (int64, error)
}

type balanceService struct {
	txManager       repository.TxManager
	userRepo        repository.UserRepository
	movieRepo       repository.MovieRepository
	transactionRepo repository.TransactionRepository
	log             *zap.Logger
	metrics         *metrics.Metrics
}

func NewBalanceService(txManager repository.TxManager, userRepo repository.UserRepository,
	movieRepo repository.MovieRepository, transactionRepo repository.TransactionRepository,
	log *zap.Logger, metrics *metrics.Metrics) BalanceService {
	return &balanceService{
		txManager:       txManager,
		userRepo:        userRepo,
		movieRepo:       movieRepo,
		transactionRepo: transactionRepo,
		log:             log,
		metrics:         metrics,
	}
}

func (s *balanceService) Topup(ctx context.Context, cmd TopupCommand) (TransactionResult, error) {
	topup, err := entity.NewTopupBalance(cmd.UserID, cmd.Amount)
	if err != nil {
		return TransactionResult{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	transaction := model.Transaction{
		ID:     newTransactionID(),
		UserID: topup.UserID,
		Type:   model.TxTypeTopup,
		Amount: topup.Amount,
		Date:   time.Now(),
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.userRepo.UpdateBalance(ctx, topup.UserID, topup.Amount); err != nil {
			s.log.Error("error crediting user balance", zap.Error(err))

			if errors.Is(err, repository.ErrUserNotFound) {
				return NewServiceError(constants.ErrCodeUserNotFound, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := s.transactionRepo.Create(ctx, &transaction); err != nil {
			s.log.Error("error recording topup transaction", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return nil
	})

	if err != nil {
		s.metrics.RecordTransactionError("topup", errorCode(err))
		return TransactionResult{}, err
	}

	s.metrics.RecordTransactionCreated("topup")
	s.log.Info("Balance topped up",
		zap.String("user_id", topup.UserID),
		zap.Int64("amount", topup.Amount),
		zap.String("transaction_id", transaction.ID),
	)

	return TransactionResult{TransactionID: transaction.ID, TransactionTime: transaction.Date}, nil
}

func (s *balanceService) Purchase(ctx context.Context, cmd PurchaseCommand) (TransactionResult, error) {
	purchase, err := entity.NewPurchaseMovie(cmd.UserID, cmd.MovieID)
	if err != nil {
		return TransactionResult{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	movie, err := s.movieRepo.GetByID(ctx, purchase.MovieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return TransactionResult{}, NewServiceError(constants.ErrCodeMovieNotFound, err)
		}
		return TransactionResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	user, err := s.userRepo.GetByID(ctx, purchase.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TransactionResult{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return TransactionResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if user.Balance < movie.Price {
		return TransactionResult{}, NewServiceError(constants.ErrCodeInsufficientBalance, ErrInsufficientBalance)
	}

	owned, err := s.transactionRepo.CheckUserOwnership(ctx, purchase.UserID, purchase.MovieID)
	if err != nil {
		return TransactionResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	if owned {
		return TransactionResult{}, NewServiceError(constants.ErrCodeMovieAlreadyOwned, ErrMovieAlreadyOwned)
	}

	transaction := model.Transaction{
		ID:      newTransactionID(),
		UserID:  purchase.UserID,
		MovieID: &movie.ID,
		Type:    model.TxTypePurchase,
		Amount:  movie.Price,
		Date:    time.Now(),
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.userRepo.UpdateBalance(ctx, purchase.UserID, -movie.Price); err != nil {
			s.log.Error("error debiting user balance", zap.Error(err))

			switch {
			case errors.Is(err, repository.ErrInsufficientBalance):
				// A concurrent debit won the race after the funds check.
				return NewServiceError(constants.ErrCodeInsufficientBalance, ErrInsufficientBalance)
			case errors.Is(err, repository.ErrUserNotFound):
				return NewServiceError(constants.ErrCodeUserNotFound, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := s.transactionRepo.Create(ctx, &transaction); err != nil {
			s.log.Error("error recording purchase transaction", zap.Error(err))

			if errors.Is(err, repository.ErrTransactionExisted) {
				// A concurrent purchase of the same movie hit the unique
				// index first; rolling back also undoes the debit.
				return NewServiceError(constants.ErrCodeMovieAlreadyOwned, ErrMovieAlreadyOwned)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return nil
	})

	if err != nil {
		s.metrics.RecordTransactionError("purchase", errorCode(err))
		return TransactionResult{}, err
	}

	s.metrics.RecordTransactionCreated("purchase")
	s.metrics.RecordPurchaseAmount(movie.Price)
	s.log.Info("Movie purchased",
		zap.String("user_id", purchase.UserID),
		zap.String("movie_id", purchase.MovieID),
		zap.Int64("price", movie.Price),
		zap.String("transaction_id", transaction.ID),
	)

	return TransactionResult{TransactionID: transaction.ID, TransactionTime: transaction.Date}, nil
}

func (s *balanceService) GetBalance(ctx context.Context, userID string) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return user.Balance, nil
}

func newTransactionID() string {
	return "transaction-" + uuid.NewString()
}

func errorCode(err error) string {
	var svcErr Error
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return "UNKNOWN"
}
