package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Calvin-77/movie-store-app/internal/constants"
	"github.com/Calvin-77/movie-store-app/internal/entity"
	"github.com/Calvin-77/movie-store-app/internal/metrics"
	"github.com/Calvin-77/movie-store-app/internal/mocks"
	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/Calvin-77/movie-store-app/internal/repository"
	"github.com/Calvin-77/movie-store-app/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Prometheus collectors register globally, so the package shares one set.
var testMetrics = metrics.NewMetrics()

type balanceFixture struct {
	txManager       *mocks.TxManager
	userRepo        *mocks.UserRepository
	movieRepo       *mocks.MovieRepository
	transactionRepo *mocks.TransactionRepository
	svc             service.BalanceService
}

func newBalanceFixture() *balanceFixture {
	f := &balanceFixture{
		txManager:       &mocks.TxManager{},
		userRepo:        &mocks.UserRepository{},
		movieRepo:       &mocks.MovieRepository{},
		transactionRepo: &mocks.TransactionRepository{},
	}
	f.svc = service.NewBalanceService(f.txManager, f.userRepo, f.movieRepo,
		f.transactionRepo, zap.NewNop(), testMetrics)
	return f
}

func serviceErrorCode(t *testing.T, err error) string {
	t.Helper()
	var svcErr service.Error
	require.ErrorAs(t, err, &svcErr)
	return svcErr.Code
}

func TestBalanceService_Topup(t *testing.T) {
	ctx := context.Background()

	t.Run("credits balance and records topup transaction", func(t *testing.T) {
		f := newBalanceFixture()

		f.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.userRepo.On("UpdateBalance", mock.Anything, "user-1", int64(20000)).Return(nil)
		f.transactionRepo.On("Create", mock.Anything,
			mock.MatchedBy(func(tx *model.Transaction) bool {
				return strings.HasPrefix(tx.ID, "transaction-") &&
					tx.UserID == "user-1" &&
					tx.MovieID == nil &&
					tx.Type == model.TxTypeTopup &&
					tx.Amount == 20000
			})).Return(nil)

		result, err := f.svc.Topup(ctx, service.TopupCommand{UserID: "user-1", Amount: 20000})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.TransactionID, "transaction-"))

		f.txManager.AssertExpectations(t)
		f.userRepo.AssertExpectations(t)
		f.transactionRepo.AssertExpectations(t)
	})

	t.Run("consecutive topups credit the full amounts", func(t *testing.T) {
		f := newBalanceFixture()

		f.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.userRepo.On("UpdateBalance", mock.Anything, "user-1", int64(20000)).Return(nil).Once()
		f.userRepo.On("UpdateBalance", mock.Anything, "user-1", int64(30000)).Return(nil).Once()
		f.transactionRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(nil)

		first, err := f.svc.Topup(ctx, service.TopupCommand{UserID: "user-1", Amount: 20000})
		require.NoError(t, err)
		second, err := f.svc.Topup(ctx, service.TopupCommand{UserID: "user-1", Amount: 30000})
		require.NoError(t, err)

		assert.NotEqual(t, first.TransactionID, second.TransactionID)
		f.userRepo.AssertExpectations(t)
		f.transactionRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("rejects zero amount before touching any repository", func(t *testing.T) {
		f := newBalanceFixture()

		_, err := f.svc.Topup(ctx, service.TopupCommand{UserID: "user-1", Amount: 0})

		assert.Equal(t, constants.ErrCodeValidationFailed, serviceErrorCode(t, err))

		var validationErr *entity.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, entity.ErrCodeTopupMissingProperty, validationErr.Code)

		f.txManager.AssertNotCalled(t, "WithTx")
		f.userRepo.AssertNotCalled(t, "UpdateBalance")
		f.transactionRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		f := newBalanceFixture()

		_, err := f.svc.Topup(ctx, service.TopupCommand{UserID: "user-1", Amount: -5})

		assert.Equal(t, constants.ErrCodeValidationFailed, serviceErrorCode(t, err))

		var validationErr *entity.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, entity.ErrCodeTopupNotPositive, validationErr.Code)

		f.txManager.AssertNotCalled(t, "WithTx")
	})

	t.Run("returns not found when user does not exist", func(t *testing.T) {
		f := newBalanceFixture()

		f.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.userRepo.On("UpdateBalance", mock.Anything, "ghost", int64(1000)).
			Return(repository.ErrUserNotFound)

		_, err := f.svc.Topup(ctx, service.TopupCommand{UserID: "ghost", Amount: 1000})

		assert.Equal(t, constants.ErrCodeUserNotFound, serviceErrorCode(t, err))
		f.transactionRepo.AssertNotCalled(t, "Create")
	})

	t.Run("fails the whole operation when the ledger insert fails", func(t *testing.T) {
		f := newBalanceFixture()

		f.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.userRepo.On("UpdateBalance", mock.Anything, "user-1", int64(1000)).Return(nil)
		f.transactionRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).
			Return(errors.New("connection reset"))

		result, err := f.svc.Topup(ctx, service.TopupCommand{UserID: "user-1", Amount: 1000})

		assert.Equal(t, constants.ErrCodeOperationFailed, serviceErrorCode(t, err))
		assert.Equal(t, service.TransactionResult{}, result)
	})
}

func TestBalanceService_Purchase(t *testing.T) {
	ctx := context.Background()
	movieID := "movie-1"

	movie := model.Movie{ID: movieID, Title: "Inception", Price: 50000, Video: "https://cdn/movie-1"}

	t.Run("debits price and records purchase transaction", func(t *testing.T) {
		f := newBalanceFixture()

		f.movieRepo.On("GetByID", ctx, movieID).Return(movie, nil)
		f.userRepo.On("GetByID", ctx, "user-1").Return(model.User{ID: "user-1", Balance: 100000}, nil)
		f.transactionRepo.On("CheckUserOwnership", ctx, "user-1", movieID).Return(false, nil)
		f.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.userRepo.On("UpdateBalance", mock.Anything, "user-1", int64(-50000)).Return(nil)
		f.transactionRepo.On("Create", mock.Anything,
			mock.MatchedBy(func(tx *model.Transaction) bool {
				return strings.HasPrefix(tx.ID, "transaction-") &&
					tx.UserID == "user-1" &&
					tx.MovieID != nil && *tx.MovieID == movieID &&
					tx.Type == model.TxTypePurchase &&
					tx.Amount == 50000
			})).Return(nil)

		result, err := f.svc.Purchase(ctx, service.PurchaseCommand{UserID: "user-1", MovieID: movieID})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.TransactionID, "transaction-"))

		f.txManager.AssertExpectations(t)
		f.userRepo.AssertExpectations(t)
		f.transactionRepo.AssertExpectations(t)
	})

	t.Run("insufficient balance blocks any mutation", func(t *testing.T) {
		f := newBalanceFixture()

		f.movieRepo.On("GetByID", ctx, movieID).Return(movie, nil)
		f.userRepo.On("GetByID", ctx, "user-1").Return(model.User{ID: "user-1", Balance: 0}, nil)

		_, err := f.svc.Purchase(ctx, service.PurchaseCommand{UserID: "user-1", MovieID: movieID})

		assert.Equal(t, constants.ErrCodeInsufficientBalance, serviceErrorCode(t, err))
		assert.ErrorIs(t, err, service.ErrInsufficientBalance)

		f.txManager.AssertNotCalled(t, "WithTx")
		f.userRepo.AssertNotCalled(t, "UpdateBalance")
		f.transactionRepo.AssertNotCalled(t, "Create")
	})

	t.Run("already owned movie cannot be purchased again", func(t *testing.T) {
		f := newBalanceFixture()

		f.movieRepo.On("GetByID", ctx, movieID).Return(movie, nil)
		f.userRepo.On("GetByID", ctx, "user-1").Return(model.User{ID: "user-1", Balance: 100000}, nil)
		f.transactionRepo.On("CheckUserOwnership", ctx, "user-1", movieID).Return(true, nil)

		_, err := f.svc.Purchase(ctx, service.PurchaseCommand{UserID: "user-1", MovieID: movieID})

		assert.Equal(t, constants.ErrCodeMovieAlreadyOwned, serviceErrorCode(t, err))
		assert.ErrorIs(t, err, service.ErrMovieAlreadyOwned)

		f.txManager.AssertNotCalled(t, "WithTx")
		f.userRepo.AssertNotCalled(t, "UpdateBalance")
		f.transactionRepo.AssertNotCalled(t, "Create")
	})

	t.Run("unknown movie is fatal", func(t *testing.T) {
		f := newBalanceFixture()

		f.movieRepo.On("GetByID", ctx, "missing").Return(model.Movie{}, repository.ErrMovieNotFound)

		_, err := f.svc.Purchase(ctx, service.PurchaseCommand{UserID: "user-1", MovieID: "missing"})

		assert.Equal(t, constants.ErrCodeMovieNotFound, serviceErrorCode(t, err))
		f.userRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("unknown user is fatal", func(t *testing.T) {
		f := newBalanceFixture()

		f.movieRepo.On("GetByID", ctx, movieID).Return(movie, nil)
		f.userRepo.On("GetByID", ctx, "ghost").Return(model.User{}, repository.ErrUserNotFound)

		_, err := f.svc.Purchase(ctx, service.PurchaseCommand{UserID: "ghost", MovieID: movieID})

		assert.Equal(t, constants.ErrCodeUserNotFound, serviceErrorCode(t, err))
		f.txManager.AssertNotCalled(t, "WithTx")
	})

	t.Run("concurrent purchase losing the unique index race", func(t *testing.T) {
		f := newBalanceFixture()

		f.movieRepo.On("GetByID", ctx, movieID).Return(movie, nil)
		f.userRepo.On("GetByID", ctx, "user-1").Return(model.User{ID: "user-1", Balance: 100000}, nil)
		f.transactionRepo.On("CheckUserOwnership", ctx, "user-1", movieID).Return(false, nil)
		f.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.userRepo.On("UpdateBalance", mock.Anything, "user-1", int64(-50000)).Return(nil)
		f.transactionRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).
			Return(repository.ErrTransactionExisted)

		_, err := f.svc.Purchase(ctx, service.PurchaseCommand{UserID: "user-1", MovieID: movieID})

		assert.Equal(t, constants.ErrCodeMovieAlreadyOwned, serviceErrorCode(t, err))
	})

	t.Run("concurrent debit losing the funds guard race", func(t *testing.T) {
		f := newBalanceFixture()

		f.movieRepo.On("GetByID", ctx, movieID).Return(movie, nil)
		f.userRepo.On("GetByID", ctx, "user-1").Return(model.User{ID: "user-1", Balance: 50000}, nil)
		f.transactionRepo.On("CheckUserOwnership", ctx, "user-1", movieID).Return(false, nil)
		f.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.userRepo.On("UpdateBalance", mock.Anything, "user-1", int64(-50000)).
			Return(repository.ErrInsufficientBalance)

		_, err := f.svc.Purchase(ctx, service.PurchaseCommand{UserID: "user-1", MovieID: movieID})

		assert.Equal(t, constants.ErrCodeInsufficientBalance, serviceErrorCode(t, err))
		f.transactionRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		f := newBalanceFixture()

		_, err := f.svc.Purchase(ctx, service.PurchaseCommand{UserID: "user-1"})

		assert.Equal(t, constants.ErrCodeValidationFailed, serviceErrorCode(t, err))

		var validationErr *entity.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, entity.ErrCodePurchaseMissingProperty, validationErr.Code)

		f.movieRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestBalanceService_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("returns current balance", func(t *testing.T) {
		f := newBalanceFixture()
		f.userRepo.On("GetByID", ctx, "user-1").Return(model.User{ID: "user-1", Balance: 75000}, nil)

		balance, err := f.svc.GetBalance(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, int64(75000), balance)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newBalanceFixture()
		f.userRepo.On("GetByID", ctx, "ghost").Return(model.User{}, repository.ErrUserNotFound)

		_, err := f.svc.GetBalance(ctx, "ghost")

		assert.Equal(t, constants.ErrCodeUserNotFound, serviceErrorCode(t, err))
	})
}
