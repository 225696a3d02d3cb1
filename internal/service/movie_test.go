package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Calvin-77/movie-store-app/internal/constants"
	"github.com/Calvin-77/movie-store-app/internal/mocks"
	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/Calvin-77/movie-store-app/internal/repository"
	"github.com/Calvin-77/movie-store-app/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type movieFixture struct {
	userRepo        *mocks.UserRepository
	movieRepo       *mocks.MovieRepository
	transactionRepo *mocks.TransactionRepository
	svc             service.MovieService
}

func newMovieFixture() *movieFixture {
	f := &movieFixture{
		userRepo:        &mocks.UserRepository{},
		movieRepo:       &mocks.MovieRepository{},
		transactionRepo: &mocks.TransactionRepository{},
	}
	f.svc = service.NewMovieService(f.userRepo, f.movieRepo, f.transactionRepo, zap.NewNop())
	return f
}

func TestMovieService_GetMovieDetails(t *testing.T) {
	ctx := context.Background()

	movie := model.Movie{
		ID:       "movie-1",
		Title:    "Inception",
		Synopsis: "A thief who steals corporate secrets.",
		Price:    50000,
		Year:     2010,
		Video:    "https://cdn/movie-1",
	}

	t.Run("owned flag derives from the ledger for authenticated callers", func(t *testing.T) {
		f := newMovieFixture()

		f.movieRepo.On("GetByID", ctx, "movie-1").Return(movie, nil)
		f.transactionRepo.On("CheckUserOwnership", ctx, "user-1", "movie-1").Return(true, nil)

		details, err := f.svc.GetMovieDetails(ctx, "movie-1", "user-1")

		require.NoError(t, err)
		assert.True(t, details.Owned)
		assert.Equal(t, "Inception", details.Title)
		assert.Equal(t, int64(50000), details.Price)
	})

	t.Run("anonymous callers always see owned=false", func(t *testing.T) {
		f := newMovieFixture()

		f.movieRepo.On("GetByID", ctx, "movie-1").Return(movie, nil)

		details, err := f.svc.GetMovieDetails(ctx, "movie-1", "")

		require.NoError(t, err)
		assert.False(t, details.Owned)
		f.transactionRepo.AssertNotCalled(t, "CheckUserOwnership")
	})

	t.Run("unknown movie", func(t *testing.T) {
		f := newMovieFixture()

		f.movieRepo.On("GetByID", ctx, "missing").Return(model.Movie{}, repository.ErrMovieNotFound)

		_, err := f.svc.GetMovieDetails(ctx, "missing", "user-1")

		assert.Equal(t, constants.ErrCodeMovieNotFound, serviceErrorCode(t, err))
	})
}

func TestMovieService_AdminGate(t *testing.T) {
	ctx := context.Background()

	cmd := service.AddMovieCommand{
		RequesterID: "user-1",
		Title:       "Inception",
		Price:       50000,
		Video:       "https://cdn/movie-1",
	}

	t.Run("admin can add a movie", func(t *testing.T) {
		f := newMovieFixture()

		f.userRepo.On("IsAdmin", ctx, "user-1").Return(true, nil)
		f.movieRepo.On("Create", ctx, mock.MatchedBy(func(m *model.Movie) bool {
			return m.Title == "Inception" && m.Price == 50000 && m.ID != ""
		})).Return(nil)

		movieID, err := f.svc.AddMovie(ctx, cmd)

		require.NoError(t, err)
		assert.NotEmpty(t, movieID)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		f := newMovieFixture()

		f.userRepo.On("IsAdmin", ctx, "user-1").Return(false, nil)

		_, err := f.svc.AddMovie(ctx, cmd)

		assert.Equal(t, constants.ErrCodeForbiddenAccess, serviceErrorCode(t, err))
		assert.ErrorIs(t, err, service.ErrForbiddenAccess)
		f.movieRepo.AssertNotCalled(t, "Create")
	})

	t.Run("non-admin cannot delete", func(t *testing.T) {
		f := newMovieFixture()

		f.userRepo.On("IsAdmin", ctx, "user-1").Return(false, nil)

		err := f.svc.DeleteMovie(ctx, "user-1", "movie-1")

		assert.Equal(t, constants.ErrCodeForbiddenAccess, serviceErrorCode(t, err))
		f.movieRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("updating a missing movie", func(t *testing.T) {
		f := newMovieFixture()

		f.userRepo.On("IsAdmin", ctx, "admin-1").Return(true, nil)
		f.movieRepo.On("Update", ctx, mock.AnythingOfType("*model.Movie")).
			Return(repository.ErrMovieNotFound)

		err := f.svc.UpdateMovie(ctx, service.UpdateMovieCommand{
			RequesterID: "admin-1",
			MovieID:     "missing",
			Title:       "Inception",
			Price:       50000,
			Video:       "https://cdn/movie-1",
		})

		assert.Equal(t, constants.ErrCodeMovieNotFound, serviceErrorCode(t, err))
	})
}

func TestMovieService_GetUserPurchasedMovies(t *testing.T) {
	ctx := context.Background()

	t.Run("maps ledger rows to purchased movies", func(t *testing.T) {
		f := newMovieFixture()

		purchasedAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
		f.transactionRepo.On("GetUserPurchasedMovies", ctx, "user-1").
			Return([]repository.PurchasedMovieRow{
				{ID: "movie-1", Title: "Inception", Year: 2010, Price: 50000, PurchaseDate: purchasedAt},
			}, nil)

		movies, err := f.svc.GetUserPurchasedMovies(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "movie-1", movies[0].ID)
		assert.Equal(t, purchasedAt, movies[0].PurchaseDate)
	})
}
