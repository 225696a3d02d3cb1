package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/Calvin-77/movie-store-app/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieRepository_Update(t *testing.T) {
	ctx := context.Background()

	movie := &model.Movie{
		ID:    "movie-1",
		Title: "Inception",
		Price: 50000,
		Video: "https://cdn/movie-1",
	}

	t.Run("updates an existing movie", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMovieRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE `movies` SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, movie)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("resubmitting identical values is not a missing movie", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMovieRepository(db)

		// With clientFoundRows in the DSN a value-identical UPDATE still
		// reports the matched row.
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `movies` SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, movie)

		require.NoError(t, err)
	})

	t.Run("missing movie", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMovieRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE `movies` SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, movie)

		assert.ErrorIs(t, err, repository.ErrMovieNotFound)
	})
}

func TestMovieRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing movie", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMovieRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `movies` WHERE id = ?")).
			WithArgs("movie-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, "movie-1")

		require.NoError(t, err)
	})

	t.Run("missing movie", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMovieRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `movies` WHERE id = ?")).
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "ghost")

		assert.ErrorIs(t, err, repository.ErrMovieNotFound)
	})
}

func TestMovieRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing movie", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewMovieRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `movies` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, "ghost")

		assert.ErrorIs(t, err, repository.ErrMovieNotFound)
	})
}
