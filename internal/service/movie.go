package service

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/Calvin-77/movie-store-app/internal/constants"
	"github.com/Calvin-77/movie-store-app/internal/entity"
	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/Calvin-77/movie-store-app/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrForbiddenAccess = errors.New("FORBIDDEN_ACCESS")

// MovieSummary is one row of the public catalog listing.
type MovieSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year"`
	Price int64  `json:"price"`
	Image string `json:"image,omitempty"`
}

// PurchasedMovie is one movie a user owns.
type PurchasedMovie struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Year         int       `json:"year"`
	Price        int64     `json:"price"`
	Image        string    `json:"image,omitempty"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

type MovieService interface {
	// GetMovieDetails returns the movie with the owned flag derived from
	// the ledger. userID is empty for anonymous callers, who always see
	// owned=false.
	GetMovieDetails(ctx context.Context, movieID, userID string) (entity.MovieDetails, error)
	GetAllMovies(ctx context.Context) ([]MovieSummary, error)
	GetUserPurchasedMovies(ctx context.Context, userID string) ([]PurchasedMovie, error)
	AddMovie(ctx context.Context, cmd AddMovieCommand) (string, error)
	UpdateMovie(ctx context.Context, cmd UpdateMovieCommand) error
	DeleteMovie(ctx context.Context, requesterID, movieID string) error
}

type movieService struct {
	userRepo        repository.UserRepository
	movieRepo       repository.MovieRepository
	transactionRepo repository.TransactionRepository
	log             *zap.Logger
}

func NewMovieService(userRepo repository.UserRepository, movieRepo repository.MovieRepository,
	transactionRepo repository.TransactionRepository, log *zap.Logger) MovieService {
	return &movieService{
		userRepo:        userRepo,
		movieRepo:       movieRepo,
		transactionRepo: transactionRepo,
		log:             log,
	}
}

func (s *movieService) GetMovieDetails(ctx context.Context, movieID, userID string) (entity.MovieDetails, error) {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return entity.MovieDetails{}, NewServiceError(constants.ErrCodeMovieNotFound, err)
		}
		return entity.MovieDetails{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	owned := false
	if userID != "" {
		owned, err = s.transactionRepo.CheckUserOwnership(ctx, userID, movieID)
		if err != nil {
			return entity.MovieDetails{}, NewServiceError(constants.ErrCodeOperationFailed, err)
		}
	}

	details, err := entity.NewMovieDetails(movie.ID, movie.Title, movie.Synopsis,
		movie.Price, movie.Year, movie.Video, movie.Image, owned)
	if err != nil {
		return entity.MovieDetails{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return details, nil
}

func (s *movieService) GetAllMovies(ctx context.Context) ([]MovieSummary, error) {
	movies, err := s.movieRepo.GetAll(ctx)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	summaries := make([]MovieSummary, 0, len(movies))
	for _, m := range movies {
		summaries = append(summaries, MovieSummary{
			ID:    m.ID,
			Title: m.Title,
			Year:  m.Year,
			Price: m.Price,
			Image: encodeImage(m.Image),
		})
	}

	return summaries, nil
}

func (s *movieService) GetUserPurchasedMovies(ctx context.Context, userID string) ([]PurchasedMovie, error) {
	rows, err := s.transactionRepo.GetUserPurchasedMovies(ctx, userID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	purchased := make([]PurchasedMovie, 0, len(rows))
	for _, row := range rows {
		purchased = append(purchased, PurchasedMovie{
			ID:           row.ID,
			Title:        row.Title,
			Year:         row.Year,
			Price:        row.Price,
			Image:        encodeImage(row.Image),
			PurchaseDate: row.PurchaseDate,
		})
	}

	return purchased, nil
}

func (s *movieService) AddMovie(ctx context.Context, cmd AddMovieCommand) (string, error) {
	if err := s.requireAdmin(ctx, cmd.RequesterID); err != nil {
		return "", err
	}

	movie := model.Movie{
		ID:       newMovieID(),
		Title:    cmd.Title,
		Synopsis: cmd.Synopsis,
		Price:    cmd.Price,
		Year:     cmd.Year,
		Video:    cmd.Video,
		Image:    cmd.Image,
	}

	if err := s.movieRepo.Create(ctx, &movie); err != nil {
		s.log.Error("error adding movie", zap.Error(err))
		return "", NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("Movie added", zap.String("movie_id", movie.ID), zap.String("title", movie.Title))
	return movie.ID, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, cmd UpdateMovieCommand) error {
	if err := s.requireAdmin(ctx, cmd.RequesterID); err != nil {
		return err
	}

	movie := model.Movie{
		ID:       cmd.MovieID,
		Title:    cmd.Title,
		Synopsis: cmd.Synopsis,
		Price:    cmd.Price,
		Year:     cmd.Year,
		Video:    cmd.Video,
		Image:    cmd.Image,
	}

	if err := s.movieRepo.Update(ctx, &movie); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return NewServiceError(constants.ErrCodeMovieNotFound, err)
		}
		s.log.Error("error updating movie", zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, requesterID, movieID string) error {
	if err := s.requireAdmin(ctx, requesterID); err != nil {
		return err
	}

	if err := s.movieRepo.Delete(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return NewServiceError(constants.ErrCodeMovieNotFound, err)
		}
		s.log.Error("error deleting movie", zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

func (s *movieService) requireAdmin(ctx context.Context, requesterID string) error {
	isAdmin, err := s.userRepo.IsAdmin(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	if !isAdmin {
		return NewServiceError(constants.ErrCodeForbiddenAccess, ErrForbiddenAccess)
	}
	return nil
}

func newMovieID() string {
	return "movie-" + uuid.NewString()
}

func encodeImage(image []byte) string {
	if len(image) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(image)
}
