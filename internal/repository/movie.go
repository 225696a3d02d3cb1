package repository

import (
	"context"
	"errors"

	"github.com/Calvin-77/movie-store-app/internal/model"
	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *model.Movie) error
	GetByID(ctx context.Context, id string) (model.Movie, error)
	GetAll(ctx context.Context) ([]model.Movie, error)
	Update(ctx context.Context, movie *model.Movie) error
	Delete(ctx context.Context, id string) error
}

type movie struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movie{db: db}
}

func (r *movie) Create(ctx context.Context, m *model.Movie) error {
	return GetTx(ctx, r.db).Create(m).Error
}

func (r *movie) GetByID(ctx context.Context, id string) (model.Movie, error) {
	var m model.Movie
	err := GetTx(ctx, r.db).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, err
	}
	return m, nil
}

func (r *movie) GetAll(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	err := GetTx(ctx, r.db).
		Select("id", "title", "year", "price", "image").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movie) Update(ctx context.Context, m *model.Movie) error {
	result := GetTx(ctx, r.db).Model(&model.Movie{}).Where("id = ?", m.ID).
		Updates(map[string]any{
			"title":    m.Title,
			"synopsis": m.Synopsis,
			"price":    m.Price,
			"year":     m.Year,
			"video":    m.Video,
			"image":    m.Image,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (r *movie) Delete(ctx context.Context, id string) error {
	result := GetTx(ctx, r.db).Where("id = ?", id).Delete(&model.Movie{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMovieNotFound
	}
	return nil
}
