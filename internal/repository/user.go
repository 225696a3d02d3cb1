package repository

import (
	"context"
	"errors"

	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	// UpdateBalance applies delta to the user's balance as a single
	// relative update. A negative delta is rejected with
	// ErrInsufficientBalance when it would drive the balance below zero.
	UpdateBalance(ctx context.Context, userID string, delta int64) error
	UpdateProfile(ctx context.Context, user *model.User) error
	IsAdmin(ctx context.Context, id string) (bool, error)
}

type user struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &user{db: db}
}

func (r *user) Create(ctx context.Context, u *model.User) error {
	err := GetTx(ctx, r.db).Create(u).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrUserExists
	}

	return err
}

func (r *user) GetByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := GetTx(ctx, r.db).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *user) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := GetTx(ctx, r.db).Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *user) UpdateBalance(ctx context.Context, userID string, delta int64) error {
	db := GetTx(ctx, r.db)

	query := db.Model(&model.User{}).Where("id = ?", userID)
	if delta < 0 {
		query = query.Where("balance + ? >= 0", delta)
	}

	result := query.UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if delta >= 0 {
			return ErrUserNotFound
		}

		// Zero rows on a debit means either the user is gone or the
		// funds guard rejected the update.
		var count int64
		if err := db.Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrUserNotFound
		}
		return ErrInsufficientBalance
	}

	return nil
}

func (r *user) UpdateProfile(ctx context.Context, u *model.User) error {
	result := GetTx(ctx, r.db).Model(&model.User{}).Where("id = ?", u.ID).
		Updates(map[string]any{
			"username": u.Username,
			"email":    u.Email,
			"password": u.Password,
		})
	if result.Error != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(result.Error, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrUserExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *user) IsAdmin(ctx context.Context, id string) (bool, error) {
	var u model.User
	err := GetTx(ctx, r.db).Select("role").Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	return u.Role == model.RoleAdmin, nil
}
