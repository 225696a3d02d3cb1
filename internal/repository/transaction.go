package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// TransactionHistoryRow is a ledger entry joined with the movie title, as
// shown in a user's transaction history.
type TransactionHistoryRow struct {
	ID         string       `gorm:"column:id" json:"id"`
	Type       model.TxType `gorm:"column:type" json:"type"`
	Amount     int64        `gorm:"column:amount" json:"amount"`
	MovieTitle *string      `gorm:"column:movie_title" json:"movieTitle"`
	Date       time.Time    `gorm:"column:date" json:"date"`
}

// SalesRow is one purchase joined with the buyer and the movie, as shown in
// the admin sales report.
type SalesRow struct {
	ID         string    `gorm:"column:id" json:"id"`
	Username   string    `gorm:"column:username" json:"username"`
	MovieTitle *string   `gorm:"column:movie_title" json:"movieTitle"`
	Amount     int64     `gorm:"column:amount" json:"amount"`
	Date       time.Time `gorm:"column:date" json:"date"`
}

// PurchasedMovieRow is one movie a user owns, with the purchase date from
// the ledger entry that granted ownership.
type PurchasedMovieRow struct {
	ID           string    `gorm:"column:id"`
	Title        string    `gorm:"column:title"`
	Year         int       `gorm:"column:year"`
	Price        int64     `gorm:"column:price"`
	Image        []byte    `gorm:"column:image"`
	PurchaseDate time.Time `gorm:"column:purchase_date"`
}

type TransactionRepository interface {
	// Create appends a ledger entry. A duplicate (user_id, movie_id) pair
	// is rejected by the storage layer with ErrTransactionExisted.
	Create(ctx context.Context, tx *model.Transaction) error
	CheckUserOwnership(ctx context.Context, userID, movieID string) (bool, error)
	GetUserTransactions(ctx context.Context, userID string) ([]model.Transaction, error)
	GetUserTransactionHistory(ctx context.Context, userID string) ([]TransactionHistoryRow, error)
	GetAllSalesData(ctx context.Context) ([]SalesRow, error)
	GetUserPurchasedMovies(ctx context.Context, userID string) ([]PurchasedMovieRow, error)
}

type transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transaction{db: db}
}

func (t *transaction) Create(ctx context.Context, tx *model.Transaction) error {
	err := GetTx(ctx, t.db).Create(tx).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrTransactionExisted
	}

	return err
}

func (t *transaction) CheckUserOwnership(ctx context.Context, userID, movieID string) (bool, error) {
	var count int64
	err := GetTx(ctx, t.db).Model(&model.Transaction{}).
		Where("user_id = ? AND movie_id = ? AND type = ?", userID, movieID, model.TxTypePurchase).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (t *transaction) GetUserTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := GetTx(ctx, t.db).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (t *transaction) GetUserTransactionHistory(ctx context.Context, userID string) ([]TransactionHistoryRow, error) {
	var rows []TransactionHistoryRow
	err := GetTx(ctx, t.db).Table("transactions t").
		Select("t.id, t.type, t.amount, m.title AS movie_title, t.date").
		Joins("LEFT JOIN movies m ON t.movie_id = m.id").
		Where("t.user_id = ?", userID).
		Order("t.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (t *transaction) GetAllSalesData(ctx context.Context) ([]SalesRow, error) {
	var rows []SalesRow
	err := GetTx(ctx, t.db).Table("transactions t").
		Select("t.id, u.username, m.title AS movie_title, t.amount, t.date").
		Joins("JOIN users u ON t.user_id = u.id").
		Joins("LEFT JOIN movies m ON t.movie_id = m.id").
		Where("t.type = ?", model.TxTypePurchase).
		Order("t.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (t *transaction) GetUserPurchasedMovies(ctx context.Context, userID string) ([]PurchasedMovieRow, error) {
	var rows []PurchasedMovieRow
	err := GetTx(ctx, t.db).Table("transactions t").
		Select("DISTINCT m.id, m.title, m.year, m.price, m.image, t.date AS purchase_date").
		Joins("JOIN movies m ON t.movie_id = m.id").
		Where("t.user_id = ? AND t.type = ?", userID, model.TxTypePurchase).
		Order("t.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
