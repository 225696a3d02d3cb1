package model

import "time"

type TxType string

const (
	TxTypeTopup    TxType = "topup"
	TxTypePurchase TxType = "purchase"
)

// Transaction is one row of the append-only ledger. Rows are never updated
// or deleted; the current user balance must always equal the net effect of
// the user's topups minus purchases.
//
// The unique index over (user_id, movie_id) is the authoritative guard
// against buying the same movie twice: topups carry a NULL movie_id and are
// exempt under MySQL unique-index NULL semantics.
type Transaction struct {
	ID      string    `gorm:"column:id;primaryKey;type:varchar(50)"`
	UserID  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_transactions_user_movie"`
	MovieID *string   `gorm:"type:varchar(50);uniqueIndex:idx_transactions_user_movie"`
	Amount  int64     `gorm:"not null"`
	Type    TxType    `gorm:"type:varchar(20);not null"`
	Date    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`

	User  User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

func (Transaction) TableName() string {
	return "transactions"
}
