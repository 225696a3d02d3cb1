package entity

const (
	ErrCodePurchaseMissingProperty = "PURCHASE_MOVIE.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrCodePurchaseInvalidType     = "PURCHASE_MOVIE.NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// PurchaseMovie is the validated input of a movie purchase.
type PurchaseMovie struct {
	UserID  string
	MovieID string
}

func NewPurchaseMovie(userID, movieID string) (PurchaseMovie, error) {
	if userID == "" || movieID == "" {
		return PurchaseMovie{}, NewValidationError(ErrCodePurchaseMissingProperty)
	}

	return PurchaseMovie{UserID: userID, MovieID: movieID}, nil
}
