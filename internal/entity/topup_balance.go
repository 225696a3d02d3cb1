package entity

const (
	ErrCodeTopupMissingProperty = "TOPUP_BALANCE.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrCodeTopupInvalidType     = "TOPUP_BALANCE.NOT_MEET_DATA_TYPE_SPECIFICATION"
	ErrCodeTopupNotPositive     = "TOPUP_BALANCE.AMOUNT_MUST_BE_POSITIVE"
)

// TopupBalance is the validated input of a balance top-up.
type TopupBalance struct {
	UserID string
	Amount int64
}

func NewTopupBalance(userID string, amount int64) (TopupBalance, error) {
	if userID == "" || amount == 0 {
		return TopupBalance{}, NewValidationError(ErrCodeTopupMissingProperty)
	}

	if amount < 0 {
		return TopupBalance{}, NewValidationError(ErrCodeTopupNotPositive)
	}

	return TopupBalance{UserID: userID, Amount: amount}, nil
}
