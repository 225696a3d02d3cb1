package apperrors

import "github.com/Calvin-77/movie-store-app/internal/entity"

var validationMessages = map[string]string{
	entity.ErrCodeTopupMissingProperty:        "cannot top up balance because a needed property is missing",
	entity.ErrCodeTopupInvalidType:            "cannot top up balance because the data type does not match",
	entity.ErrCodeTopupNotPositive:            "top up amount must be positive",
	entity.ErrCodePurchaseMissingProperty:     "cannot purchase movie because a needed property is missing",
	entity.ErrCodePurchaseInvalidType:         "cannot purchase movie because the data type does not match",
	entity.ErrCodeMovieDetailsMissingProperty: "cannot show movie details because a needed property is missing",
	entity.ErrCodeMovieDetailsInvalidType:     "cannot show movie details because the data type does not match",
	entity.ErrCodeRegisterMissingProperty:     "cannot register user because a needed property is missing",
	entity.ErrCodeRegisterInvalidType:         "cannot register user because the data type does not match",
	entity.ErrCodeRegisterRestrictedCharacter: "cannot register user because the username contains a restricted character",
}

// TranslateValidationError maps an entity validation code to its client
// message. Unknown codes fall back to the raw code so new entities fail
// loudly instead of silently.
func TranslateValidationError(err *entity.ValidationError) string {
	if msg, ok := validationMessages[err.Code]; ok {
		return msg
	}
	return err.Code
}
