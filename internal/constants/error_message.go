package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeForbiddenAccess     = "FORBIDDEN_ACCESS"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeMovieNotFound       = "MOVIE_NOT_FOUND"
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	ErrCodeMovieAlreadyOwned   = "MOVIE_ALREADY_OWNED"
	ErrCodeUsernameTaken       = "USERNAME_TAKEN"
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodeOperationFailed     = "OPERATION_FAILED"
)

const (
	ErrMsgValidationFailed    = "request validation failed"
	ErrMsgForbiddenAccess     = "you are not allowed to access this resource"
	ErrMsgUserNotFound        = "user not found"
	ErrMsgMovieNotFound       = "movie not found"
	ErrMsgInsufficientBalance = "balance is insufficient to purchase this movie"
	ErrMsgMovieAlreadyOwned   = "movie is already owned"
	ErrMsgUsernameTaken       = "username is not available"
	ErrMsgInvalidCredentials  = "wrong username or password"
	ErrMsgOperationFailed     = "operation failed"
)

var errorMessages = map[string]string{
	ErrCodeValidationFailed:    ErrMsgValidationFailed,
	ErrCodeForbiddenAccess:     ErrMsgForbiddenAccess,
	ErrCodeUserNotFound:        ErrMsgUserNotFound,
	ErrCodeMovieNotFound:       ErrMsgMovieNotFound,
	ErrCodeInsufficientBalance: ErrMsgInsufficientBalance,
	ErrCodeMovieAlreadyOwned:   ErrMsgMovieAlreadyOwned,
	ErrCodeUsernameTaken:       ErrMsgUsernameTaken,
	ErrCodeInvalidCredentials:  ErrMsgInvalidCredentials,
	ErrCodeOperationFailed:     ErrMsgOperationFailed,
}

func GetErrorMessage(code string) string {
	msg, exists := errorMessages[code]
	if !exists {
		return ErrMsgOperationFailed
	}
	return msg
}
