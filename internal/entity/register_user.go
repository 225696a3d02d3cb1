package entity

import "regexp"

const (
	ErrCodeRegisterMissingProperty     = "REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrCodeRegisterInvalidType         = "REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION"
	ErrCodeRegisterRestrictedCharacter = "REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER"
)

var usernamePattern = regexp.MustCompile(`^\w+$`)

// RegisterUser is the validated input of a user registration.
type RegisterUser struct {
	Username string
	Email    string
	Password string
}

func NewRegisterUser(username, email, password string) (RegisterUser, error) {
	if username == "" || email == "" || password == "" {
		return RegisterUser{}, NewValidationError(ErrCodeRegisterMissingProperty)
	}

	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, NewValidationError(ErrCodeRegisterRestrictedCharacter)
	}

	return RegisterUser{Username: username, Email: email, Password: password}, nil
}
