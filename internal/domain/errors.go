package domain

// UserError carries a message that is shown to the admin as is
type UserError struct {
	Message string
}

// NewUserError creates a new user error
func NewUserError(message string) *UserError {
	return &UserError{Message: message}
}

func (e *UserError) Error() string {
	return e.Message
}
