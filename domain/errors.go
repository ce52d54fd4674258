package domain

import "errors"

var (
	errMissingFields      error = errors.New("header and details are required")
	errInvalidStatus      error = errors.New("invalid status")
	errInvalidRole        error = errors.New("invalid role")
	errEmailRequired      error = errors.New("email and password are required")
	errEmailTaken         error = errors.New("user with the given email already exists")
	errInvalidCredentials error = errors.New("incorrect email or password")
	errInvalidToken       error = errors.New("token invalid")
	errForbidden          error = errors.New("operation not allowed for this user")
	errUserNotFound       error = errors.New("user not found")
	errProjectNotFound    error = errors.New("project not found")
	errTaskNotFound       error = errors.New("task not found")
	errInternal           error = errors.New("internal error")
)

func ErrMissingFields() error {
	return errMissingFields
}

func ErrInvalidStatus() error {
	return errInvalidStatus
}

func ErrInvalidRole() error {
	return errInvalidRole
}

func ErrEmailRequired() error {
	return errEmailRequired
}

func ErrEmailTaken() error {
	return errEmailTaken
}

func ErrInvalidCredentials() error {
	return errInvalidCredentials
}

func ErrInvalidToken() error {
	return errInvalidToken
}

func ErrForbidden() error {
	return errForbidden
}

func ErrUserNotFound() error {
	return errUserNotFound
}

func ErrProjectNotFound() error {
	return errProjectNotFound
}

func ErrTaskNotFound() error {
	return errTaskNotFound
}

func ErrInternal() error {
	return errInternal
}
