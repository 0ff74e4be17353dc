package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrAuctionNotFound occurs when the referenced auction does not exist
	ErrAuctionNotFound = errors.New("auction not found")
	// ErrUserNotFound occurs when the referenced user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrNotAuthorized occurs when the requester may not perform the operation
	ErrNotAuthorized = errors.New("not authorized")
	// ErrInvalidState occurs when the operation is not allowed in the
	// auction's current status
	ErrInvalidState = errors.New("invalid auction state")

	// ErrEmailTaken and ErrPhoneTaken occur on duplicate registration
	ErrEmailTaken = errors.New("email already registered")
	ErrPhoneTaken = errors.New("phone number already registered")
	// ErrInvalidCredentials occurs on a failed login
	ErrInvalidCredentials = errors.New("invalid email or password")
)
