package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists or raced with another one
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrUnauthenticated will throw if no subject could be resolved for the request
	ErrUnauthenticated = errors.New("user not authenticated")
	// ErrInvalidCredentials will throw if email or password does not match
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrForbidden will throw if the subject may not perform the action
	ErrForbidden = errors.New("you do not have permission to perform this action")
	// ErrStorage will throw if the persistence or object storage backend is unavailable
	ErrStorage = errors.New("storage unavailable")
	// ErrCacheMiss is returned by cache implementations when a key is absent
	ErrCacheMiss = errors.New("cache miss")
)
