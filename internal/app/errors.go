package app

import "github.com/pkg/errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var target invalidReqErr
	if errors.As(err, &target) {
		return target.IsInvalidRequest()
	}

	return false
}

// NotFoundError is returned when the requested user doesn't exist upstream.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// IsNotFoundError checks if given error is caused by missing upstream data
func IsNotFoundError(err error) bool {
	type notFoundErr interface {
		IsNotFound() bool
	}

	var target notFoundErr
	if errors.As(err, &target) {
		return target.IsNotFound()
	}

	return false
}

// InvalidProfileError is returned when upstream data is incomplete or malformed.
type InvalidProfileError string

// Error implements error interface
func (e InvalidProfileError) Error() string {
	return string(e)
}

// IsInvalidProfile tells that this error is 'invalid profile'.
// Returns always true.
func (InvalidProfileError) IsInvalidProfile() bool {
	return true
}

// IsInvalidProfileError checks if given error is caused by a malformed profile
func IsInvalidProfileError(err error) bool {
	type invalidProfileErr interface {
		IsInvalidProfile() bool
	}

	var target invalidProfileErr
	if errors.As(err, &target) {
		return target.IsInvalidProfile()
	}

	return false
}

// TooManyRequestsError is returned when the request can't be done because of rate limits.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by rate limiting
func IsTooManyRequestsError(err error) bool {
	type tooManyReqErr interface {
		IsTooManyRequests() bool
	}

	var target tooManyReqErr
	if errors.As(err, &target) {
		return target.IsTooManyRequests()
	}

	return false
}
