package http

import (
	"net/http"

	"github.com/m-zajac/ghcard/internal/app"
)

// errorStatus maps app errors to http status codes.
func errorStatus(err error) int {
	switch {
	case app.IsInvalidRequestError(err):
		return http.StatusBadRequest
	case app.IsNotFoundError(err):
		return http.StatusNotFound
	case app.IsTooManyRequestsError(err):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns message safe to show to api users.
func errorMessage(err error) string {
	switch {
	case app.IsInvalidRequestError(err):
		return "Invalid username"
	case app.IsNotFoundError(err):
		return "User not found"
	case app.IsTooManyRequestsError(err):
		return "GitHub API rate limit exceeded, please try again later."
	default:
		return "Failed to load GitHub stats"
	}
}
