package rest

import "github.com/kbukum/httpkit/httpclient"

// Error classification re-exported so callers of a bound client need not
// import httpclient.

// IsNotFound checks if the error is a 404 Not Found.
func IsNotFound(err error) bool { return httpclient.IsNotFound(err) }

// IsAuth checks if the error is a 401/403 authentication error.
func IsAuth(err error) bool { return httpclient.IsAuth(err) }

// IsRateLimit checks if the error is a 429 Too Many Requests.
func IsRateLimit(err error) bool { return httpclient.IsRateLimit(err) }

// IsServerError checks if the error is a 5xx server error.
func IsServerError(err error) bool { return httpclient.IsServerError(err) }

// IsTimeout checks if the error is a timeout.
func IsTimeout(err error) bool { return httpclient.IsTimeout(err) }

// IsConnection checks if the server could not be reached.
func IsConnection(err error) bool { return httpclient.IsConnection(err) }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int { return httpclient.StatusCode(err) }
