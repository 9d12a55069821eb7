package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageRead marks a persisted identity that could not be decoded.
	// It is recovered locally and never reaches callers of the session layer.
	ErrStorageRead  = errors.New("stored identity is malformed")
	ErrUserNotFound = errors.New("user not found")
)

const (
	msgNetworkRetry = "Không thể kết nối tới máy chủ. Vui lòng thử lại."
	msgLoginFailed  = "Đăng nhập thất bại. Vui lòng thử lại."
)

// AuthenticationError reports rejected credentials or a login response
// without a usable token.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return e.Message
}

// NetworkError reports a transport-level failure: timeouts, refused
// connections, non-2xx responses and bodies that could not be parsed.
type NetworkError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Message != "" && e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": network error"
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text shown to a person after a failed operation.
func UserMessage(err error) string {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.Error()
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		if netErr.Message != "" {
			return netErr.Message
		}
		return msgNetworkRetry
	}
	return msgLoginFailed
}
