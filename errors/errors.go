package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	ErrUnknownIdentity = fmt.Errorf("unknown identity")
	ErrAlreadyLoggedIn = fmt.Errorf("identity already logged in")
	ErrLoginRejected   = fmt.Errorf("login rejected")
	ErrSessionClosed   = fmt.Errorf("session closed")
	ErrSlowConsumer    = fmt.Errorf("send queue full")

	ErrInvalidUsername    = fmt.Errorf("username must be 3 to 32 letters, numbers, underscores or dashes")
	ErrInvalidChannelName = fmt.Errorf("channel name must only contain letters, numbers, and dashes")
	ErrInvalidMessage     = fmt.Errorf("message must be between 1 and 2000 characters")
	ErrInvalidPairRequest = fmt.Errorf("pair request needs an address and a port between 1 and 65535")
	ErrInvalidPayload     = fmt.Errorf("invalid payload")

	ErrNotAdmin      = fmt.Errorf("only admins can do that")
	ErrNotAllowed    = fmt.Errorf("not allowed")
	ErrRemoteChannel = fmt.Errorf("channel belongs to another server")

	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrChannelNotFound = fmt.Errorf("channel not found")
	ErrMessageNotFound = fmt.Errorf("message not found")
	ErrPeerNotFound    = fmt.Errorf("peer not found")
	ErrPairNotFound    = fmt.Errorf("pair request not found")
	ErrUserExists      = fmt.Errorf("username already taken")

	ErrResolveTimeout  = fmt.Errorf("lookup timed out")
	ErrResolveCanceled = fmt.Errorf("lookup canceled")
	ErrResolveRefused  = fmt.Errorf("lookup refused")
	ErrNoChannel       = fmt.Errorf("no channel selected")
)

var validationErrors = []error{
	ErrInvalidUsername,
	ErrInvalidChannelName,
	ErrInvalidMessage,
	ErrInvalidPairRequest,
	ErrInvalidPayload,
}

var visibleErrors = append([]error{
	ErrAlreadyLoggedIn,
	ErrLoginRejected,
	ErrNotAdmin,
	ErrNotAllowed,
	ErrRemoteChannel,
	ErrUserNotFound,
	ErrChannelNotFound,
	ErrMessageNotFound,
	ErrPeerNotFound,
	ErrPairNotFound,
	ErrUserExists,
}, validationErrors...)

// IsValidation reports whether err was raised by input validation.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}

// HTTPStatus maps an error coming out of the gateway to the status of the
// account endpoint.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Reason returns the text sent to a client inside a *_fail event.
// Internal failures are not leaked.
func Reason(err error) string {
	for _, target := range visibleErrors {
		if stderrors.Is(err, target) {
			return target.Error()
		}
	}
	return "request failed"
}
