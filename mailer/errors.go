package mailer

import "errors"

// Error variables define mail dispatch failures that can be wrapped with
// detailed context using errors.Join() for comprehensive error reporting.
var (
	ErrFailedToSend        = errors.New("failed to send message")
	ErrNoSender            = errors.New("message has no from address")
	ErrNoRecipient         = errors.New("message has no recipients")
	ErrNoContent           = errors.New("message has no body")
	ErrUnsupportedAuthType = errors.New("unsupported smtp auth type")
)
