package domain

import "errors"

var (
	ErrBotNotFound          = errors.New("bot not found")
	ErrBotAlreadyRegistered = errors.New("bot already registered")
	ErrBotClosed            = errors.New("bot closed")
	ErrIdentityMismatch     = errors.New("login identity belongs to another account")
	ErrContactNotFound      = errors.New("contact not found")
	ErrTokenNotFound        = errors.New("token not found")

	// ErrUnsupported reports a feature the remote protocol does not expose.
	ErrUnsupported = errors.New("unsupported by remote protocol")
)
