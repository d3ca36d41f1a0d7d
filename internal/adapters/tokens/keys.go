// Package tokens resolves OneBot access tokens by name.
package tokens

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	keyPrefix = "onebot"
	keySuffix = "access_token"
)

var (
	ErrEmptyName    = errors.New("token name is empty")
	ErrInvalidKey   = errors.New("not an access token key")
	ErrInvalidToken = errors.New("access token must be one word without spaces or control characters")
)

// Key returns the store key for the access token registered under name.
func Key(name string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(name), "/")
	if trimmed == "" {
		return "", ErrEmptyName
	}
	return keyPrefix + "/" + trimmed + "/" + keySuffix, nil
}

// Name is the inverse of Key.
func Name(key string) (string, error) {
	name, ok := strings.CutPrefix(key, keyPrefix+"/")
	if ok {
		name, ok = strings.CutSuffix(name, "/"+keySuffix)
	}
	if !ok || strings.Trim(name, "/") == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return name, nil
}

// Validate reports whether value can be sent as a bearer token.
func Validate(value string) error {
	if value == "" {
		return ErrInvalidToken
	}
	for _, r := range value {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidToken
		}
	}
	return nil
}
