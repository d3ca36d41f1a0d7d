package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/onebot-cli/internal/adapters/tokens/file"
	passstore "github.com/bnema/onebot-cli/internal/adapters/tokens/pass"
	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/bnema/onebot-cli/internal/ports"
)

// Store tries the primary backend first and falls back to the secondary.
type Store struct {
	primary  ports.TokenStore
	fallback ports.TokenStore
}

var _ ports.TokenStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary token store is nil")
	errNilFallbackStore = errors.New("fallback token store is nil")
)

func NewStore(primary ports.TokenStore, fallback ports.TokenStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.TokenStore, fallback ports.TokenStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

// Get reports domain.ErrTokenNotFound only when neither backend has the
// token.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(fallbackErr, domain.ErrTokenNotFound) && errors.Is(err, domain.ErrTokenNotFound) {
		return "", fmt.Errorf("token %q: %w", key, domain.ErrTokenNotFound)
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes the token from both backends since a failed primary write
// may have left it in the fallback.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err == nil && fallbackErr == nil:
		return nil
	case err == nil:
		return fmt.Errorf("fallback backend delete failed: %w", fallbackErr)
	case fallbackErr == nil:
		return nil
	default:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	}
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
