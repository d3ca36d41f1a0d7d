package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/onebot-cli/internal/adapters/tokens"
	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/bnema/onebot-cli/internal/ports"
)

const (
	storeDirMode  = 0o700
	tokenFileMode = 0o600
	tokenFileExt  = ".token"
)

var ErrInvalidName = errors.New("invalid token name")

// Store keeps each access token in <root>/<name>.token, where name is the
// token name encoded in the key. It is the fallback when pass is not
// installed.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.TokenStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Put replaces the token atomically, so a bot reconnecting concurrently never
// reads a partial token.
func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}
	if err := tokens.Validate(value); err != nil {
		return fmt.Errorf("store token %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, storeDirMode); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(tokenFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp token file: %w", err)
	}
	if _, err := tmp.WriteString(value + "\n"); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write token %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp token file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace token %q: %w", key, err)
	}

	return nil
}

// Get returns the stored token. Surrounding whitespace is ignored so
// hand-edited files work, but a file holding anything other than one token
// is reported rather than sent to the server.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("token %q: %w", key, domain.ErrTokenNotFound)
		}
		return "", fmt.Errorf("read token %q: %w", key, err)
	}

	value := strings.TrimSpace(string(data))
	if err := tokens.Validate(value); err != nil {
		return "", fmt.Errorf("token file %s: %w", path, err)
	}
	return value, nil
}

// Delete removes the token and any directories left empty by nested names.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete token %q: %w", key, err)
	}

	for dir := filepath.Dir(path); dir != s.root; dir = filepath.Dir(dir) {
		if os.Remove(dir) != nil {
			break
		}
	}

	return nil
}

func (s *Store) pathForKey(key string) (string, error) {
	name, err := tokens.Name(strings.TrimSpace(key))
	if err != nil {
		return "", err
	}

	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || cleaned == "." || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return filepath.Join(s.root, cleaned+tokenFileExt), nil
}
