package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/bnema/onebot-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	botsPathKey     = "bots.path"
	botsFileMode    = 0o600
	botsDirMode     = 0o700
	ConfigDir       = ".onebot"
	botsConfigFile  = "bots.toml"
	tempFilePattern = ".bots-*.toml.tmp"
)

// Repository persists bot profiles in a TOML file. Profiles record the last
// known state of each bot so they can be listed without a connection.
type Repository struct {
	botsPath string
	mu       *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.BotRepository = (*Repository)(nil)

// NewRepository loads ~/.onebot/config.toml into cfg when present and
// resolves the profile file from bots.path.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, ConfigDir, botsConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, ConfigDir))
	cfg.SetDefault(botsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	botsPath := cfg.GetString(botsPathKey)
	if botsPath == "" {
		return nil, errors.New("bots path is empty")
	}
	botsPath, err = normalizePath(botsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{botsPath: botsPath, mu: lockForPath(botsPath)}, nil
}

func (r *Repository) Path() string {
	return r.botsPath
}

func (r *Repository) Save(ctx context.Context, profile domain.BotProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(profile)
	updated := false
	for i := range file.Bots {
		if file.Bots[i].ID == encoded.ID {
			file.Bots[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Bots = append(file.Bots, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.BotID) (domain.BotProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.BotProfile{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.BotProfile{}, err
	}

	for _, entry := range file.Bots {
		if entry.ID == int64(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.BotProfile{}, fmt.Errorf("bot profile %s: %w", id, domain.ErrBotNotFound)
}

// List returns every stored profile ordered by bot id.
func (r *Repository) List(ctx context.Context) ([]domain.BotProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.BotProfile, 0, len(file.Bots))
	for _, entry := range file.Bots {
		profiles = append(profiles, fromSchema(entry))
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })

	return profiles, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.botsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read bots file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode bots file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode bots file: %w", err)
	}

	return writeFileAtomic(r.botsPath, data)
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), botsDirMode); err != nil {
		return fmt.Errorf("create bots directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp bots file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp bots file: %w", err)
	}
	if err := tempFile.Chmod(botsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp bots file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp bots file: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace bots file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve bots path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(profile domain.BotProfile) botSchema {
	return botSchema{
		ID:         int64(profile.ID),
		Nickname:   profile.Nickname,
		WorkingDir: profile.WorkingDir,
		Friends:    profile.Friends,
		Groups:     profile.Groups,
		LastSeen:   formatTime(profile.LastSeen),
	}
}

func fromSchema(entry botSchema) domain.BotProfile {
	return domain.BotProfile{
		ID:         domain.BotID(entry.ID),
		Nickname:   entry.Nickname,
		WorkingDir: entry.WorkingDir,
		Friends:    entry.Friends,
		Groups:     entry.Groups,
		LastSeen:   parseTime(entry.LastSeen),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
