package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, botsPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set("bots.path", botsPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "bots.toml"))
	seen := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	first := domain.BotProfile{ID: 20, Nickname: "second", WorkingDir: "bots/20", Friends: 3, Groups: 1, LastSeen: seen}
	second := domain.BotProfile{ID: 10, Nickname: "first", WorkingDir: "bots/10"}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.BotProfile{second, first}, profiles)
}

func TestRepositorySaveReplacesExistingProfile(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "bots.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.BotProfile{ID: 1, Nickname: "old", Friends: 1}))
	require.NoError(t, repo.Save(context.Background(), domain.BotProfile{ID: 1, Nickname: "new", Friends: 5}))

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "new", profiles[0].Nickname)
	assert.Equal(t, 5, profiles[0].Friends)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.BotProfile{ID: 1, Nickname: "bot"}))

	botsPath := filepath.Join(homeDir, ".onebot", "bots.toml")
	assert.Equal(t, botsPath, repo.Path())
	info, err := os.Stat(botsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryReadsPathFromConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	custom := filepath.Join(homeDir, "state", "profiles.toml")
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".onebot"), 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(homeDir, ".onebot", "config.toml"),
		[]byte("[bots]\npath = \""+custom+"\"\n"),
		0o600,
	))

	config := viper.New()
	repo, err := NewRepository(config)
	require.NoError(t, err)
	assert.Equal(t, custom, repo.Path())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "bots.toml"))

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)

	_, err = repo.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrBotNotFound)
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	botsPath := filepath.Join(t.TempDir(), "bots.toml")
	require.NoError(t, os.WriteFile(botsPath, []byte("bots = ["), 0o600))

	repo := newTestRepository(t, botsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode bots file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "bots.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.BotProfile{ID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllProfiles(t *testing.T) {
	t.Parallel()

	botsPath := filepath.Join(t.TempDir(), "bots.toml")
	repoA := newTestRepository(t, botsPath)
	repoB := newTestRepository(t, botsPath)

	const perRepoWrites = 100
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoA.Save(context.Background(), domain.BotProfile{ID: domain.BotID(i), Nickname: "A"})
		}
	}()

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoB.Save(context.Background(), domain.BotProfile{ID: domain.BotID(1000 + i), Nickname: "B"})
		}
	}()

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	profiles, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	botsPath := filepath.Join(t.TempDir(), "bots.toml")
	repo := newTestRepository(t, botsPath)

	require.NoError(t, repo.Save(context.Background(), domain.BotProfile{ID: 1, Nickname: "bot"}))

	data, err := os.ReadFile(botsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[[bots]]")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	botsPath := filepath.Join(t.TempDir(), "bots.toml")
	require.NoError(t, os.WriteFile(botsPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"bots = []",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, botsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported bots schema version")
}
