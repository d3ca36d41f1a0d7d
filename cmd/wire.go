package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/onebot-cli/internal/adapters/logging"
	"github.com/bnema/onebot-cli/internal/adapters/onebot"
	statusadapter "github.com/bnema/onebot-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/onebot-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/onebot-cli/internal/adapters/tokens/chain"
	"github.com/bnema/onebot-cli/internal/application"
	"github.com/bnema/onebot-cli/internal/ports"
	"github.com/spf13/viper"
)

const defaultOneBotURL = "ws://127.0.0.1:3001"

type app struct {
	service        *application.BotService
	tokenStore     ports.TokenStore
	logger         *slog.Logger
	statusRenderer func([]application.BotStatus, statusadapter.RenderOptions) (string, error)
	dial           func(context.Context, onebot.Config) (*onebot.Client, error)
	onebotURL      string
	tokenRef       string
	retryDelay     time.Duration
	now            func() time.Time
	closeLogs      func() error
}

func wireApp() (*app, error) {
	config := viper.New()
	repo, err := tomlrepo.NewRepository(config)
	if err != nil {
		return nil, fmt.Errorf("wire bot repository: %w", err)
	}
	if err := config.BindEnv("verbose", "OB_VERBOSE"); err != nil {
		return nil, fmt.Errorf("bind verbose env: %w", err)
	}

	logConfig := logging.ConfigFromViper(config)
	logger, err := logging.NewLogger(logConfig)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}
	sinks, err := logging.NewSinks(logConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("wire bot log sinks: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	tokenStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, tomlrepo.ConfigDir, "tokens"))
	if err != nil {
		return nil, fmt.Errorf("wire token store chain: %w", err)
	}

	defaults := application.BotDefaults{
		Root:          config.GetString("bots.root"),
		BotLogger:     sinks.BotLogger,
		NetworkLogger: sinks.NetworkLogger,
	}

	return &app{
		service:        application.NewBotService(application.NewRegistry(), repo, ports.SystemClock{}, defaults),
		tokenStore:     tokenStore,
		logger:         logger,
		statusRenderer: statusadapter.Render,
		dial:           onebot.Dial,
		onebotURL:      envOrDefault("OB_URL", stringOrDefault(config.GetString("onebot.url"), defaultOneBotURL)),
		tokenRef:       envOrDefault("OB_TOKEN_REF", config.GetString("onebot.token_ref")),
		retryDelay:     3 * time.Second,
		now:            time.Now,
		closeLogs:      sinks.Close,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func stringOrDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
