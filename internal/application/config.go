package application

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/bnema/onebot-cli/internal/domain"
)

// LoggerSupplier builds the logger for one bot. workingDir is the bot's
// resolved working directory.
type LoggerSupplier func(id domain.BotID, workingDir string) *slog.Logger

// BotConfig is the per-bot configuration. Zero fields are filled from the
// service's BotDefaults.
type BotConfig struct {
	WorkingDir    string
	BotLogger     LoggerSupplier
	NetworkLogger LoggerSupplier
	// Parent bounds the bot's lifetime; cancelling it closes the bot.
	Parent context.Context
}

type BotDefaults struct {
	Root          string
	BotLogger     LoggerSupplier
	NetworkLogger LoggerSupplier
	Parent        context.Context
}

const defaultBotsRoot = "bots"

func (d BotDefaults) resolve(id domain.BotID, cfg *BotConfig) BotConfig {
	var resolved BotConfig
	if cfg != nil {
		resolved = *cfg
	}

	if resolved.WorkingDir == "" {
		root := d.Root
		if root == "" {
			root = defaultBotsRoot
		}
		resolved.WorkingDir = filepath.Join(root, id.String())
	}
	if resolved.BotLogger == nil {
		resolved.BotLogger = d.BotLogger
	}
	if resolved.BotLogger == nil {
		resolved.BotLogger = DiscardLogger
	}
	if resolved.NetworkLogger == nil {
		resolved.NetworkLogger = d.NetworkLogger
	}
	if resolved.NetworkLogger == nil {
		resolved.NetworkLogger = DiscardLogger
	}
	if resolved.Parent == nil {
		resolved.Parent = d.Parent
	}
	if resolved.Parent == nil {
		resolved.Parent = context.Background()
	}

	return resolved
}

func DiscardLogger(domain.BotID, string) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
