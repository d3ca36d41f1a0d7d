package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/onebot-cli/internal/adapters/onebot"
	"github.com/bnema/onebot-cli/internal/adapters/tokens"
	"github.com/bnema/onebot-cli/internal/application"
	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/spf13/cobra"
)

type connectOptions struct {
	url      string
	tokenRef string
}

func newBotCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Connect to and inspect OneBot accounts",
	}

	cmd.AddCommand(
		newBotConnectCmd(app),
		newBotWatchCmd(app),
		newBotListCmd(app),
	)

	return cmd
}

func newBotConnectCmd(app *app) *cobra.Command {
	opts := connectOptions{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect once, load contacts and print the bot status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var bot *application.Bot
			connect := func(ctx context.Context, report func(connectPhase)) error {
				var err error
				_, bot, err = connectBot(ctx, app, opts, report)
				return err
			}

			if asJSON {
				if err := connect(cmd.Context(), nil); err != nil {
					return err
				}
			} else {
				if err := runConnectProgress(cmd.Context(), cmd.ErrOrStderr(), connect); err != nil {
					return err
				}
			}
			defer bot.Close(nil)

			return writeStatusesOutput(cmd, app, []application.BotStatus{application.StatusOf(bot)}, asJSON)
		},
	}

	addConnectFlags(cmd, app, &opts)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newBotWatchCmd(app *app) *cobra.Command {
	opts := connectOptions{}
	var reconnect bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stay connected and print events for the bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return watchBot(cmd, app, opts, reconnect)
		},
	}

	addConnectFlags(cmd, app, &opts)
	cmd.Flags().BoolVar(&reconnect, "reconnect", false, "Re-dial when the connection drops")

	return cmd
}

func newBotListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bots seen before",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.service.Profiles(cmd.Context())
			if err != nil {
				return err
			}

			statuses := make([]application.BotStatus, 0, len(profiles))
			for _, profile := range profiles {
				if bot, err := app.service.Get(profile.ID); err == nil {
					statuses = append(statuses, application.StatusOf(bot))
					continue
				}
				statuses = append(statuses, application.StatusFromProfile(profile))
			}

			return writeStatusesOutput(cmd, app, statuses, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func addConnectFlags(cmd *cobra.Command, app *app, opts *connectOptions) {
	cmd.Flags().StringVar(&opts.url, "url", app.onebotURL, "OneBot forward websocket URL")
	cmd.Flags().StringVar(&opts.tokenRef, "token-ref", app.tokenRef, "Name of the stored access token (see `ob token set`)")
}

// connectBot dials the OneBot endpoint and wraps the connection. The
// connection is closed again when wrapping fails. report, when set, is told
// about each phase as it starts.
func connectBot(ctx context.Context, app *app, opts connectOptions, report func(connectPhase)) (*onebot.Client, *application.Bot, error) {
	if report == nil {
		report = func(phase connectPhase) {
			app.logger.Debug("connect phase", "phase", phase.String())
		}
	}

	if opts.tokenRef != "" {
		report(phaseToken)
	}
	token, err := resolveToken(ctx, app, opts.tokenRef)
	if err != nil {
		return nil, nil, err
	}

	report(phaseDial)
	client, err := app.dial(ctx, onebot.Config{
		URL:         opts.url,
		AccessToken: token,
		Logger:      app.logger.With("logger", "Net"),
	})
	if err != nil {
		return nil, nil, err
	}

	report(phaseHydrate)
	bot, err := app.service.Wrap(ctx, client, &application.BotConfig{Parent: ctx})
	if err != nil {
		_ = client.CloseChannel(domain.CloseNormal, "wrap failed")
		return nil, nil, fmt.Errorf("wrap onebot connection: %w", err)
	}

	return client, bot, nil
}

func resolveToken(ctx context.Context, app *app, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}

	key, err := tokens.Key(ref)
	if err != nil {
		return "", err
	}

	token, err := app.tokenStore.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return "", fmt.Errorf("access token %q not found, store it with `ob token set --name %s`: %w", ref, ref, err)
		}
		return "", fmt.Errorf("load access token %q: %w", ref, err)
	}

	return token, nil
}

func watchBot(cmd *cobra.Command, app *app, opts connectOptions, reconnect bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var bot *application.Bot
	defer func() {
		if bot != nil {
			bot.Close(context.Cause(ctx))
		}
	}()

	for {
		client, wrapped, err := connectBot(ctx, app, opts, nil)
		if err != nil {
			if !reconnect || ctx.Err() != nil {
				return err
			}
			app.logger.Warn("connect failed, retrying", "error", err, "in", app.retryDelay.String())
			if err := sleepWithContext(ctx, app.retryDelay); err != nil {
				return nil
			}
			continue
		}

		if bot == wrapped {
			// Adopting a fresh connection keeps the old contact snapshot.
			if err := bot.UpdateContacts(ctx); err != nil {
				bot.Logger().Warn("refresh contacts after reconnect", "error", err)
			}
		}
		bot = wrapped
		fmt.Fprintf(out, "watching %s (%s)\n", bot.Nick(), bot.ID())

		for ev := range application.FilterEvents(ctx, bot, client.Events()) {
			bot.NetworkLogger().Debug("event received", "post_type", ev.PostType, "detail", ev.Detail)
			fmt.Fprintln(out, formatEvent(ev))
			if err := bot.ApplyNotice(ctx, ev); err != nil {
				bot.Logger().Warn("apply notice", "detail", ev.Detail, "error", err)
			}
		}

		if ctx.Err() != nil {
			return nil
		}

		lost := client.Err()
		if !reconnect {
			if lost != nil {
				return fmt.Errorf("onebot connection lost: %w", lost)
			}
			return nil
		}
		bot.Logger().Warn("connection lost, reconnecting", "error", lost)
		if err := sleepWithContext(ctx, app.retryDelay); err != nil {
			return nil
		}
	}
}

func formatEvent(ev domain.Event) string {
	line := ev.PostType
	if ev.Detail != "" {
		line += "/" + ev.Detail
	}
	if ev.GroupID != 0 {
		line += fmt.Sprintf(" group=%d", ev.GroupID)
	}
	if ev.UserID != 0 {
		line += fmt.Sprintf(" user=%d", ev.UserID)
	}
	return line
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
