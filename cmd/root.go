package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ob",
		Short:         "OneBot CLI (ob): connect to and inspect OneBot accounts",
		Long:          "ob connects to OneBot v11 implementations over websocket, keeps one handle per account with its friends, groups and online clients, and remembers the bots it has seen.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.closeLogs()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newBotCmd(app),
		newTokenCmd(app),
	)

	return rootCmd
}
