package cmd

import (
	"fmt"

	"github.com/bnema/onebot-cli/internal/adapters/tokens"
	"github.com/spf13/cobra"
)

func newTokenCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage OneBot access tokens",
	}

	cmd.AddCommand(
		newTokenSetCmd(app),
		newTokenRemoveCmd(app),
	)

	return cmd
}

func newTokenSetCmd(app *app) *cobra.Command {
	var name string
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store an access token under a name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := tokens.Key(name)
			if err != nil {
				return err
			}
			if err := tokens.Validate(value); err != nil {
				return fmt.Errorf("store access token %q: %w", name, err)
			}
			if err := app.tokenStore.Put(cmd.Context(), key, value); err != nil {
				return fmt.Errorf("store access token %q: %w", name, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored token %q\n", name)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Token name, used with --token-ref")
	cmd.Flags().StringVar(&value, "value", "", "Access token value")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newTokenRemoveCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Delete a stored access token",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := tokens.Key(name)
			if err != nil {
				return err
			}
			if err := app.tokenStore.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("remove access token %q: %w", name, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed token %q\n", name)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Token name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
