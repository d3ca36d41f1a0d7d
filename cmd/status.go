package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/onebot-cli/internal/adapters/render/status"
	"github.com/bnema/onebot-cli/internal/application"
	"github.com/spf13/cobra"
)

func writeStatusesOutput(cmd *cobra.Command, app *app, statuses []application.BotStatus, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	rendered, err := app.statusRenderer(statuses, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
