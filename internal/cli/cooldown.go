package cli

import (
	"fmt"

	"github.com/avc/tscoins-wallet/internal/cooldown"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(cooldownCmd)
	cooldownCmd.AddCommand(cooldownShowCmd)
	cooldownCmd.AddCommand(cooldownCancelCmd)
}

var cooldownCmd = &cobra.Command{
	Use:   "cooldown",
	Short: "Inspect or clear form cooldowns",
	Long: `Form cooldowns are stored per subject: "user:<id>" for logged in players
and "ip:<address>" for anonymous visitors.`,
}

var cooldownShowCmd = &cobra.Command{
	Use:   "show SUBJECT ACTION",
	Short: "Show the remaining cooldown",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(cmd, func(b *backend, logger *zap.Logger) error {
			status, err := cooldown.NewTimer(b.cooldowns, logger).Resume(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if status.State != cooldown.Active {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: idle\n", args[0], args[1])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s left (until %s)\n",
				args[0], args[1], status.Display(), status.ExpiresAt.UTC().Format("2006-01-02 15:04:05"))
			return nil
		})
	},
}

var cooldownCancelCmd = &cobra.Command{
	Use:   "cancel SUBJECT ACTION",
	Short: "Clear a cooldown so the form can be submitted again",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(cmd, func(b *backend, logger *zap.Logger) error {
			if err := cooldown.NewTimer(b.cooldowns, logger).Cancel(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cooldown %s cleared for %s\n", args[1], args[0])
			return nil
		})
	},
}
