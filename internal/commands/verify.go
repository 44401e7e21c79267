package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate-seed/internal/pipeline"
)

func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the stored dataset against its invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := pipeline.Verify(cmd.Context(), cfg); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "All invariants hold")
			return nil
		},
	}

	storeFlags(cmd)
	return cmd
}
