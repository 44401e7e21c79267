package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate-seed/internal/pipeline"
)

func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the dataset, load it into the store and export the workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			res, err := pipeline.Run(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Database and Excel file created: %s\n", res.ExcelPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Seed: %d  Run: %s\n", res.Seed, res.RunID)
			return nil
		},
	}

	storeFlags(cmd)
	cmd.Flags().Uint64("seed", 0, "Random seed; 0 derives one from the clock")
	cmd.Flags().Bool("force", false, "Remove an existing database file before generating")
	cmd.Flags().String("rental-id-mode", "rank", "How Rent_Payments.Rental_ID is filled: rank or rental")

	return cmd
}
