package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate-seed/internal/pipeline"
)

func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an existing store to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := pipeline.Export(cmd.Context(), cfg); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Excel file created: %s\n", cfg.ExcelPath)
			return nil
		},
	}

	storeFlags(cmd)
	return cmd
}
