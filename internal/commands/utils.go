package commands

import (
	"github.com/spf13/cobra"

	"realestate-seed/internal/config"
	"realestate-seed/internal/logger"
)

// storeFlags registers the flags shared by every command that touches the
// store or the workbook.
func storeFlags(cmd *cobra.Command) {
	cmd.Flags().String("db", "", "SQLite database file (defaults to DB_PATH or "+config.DefaultDBPath+")")
	cmd.Flags().String("out", "", "Excel workbook path (defaults to EXCEL_PATH or "+config.DefaultExcelPath+")")
	cmd.Flags().Bool("debug", false, "Enable debug output")
}

// loadConfig reads the environment, applies any flags the user set and only
// then validates, so a flag can replace a bad environment value.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("out") {
		cfg.ExcelPath, _ = flags.GetString("out")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("force") {
		cfg.Force, _ = flags.GetBool("force")
	}
	if flags.Changed("rental-id-mode") {
		cfg.RentalIDMode, _ = flags.GetString("rental-id-mode")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Init(config.AppName, cfg.LogLevel)
	return cfg, nil
}
