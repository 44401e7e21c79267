package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands_EndToEnd(t *testing.T) {
	for _, key := range []string{"DB_PATH", "DATABASE_URL", "EXCEL_PATH", "SEED", "RENTAL_ID_MODE", "LOG_LEVEL", "BATCH_SIZE"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	db := filepath.Join(dir, "real_estate.db")
	xlsx := filepath.Join(dir, "real_estate_data.xlsx")

	_, err := run(t, StatusCmd(), "--db", db)
	assert.ErrorContains(t, err, "does not exist")

	out, err := run(t, GenerateCmd(), "--db", db, "--out", xlsx, "--seed", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Database and Excel file created: "+xlsx)
	assert.Contains(t, out, "Seed: 12")

	_, err = run(t, GenerateCmd(), "--db", db, "--out", xlsx, "--seed", "12")
	assert.ErrorContains(t, err, "already exists")

	out, err = run(t, StatusCmd(), "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Properties")
	assert.Contains(t, out, "1000")
	assert.NotContains(t, out, "Missing")
	assert.Contains(t, out, "Present")

	out, err = run(t, VerifyCmd(), "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "All invariants hold")

	out, err = run(t, ExportCmd(), "--db", db, "--out", filepath.Join(dir, "again.xlsx"))
	require.NoError(t, err)
	assert.Contains(t, out, "again.xlsx")
}

func TestGenerateCmd_InvalidMode(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, GenerateCmd(), "--db", filepath.Join(dir, "x.db"), "--out", filepath.Join(dir, "x.xlsx"), "--rental-id-mode", "bogus")
	assert.Error(t, err)
}

func TestLoadConfig_FlagOverridesBadEnvironment(t *testing.T) {
	t.Setenv("RENTAL_ID_MODE", "bogus")

	cmd := GenerateCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--rental-id-mode", "rental"}))
	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "rental", cfg.RentalIDMode)

	_, err = loadConfig(GenerateCmd())
	assert.ErrorContains(t, err, "RentalIDMode")
}
