package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupCommands(t *testing.T) string {
	clearEnv(t)
	runSetup, replace, onlyStudent, onlyResults, debug = false, false, false, false, false

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeConfig(t, path, `{ database: { file: "`+filepath.ToSlash(filepath.Join(dir, "results.db"))+`" } }`)
	return path
}

func TestFailedCommandClosesDatabase(t *testing.T) {
	path := setupCommands(t)

	// the schema was never created
	err := run(context.Background(), []string{"list", "--config", path})
	require.ErrorContains(t, err, "failed to list students")
	require.NotNil(t, database)
	require.ErrorContains(t, database.Ping(), "database is closed")
}

func TestSetupThenInspect(t *testing.T) {
	path := setupCommands(t)
	ctx := context.Background()

	require.NoError(t, run(ctx, []string{"--config", path, "--setup"}))
	require.NoError(t, run(ctx, []string{"--config", path, "--setup"}))
	require.NoError(t, run(ctx, []string{"list", "--config", path}))
	require.NoError(t, run(ctx, []string{"show", "1210311101", "--config", path}))
	require.NoError(t, run(ctx, []string{"find", "ravi", "--config", path}))

	require.NoError(t, run(ctx, []string{"count", "--config", path}))
	require.Nil(t, database)
}

func TestBadConfigFails(t *testing.T) {
	path := setupCommands(t)
	writeConfig(t, path, `{ ranges: { rolls: 0, batches: [{ year: "1", sections: 1, semesters: 1 }] } }`)

	err := run(context.Background(), []string{"count", "--config", path})
	require.ErrorContains(t, err, "failed to read config")
}
