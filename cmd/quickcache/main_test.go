package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrazzld/quickcache/internal/logic/commands"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// setupEnv points every file the application touches into a temp directory.
func setupEnv(t *testing.T, driver string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("QUICKCACHE_APP_LOG_LEVEL", "error")
	t.Setenv("QUICKCACHE_APP_PREFS_FILE", filepath.Join(dir, "preferences.json"))
	t.Setenv("QUICKCACHE_STORAGE_DRIVER", driver)
	t.Setenv("QUICKCACHE_STORAGE_DATA_FILE", filepath.Join(dir, "quickcache.json"))
	t.Setenv("QUICKCACHE_STORAGE_SQLITE_PATH", filepath.Join(dir, "quickcache.db"))
	t.Setenv("QUICKCACHE_STORAGE_EXPORT_DIR", filepath.Join(dir, "exports"))
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand_JSON(t *testing.T) {
	dir := setupEnv(t, "json")

	out, err := execute(t, "", "run", "add", "q/What is 2 + 2?", "a/4", "t/math")
	require.NoError(t, err)
	assert.Contains(t, out, "New flashcard added: Question: What is 2 + 2?")
	assert.FileExists(t, filepath.Join(dir, "quickcache.json"))
	assert.FileExists(t, filepath.Join(dir, "preferences.json"))

	out, err = execute(t, "", "run", "find", "t/math")
	require.NoError(t, err)
	assert.Contains(t, out, "1 flashcards listed!")
	assert.Contains(t, out, "What is 2 + 2?")

	_, err = execute(t, "", "run", "add", "q/What is 2 + 2?", "a/4")
	assert.ErrorContains(t, err, commands.MessageDuplicateFlashcard)

	out, err = execute(t, "", "run", "export", "math.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 5 flashcards")
	assert.FileExists(t, filepath.Join(dir, "exports", "math.json"))
}

func TestRunCommand_SQLite(t *testing.T) {
	dir := setupEnv(t, "sqlite")

	_, err := execute(t, "", "run", "delete", "1")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "quickcache.db"))
	assert.NoFileExists(t, filepath.Join(dir, "quickcache.json"))

	out, err := execute(t, "", "run", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "What is the time complexity of binary search?")
	assert.Contains(t, out, "Which data structure is FIFO?")

	_, err = execute(t, "", "migrate", "status")
	assert.NoError(t, err)
}

func TestRunCommand_SQLiteImportAfterEdit(t *testing.T) {
	setupEnv(t, "sqlite")

	_, err := execute(t, "", "run", "export", "all.json")
	require.NoError(t, err)
	_, err = execute(t, "", "run", "edit", "1", "q/Edited question")
	require.NoError(t, err)

	out, err := execute(t, "", "run", "import", "all.json")
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf(commands.MessageImportSuccess, 1, "all.json", 3, 0))

	out, err = execute(t, "", "run", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Edited question")
	assert.Contains(t, out, "What is the time complexity of binary search?")
}

func TestRunCommand_Errors(t *testing.T) {
	setupEnv(t, "json")

	_, err := execute(t, "", "run", "bogus")
	assert.ErrorContains(t, err, commands.MessageUnknownCommand)

	_, err = execute(t, "", "run")
	assert.Error(t, err)

	_, err = execute(t, "", "migrate", "up")
	assert.ErrorContains(t, err, "no schema to migrate")

	t.Setenv("QUICKCACHE_STORAGE_DRIVER", "mongo")
	_, err = execute(t, "", "run", "list")
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestShellCommand(t *testing.T) {
	setupEnv(t, "json")

	out, err := execute(t, "list\nopen 1\nexit\n")

	require.NoError(t, err)
	assert.Contains(t, out, "4 flashcards loaded")
	assert.Contains(t, out, "Opened flashcard 1:")
	assert.Contains(t, out, commands.MessageExitAcknowledgement)
}
