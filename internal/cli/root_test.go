package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags clears package-level flag state between executions so one test
// cannot leak options into the next.
func resetFlags(t *testing.T) {
	t.Helper()
	cfgFile = ""
	flagPath = ""
	flagRecursive = false
	flagOutput = ""
	flagVerbose = false
	flagDryRun = false
	flagBackup = false
	flagShortcodes = false
	RunCfg = nil
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return buf.String(), err
}

func TestRootCmdStripsToStdout(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.md")
	require.NoError(t, os.WriteFile(src, []byte("Hello 👋 World! 🎉🎉"), 0644))

	out, err := executeCommand(t, "--path", src)
	require.NoError(t, err)
	assert.Equal(t, "Hello  World! ", out)
}

func TestRootCmdWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.md")
	dst := filepath.Join(dir, "out.md")
	require.NoError(t, os.WriteFile(src, []byte("done ✅\n"), 0644))

	_, err := executeCommand(t, "--path", src, "--output", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "done \n", string(data))
}

func TestRootCmdRecursive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("a 🎉"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b 🎉"), 0644))

	_, err := executeCommand(t, "--path", dir, "--recursive")
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(dir, "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "a ", string(a))

	b, err := os.ReadFile(filepath.Join(dir, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b 🎉", string(b), "non-markdown files must be left alone")
}

func TestRootCmdDirectoryWithoutRecursiveFails(t *testing.T) {
	_, err := executeCommand(t, "--path", t.TempDir())
	assert.Error(t, err)
}

func TestRootCmdOutputIgnoredWithRecursive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("a 🎉"), 0644))
	out := filepath.Join(dir, "ignored-output.md")

	_, err := executeCommand(t, "--path", dir, "--recursive", "--output", out)
	require.NoError(t, err)

	require.NotNil(t, RunCfg)
	assert.Empty(t, RunCfg.Output, "output option must be dropped in recursive mode")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCmdDryRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(src, []byte("a 🎉"), 0644))

	_, err := executeCommand(t, "--path", dir, "--recursive", "--dry-run")
	require.NoError(t, err)

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "a 🎉", string(data))
}
