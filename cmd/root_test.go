package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"starmutt/keys"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigFlag(t *testing.T) {
	flag := NewRootCmd().PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestKeysCommandDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCmd(t, "keys")
	require.NoError(t, err)

	var got keyFile
	_, err = toml.Decode(out, &got)
	require.NoError(t, err)
	assert.Len(t, got.Keys, len(keys.DefaultBindings))
	assert.Equal(t, "tab", got.Keys["focus_next"])
	assert.Equal(t, "ctrl+c", got.Keys["app_quit"])
}

func TestKeysCommandOverrides(t *testing.T) {
	path := writeConfig(t, "[keys]\nFOCUS_NEXT = \"ctrl n\"\n")

	out, err := runCmd(t, "keys", "--config", path)
	require.NoError(t, err)

	var got keyFile
	_, err = toml.Decode(out, &got)
	require.NoError(t, err)
	assert.Equal(t, "ctrl+n", got.Keys["focus_next"])
	assert.Equal(t, "shift+tab", got.Keys["focus_prev"])
}

func TestKeysCommandConflict(t *testing.T) {
	path := writeConfig(t, "[keys]\nfocus_next = \"down\"\n")

	_, err := runCmd(t, "keys", "--config", path)
	assert.ErrorIs(t, err, keys.ErrShortcutConflict)
	assert.Contains(t, err.Error(), path)
}

func TestKeysCommandRejectsArgs(t *testing.T) {
	_, err := runCmd(t, "keys", "extra")
	assert.Error(t, err)
}

func TestRunNeedsTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("running in a terminal")
	}
	_, err := runCmd(t)
	assert.ErrorIs(t, err, ErrNotATerminal)
}
