package renamer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandEditorAppendsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "created-by-editor")

	ed := CommandEditor{Command: "touch"}
	require.NoError(t, ed.Edit(path))
	assert.FileExists(t, path)
}

func TestCommandEditorSplitsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "created-by-editor")

	ed := CommandEditor{Command: "env touch"}
	require.NoError(t, ed.Edit(path))
	assert.FileExists(t, path)
}

func TestCommandEditorEmptyCommand(t *testing.T) {
	ed := CommandEditor{Command: "   "}
	assert.ErrorContains(t, ed.Edit("listing.ini"), "no editor configured")
}

func TestCommandEditorMissingBinary(t *testing.T) {
	ed := CommandEditor{Command: "renamer-test-no-such-editor"}
	assert.Error(t, ed.Edit("listing.ini"))
}

func TestCommandEditorNonZeroExit(t *testing.T) {
	ed := CommandEditor{Command: "false"}
	assert.Error(t, ed.Edit("listing.ini"))
}

func TestNewNvimEditorWithoutHost(t *testing.T) {
	t.Setenv("NVIM", "")
	t.Setenv("NVIM_LISTEN_ADDRESS", "")

	_, err := NewNvimEditor()
	assert.ErrorIs(t, err, errNoHostNvim)
}

func TestNewNvimEditorLegacyAddress(t *testing.T) {
	t.Setenv("NVIM", "")
	t.Setenv("NVIM_LISTEN_ADDRESS", filepath.Join(t.TempDir(), "absent.sock"))

	_, err := NewNvimEditor()
	require.Error(t, err)
	assert.NotErrorIs(t, err, errNoHostNvim)
}

func TestSelectEditorSubprocessByDefault(t *testing.T) {
	t.Setenv("NVIM", "")
	t.Setenv("NVIM_LISTEN_ADDRESS", "")

	ed := SelectEditor("vim", true)
	cmdEd, ok := ed.(CommandEditor)
	require.True(t, ok)
	assert.Equal(t, "vim", cmdEd.Command)
}

func TestSelectEditorDisabledNvim(t *testing.T) {
	t.Setenv("NVIM", filepath.Join(t.TempDir(), "host.sock"))

	ed := SelectEditor("vim", false)
	_, ok := ed.(CommandEditor)
	assert.True(t, ok)
}

func TestSelectEditorFallsBackOnDialFailure(t *testing.T) {
	t.Setenv("NVIM", filepath.Join(t.TempDir(), "absent.sock"))
	t.Setenv("NVIM_LISTEN_ADDRESS", "")

	ed := SelectEditor("vim", true)
	_, ok := ed.(CommandEditor)
	assert.True(t, ok)
}
