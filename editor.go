package renamer

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Editor opens the listing file and blocks until the user is done with it.
type Editor interface {
	Edit(path string) error
}

// CommandEditor runs the configured editor command as a subprocess attached
// to the caller's terminal. A non-zero exit means the user bailed out (vim's
// :cq) and is treated as a failed edit.
type CommandEditor struct {
	Command string
}

func (e CommandEditor) Edit(path string) error {
	parts := strings.Fields(e.Command)
	if len(parts) == 0 {
		return errors.New("no editor configured")
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", e.Command, err)
	}
	return nil
}

// SelectEditor returns the remote editor when this process runs inside a
// Neovim terminal and allowNvim permits it, otherwise the subprocess editor
// for command.
func SelectEditor(command string, allowNvim bool) Editor {
	logger := getLogger("editor")
	if allowNvim {
		ed, err := NewNvimEditor()
		if err == nil {
			logger.Debug().Msg("Attached to host nvim instance")
			return ed
		}
		if !errors.Is(err, errNoHostNvim) {
			logger.Debug().Err(err).Msg("Host nvim unavailable, using subprocess editor")
		}
	}
	return CommandEditor{Command: command}
}
