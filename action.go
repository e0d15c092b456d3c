package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type Applier struct{}

func NewApplier() *Applier {
	return &Applier{}
}

// ApplyAll executes actions in order and records every outcome. A failing
// action is reported and skipped; the rest of the batch still runs.
func (ap *Applier) ApplyAll(actions []Action) Summary {
	logger := getLogger("apply")

	var s Summary
	for _, a := range actions {
		switch a.Kind {
		case ActionDelete:
			if err := ap.remove(a); err != nil {
				logger.Error().Err(err).Stringer("kind", a.Entry.Kind).Str("path", a.Entry.Path).Msg("Remove failed")
				s.Failed = append(s.Failed, a.String())
				continue
			}
			s.Removed = append(s.Removed, a.Entry.Path)

		case ActionRename:
			if reason := refuseRename(a.Entry.Path, a.Target); reason != "" {
				logger.Warn().Str("from", a.Entry.Path).Str("to", a.Target).Msg(reason)
				s.Skipped = append(s.Skipped, fmt.Sprintf("%s (%s)", a.String(), reason))
				continue
			}
			if err := ap.rename(a); err != nil {
				logger.Error().Err(err).Str("from", a.Entry.Path).Str("to", a.Target).Msg("Rename failed")
				s.Failed = append(s.Failed, a.String())
				continue
			}
			s.Renamed = append(s.Renamed, a.String())
		}
	}
	return s
}

func (ap *Applier) remove(a Action) error {
	if a.Entry.Kind == KindDir {
		return os.RemoveAll(a.Entry.Path)
	}
	return os.Remove(a.Entry.Path)
}

func (ap *Applier) rename(a Action) error {
	if dir := filepath.Dir(a.Target); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.Rename(a.Entry.Path, a.Target)
}

// refuseRename returns a non-empty reason when from must not move to target.
// Lstat keeps an occupied target visible even when it is a symlink whose
// referent is gone. A target that cannot be checked at all is treated as
// occupied rather than risking a clobber.
func refuseRename(from, to string) string {
	if strings.EqualFold(from, to) {
		return ""
	}
	_, err := os.Lstat(to)
	switch {
	case err == nil:
		return "target already exists"
	case errors.Is(err, fs.ErrNotExist):
		return ""
	default:
		return "target state unknown"
	}
}
