package renamer

import (
	"errors"
	"fmt"
	"strings"
)

// DeleteMarker, prefixed to a line, marks the entry at that position for
// removal. The rest of the line is ignored so the user can leave the old
// name in place for reference.
const DeleteMarker = "#"

var (
	ErrTooManyLines = errors.New("more names than entries")
	ErrTooFewLines  = errors.New("fewer names than entries")
)

// Reconcile pairs edited lines with entries by position and derives the
// action for each pair. Lines equal to their entry's path produce nothing.
// The counts must match exactly; anything else means the user added or
// removed a line, and no positional pairing can be trusted after that.
func Reconcile(entries []Entry, lines []string) ([]Action, error) {
	if len(lines) > len(entries) {
		return nil, fmt.Errorf("%w: %d names for %d entries", ErrTooManyLines, len(lines), len(entries))
	}
	if len(lines) < len(entries) {
		return nil, fmt.Errorf("%w: %d names for %d entries", ErrTooFewLines, len(lines), len(entries))
	}

	var actions []Action
	for i := range entries {
		entry := &entries[i]
		line := lines[i]

		if strings.HasPrefix(line, DeleteMarker) {
			actions = append(actions, Action{Kind: ActionDelete, Entry: entry})
			continue
		}
		if line == entry.Path {
			continue
		}
		actions = append(actions, Action{Kind: ActionRename, Entry: entry, Target: line})
	}
	return actions, nil
}
