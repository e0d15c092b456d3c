package renamer

import "fmt"

type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
)

func (k EntryKind) String() string {
	if k == KindDir {
		return "directory"
	}
	return "file"
}

// Entry is one filesystem object captured during traversal. Entries are
// created once per scan and never mutated afterwards.
type Entry struct {
	Kind EntryKind
	Path string
}

type ActionKind int

const (
	ActionRename ActionKind = iota
	ActionDelete
)

// Action pairs an entry with the change derived from its edited line. Entry
// points into the session's entry slice so the original path stays
// authoritative while actions are pending.
type Action struct {
	Kind   ActionKind
	Entry  *Entry
	Target string
}

func (a Action) String() string {
	if a.Kind == ActionDelete {
		return fmt.Sprintf("Remove %s", a.Entry.Path)
	}
	return fmt.Sprintf("%s -> %s", a.Entry.Path, a.Target)
}

type Summary struct {
	Renamed []string
	Removed []string
	Skipped []string
	Failed  []string
	Message string
}
