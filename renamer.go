package renamer

import (
	"fmt"
	"regexp"
	"runtime/debug"
)

// Options carries the flag values for one invocation.
type Options struct {
	Pattern     string
	Recursive   bool
	IncludeDirs bool
	Editor      string
	DryRun      bool
	NoNvim      bool
}

type App struct {
	opts      *Options
	editorCmd string
	applier   *Applier
}

type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string { return e.Err.Error() }

func NewApp(opts *Options) (*App, error) {
	cfg, err := LoadConfig(ConfigPath())
	if err != nil {
		return nil, err
	}

	editorCmd := opts.Editor
	if editorCmd == "" {
		editorCmd = cfg.Editor
	}

	return &App{
		opts:      opts,
		editorCmd: editorCmd,
		applier:   NewApplier(),
	}, nil
}

func (a *App) Execute() (summary Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
	}()

	pattern, err := regexp.Compile(a.opts.Pattern)
	if err != nil {
		return Summary{}, fmt.Errorf("invalid pattern %q: %w", a.opts.Pattern, err)
	}

	if !a.opts.DryRun && !interactive() {
		return Summary{}, fmt.Errorf("stdout is not a terminal; use --dry-run for non-interactive runs")
	}

	entries, err := Scan(".", ScanOptions{
		Pattern:     pattern,
		Recursive:   a.opts.Recursive,
		IncludeDirs: a.opts.IncludeDirs,
	})
	if err != nil {
		return Summary{}, err
	}
	if len(entries) == 0 {
		return Summary{Message: "Nothing to do"}, nil
	}

	listing, err := CreateListing(entries)
	if err != nil {
		return Summary{}, err
	}
	defer listing.Close()

	editor := SelectEditor(a.editorCmd, !a.opts.NoNvim)
	if c, ok := editor.(interface{ Close() }); ok {
		defer c.Close()
	}

	if a.opts.DryRun {
		return a.dryRun(entries, listing, editor)
	}

	session := NewSession(entries, listing, editor, TerminalPrompter{})
	actions, accepted, err := session.Run()
	if err != nil {
		return Summary{}, err
	}
	if !accepted {
		return Summary{Message: "Aborted"}, nil
	}
	if len(actions) == 0 {
		return Summary{Message: "Nothing to do"}, nil
	}

	s := a.applier.ApplyAll(actions)
	s.Message = "Applied actions"
	return s, nil
}

// dryRun runs a single edit round and prints what would happen without
// touching anything.
func (a *App) dryRun(entries []Entry, listing *ListingFile, editor Editor) (Summary, error) {
	if err := editor.Edit(listing.Path()); err != nil {
		return Summary{}, err
	}

	actions, err := listing.Actions(entries)
	if err != nil {
		logger := getLogger("app")
		logger.Error().Err(err).Msg("Cannot pair the edited names with the listing")
		return Summary{Message: "Aborted"}, nil
	}
	if len(actions) == 0 {
		return Summary{Message: "Nothing to do"}, nil
	}

	fmt.Print(FormatActions(actions))
	return Summary{Message: "Dry run, nothing applied"}, nil
}
