package renamer

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// ScanOptions filter the traversal that produces the session's entries.
type ScanOptions struct {
	Pattern     *regexp.Regexp
	Recursive   bool
	IncludeDirs bool
}

// Scan walks root and returns the entries the listing will show, in natural
// sort order. Hidden entries are pruned and never descended into; the root
// itself is neither listed nor pruned. Without Recursive, traversal stops at
// the immediate directory. Unreadable nested entries are skipped; an
// unreadable root is fatal.
func Scan(root string, opts ScanOptions) ([]Entry, error) {
	logger := getLogger("walk")

	var entries []Entry
	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}

		rel, rerr := filepath.Rel(root, path)
		if rerr != nil || rel == "." {
			return nil
		}

		if strings.HasPrefix(filepath.Base(rel), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		matched := opts.Pattern == nil || opts.Pattern.MatchString(rel)

		if d.IsDir() {
			if opts.IncludeDirs && matched {
				entries = append(entries, Entry{Kind: KindDir, Path: rel})
			}
			if !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if matched {
			entries = append(entries, Entry{Kind: KindFile, Path: rel})
		}
		return nil
	}

	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return natural.Less(entries[i].Path, entries[j].Path)
	})

	logger.Debug().Int("entries", len(entries)).Msg("Scan complete")
	return entries, nil
}
