package renamer

import (
	"fmt"
	"os"
	"strings"
)

// Serialize renders entries one path per line, in sequence order. The same
// order is assumed when the edited text is read back.
func Serialize(entries []Entry) string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Path
	}
	return strings.Join(names, "\n")
}

// ParseLines splits edited text into trimmed, non-blank lines. Blank lines do
// not consume a position, so the user can add vertical whitespace freely.
func ParseLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}

// ListingFile is the temporary file handed to the editor. It is written once
// per session and re-read after every edit iteration.
type ListingFile struct {
	path string
}

func CreateListing(entries []Entry) (*ListingFile, error) {
	f, err := os.CreateTemp("", "renamer*.ini")
	if err != nil {
		return nil, fmt.Errorf("failed to create listing file: %w", err)
	}

	_, werr := f.WriteString(Serialize(entries))
	cerr := f.Close()
	if werr != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write listing file: %w", werr)
	}
	if cerr != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write listing file: %w", cerr)
	}

	return &ListingFile{path: f.Name()}, nil
}

func (l *ListingFile) Path() string { return l.path }

// Actions re-reads the edited listing and reconciles it against entries.
// Editors may replace the file instead of rewriting it in place, so the read
// goes through the path, never a retained descriptor.
func (l *ListingFile) Actions(entries []Entry) ([]Action, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing file: %w", err)
	}
	return Reconcile(entries, ParseLines(string(data)))
}

func (l *ListingFile) Close() error {
	return os.Remove(l.path)
}
