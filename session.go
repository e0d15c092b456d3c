package renamer

// Choice is the user's decision at the review prompt.
type Choice int

const (
	ChoiceApply Choice = iota
	ChoiceAbort
	ChoiceEdit
)

// Prompter collects the user's decisions between edit rounds.
type Prompter interface {
	Review(actions []Action) (Choice, error)
	RetryParse(parseErr error) (bool, error)
}

type sessionState int

const (
	stateEditing sessionState = iota
	stateReviewing
	stateParseFailed
	stateAccepted
	stateAborted
)

// Session drives the edit/review loop over one scan's listing. The listing
// file keeps the user's text between rounds, so re-editing resumes from
// whatever they last wrote.
type Session struct {
	entries  []Entry
	listing  *ListingFile
	editor   Editor
	prompter Prompter
}

func NewSession(entries []Entry, listing *ListingFile, editor Editor, prompter Prompter) *Session {
	return &Session{entries: entries, listing: listing, editor: editor, prompter: prompter}
}

// Run loops edit, reconcile, review until the user applies or bails out. It
// returns the accepted actions; accepted is false when the user aborted. An
// error means the loop itself broke (editor or prompt failure) and is fatal
// to the whole run.
func (s *Session) Run() (actions []Action, accepted bool, err error) {
	logger := getLogger("session")

	state := stateEditing
	var pending []Action
	var parseErr error

	for {
		switch state {
		case stateEditing:
			if err := s.editor.Edit(s.listing.Path()); err != nil {
				return nil, false, err
			}
			pending, parseErr = s.listing.Actions(s.entries)
			if parseErr != nil {
				logger.Debug().Err(parseErr).Msg("Reconciliation failed")
				state = stateParseFailed
				continue
			}
			state = stateReviewing

		case stateReviewing:
			if len(pending) == 0 {
				state = stateAccepted
				continue
			}
			choice, perr := s.prompter.Review(pending)
			if perr != nil {
				return nil, false, perr
			}
			switch choice {
			case ChoiceApply:
				state = stateAccepted
			case ChoiceEdit:
				state = stateEditing
			default:
				state = stateAborted
			}

		case stateParseFailed:
			retry, perr := s.prompter.RetryParse(parseErr)
			if perr != nil {
				return nil, false, perr
			}
			if retry {
				state = stateEditing
			} else {
				state = stateAborted
			}

		case stateAccepted:
			logger.Debug().Int("actions", len(pending)).Msg("Session accepted")
			return pending, true, nil

		case stateAborted:
			logger.Debug().Msg("Session aborted")
			return nil, false, nil
		}
	}
}
