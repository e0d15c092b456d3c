package renamer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/neovim/go-client/nvim"
)

const editDoneEvent = "renamer_edit_done"

var errNoHostNvim = errors.New("no host nvim instance")

// NvimEditor opens listings in an already-running Neovim instance instead of
// spawning a nested editor process inside its terminal.
type NvimEditor struct {
	v    *nvim.Nvim
	done chan struct{}
}

// NewNvimEditor dials the instance this process runs inside, found through
// $NVIM or the legacy $NVIM_LISTEN_ADDRESS. Returns errNoHostNvim when
// neither is set.
func NewNvimEditor() (*NvimEditor, error) {
	addr := os.Getenv("NVIM")
	if addr == "" {
		addr = os.Getenv("NVIM_LISTEN_ADDRESS")
	}
	if addr == "" {
		return nil, errNoHostNvim
	}

	v, err := nvim.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial nvim at %s: %w", addr, err)
	}

	e := &NvimEditor{v: v, done: make(chan struct{}, 1)}
	if err := v.RegisterHandler(editDoneEvent, func() {
		select {
		case e.done <- struct{}{}:
		default:
		}
	}); err != nil {
		v.Close()
		return nil, err
	}
	return e, nil
}

// Edit opens path in a new tab of the host instance and blocks until the
// buffer is wiped, which happens when the user closes the tab or deletes the
// buffer. The edited content is re-read from disk afterwards, so the user
// must write before closing.
func (e *NvimEditor) Edit(path string) error {
	// drain a stale notification left over from a previous round
	select {
	case <-e.done:
	default:
	}

	b := e.v.NewBatch()
	b.Command(fmt.Sprintf("tabedit %s", path))
	b.Command("setlocal bufhidden=wipe noswapfile")
	b.Command(fmt.Sprintf("autocmd BufWipeout <buffer> silent! call rpcnotify(%d, %q)", e.v.ChannelID(), editDoneEvent))
	if err := b.Execute(); err != nil {
		return fmt.Errorf("failed to open %s in nvim: %w", path, err)
	}

	// The notification can be lost if the host drops the channel, so poll the
	// buffer state as a backstop.
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-e.done:
			return nil
		case <-ticker.C:
			var loaded int
			if err := e.v.Eval(fmt.Sprintf("bufloaded(%q)", path), &loaded); err != nil {
				return fmt.Errorf("lost connection to nvim: %w", err)
			}
			if loaded == 0 {
				return nil
			}
		}
	}
}

func (e *NvimEditor) Close() {
	if e.v != nil {
		e.v.Close()
	}
}
