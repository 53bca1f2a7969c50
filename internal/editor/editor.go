// Package editor launches the user's preferred text editor on a file.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/skillcheck/internal/errors"
)

// Streams are the terminal streams handed to the editor process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Open runs the editor on path and waits for it to exit.
//
// $EDITOR and $VISUAL may carry arguments ("code --wait"); they are split
// on whitespace before the path is appended.
func Open(ctx context.Context, path string, s Streams) error {
	argv := strings.Fields(Detect())
	if len(argv) == 0 {
		return errors.New("no editor configured")
	}

	c := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	c.Stdin = s.In
	c.Stdout = s.Out
	c.Stderr = s.Err

	if err := c.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// Detect returns the editor command line. Fallback chain: $EDITOR, $VISUAL,
// nano, vi.
func Detect() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
