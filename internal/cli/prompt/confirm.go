// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/thoreinstein/skillcheck/internal/errors"
)

// ErrCancelled is returned when input ends before an answer is read.
var ErrCancelled = errors.New("prompt cancelled")

// Confirmer asks yes/no questions.
type Confirmer struct {
	reader io.Reader
	writer io.Writer
}

// NewConfirmer creates a Confirmer reading answers from r and writing prompts to w.
func NewConfirmer(r io.Reader, w io.Writer) *Confirmer {
	return &Confirmer{reader: r, writer: w}
}

// Confirm prints question with a [y/N] suffix and reports whether the user
// answered "y" or "yes" (case-insensitive). Anything else, including an empty
// line, is a no.
func (c *Confirmer) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.writer, "%s [y/N]: ", question)

	input, err := bufio.NewReader(c.reader).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		if errors.Is(err, io.EOF) {
			return false, ErrCancelled
		}
		return false, errors.Wrap(err, "reading answer")
	}

	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes", nil
}
