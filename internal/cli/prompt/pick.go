package prompt

import (
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/skillcheck/internal/errors"
)

// Pick opens a full-screen fuzzy finder over items and returns the index
// of the chosen one. label renders each row; preview, when non-nil,
// renders the side pane for the highlighted item.
//
// Pick needs a terminal. Escape or Ctrl+C returns ErrCancelled.
func Pick[T any](items []T, label func(T) string, preview func(T) string) (int, error) {
	if len(items) == 0 {
		return -1, errors.New("nothing to pick from")
	}

	var opts []fuzzyfinder.Option
	if preview != nil {
		opts = append(opts, fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(items[i])
		}))
	}

	idx, err := fuzzyfinder.Find(items, func(i int) string { return label(items[i]) }, opts...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return -1, ErrCancelled
		}
		return -1, errors.Wrap(err, "fuzzy finder")
	}
	return idx, nil
}
