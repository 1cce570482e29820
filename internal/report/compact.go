package report

import (
	"fmt"
	"io"
)

// Compact emits one line per diagnostic, suitable for grepping and editor
// quickfix lists.
type Compact struct {
	w io.Writer
}

// NewCompact creates the compact reporter.
func NewCompact(w io.Writer) *Compact {
	return &Compact{w: w}
}

// Report writes `file:line:col: (code) message` per diagnostic and a final
// count.
func (c *Compact) Report(files []File) error {
	for _, file := range files {
		if file.Err != nil {
			if _, err := fmt.Fprintf(c.w, "%s: error: %s\n", file.Filename, file.Err); err != nil {
				return err
			}

			continue
		}

		for _, d := range file.Diagnostics {
			_, err := fmt.Fprintf(c.w, "%s:%s: (%s) %s\n", file.Filename, d.Range.Start, d.Code, d.Message)
			if err != nil {
				return err
			}
		}
	}

	total := Total(files)
	if total == 0 {
		return nil
	}

	noun := "problems"
	if total == 1 {
		noun = "problem"
	}

	_, err := fmt.Fprintf(c.w, "Found %d %s\n", total, noun)

	return err
}
