package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ecmalint/ecmalint/internal/color"
	"github.com/ecmalint/ecmalint/internal/diag"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

// Options configure the pretty reporter.
type Options struct {
	Theme color.Theme
}

// Pretty renders compiler-style reports with the offending source line and
// a caret underline.
type Pretty struct {
	w     io.Writer
	theme color.Theme
}

// NewPretty creates the pretty reporter.
func NewPretty(w io.Writer, opts Options) *Pretty {
	return &Pretty{w: w, theme: opts.Theme}
}

// Report writes every diagnostic followed by a problem count summary.
func (p *Pretty) Report(files []File) error {
	for _, file := range files {
		if file.Err != nil {
			if _, err := fmt.Fprintf(p.w, "error: %s (%s)\n\n", file.Err, file.Filename); err != nil {
				return err
			}

			continue
		}

		for _, d := range file.Diagnostics {
			if err := p.diagnostic(file, d); err != nil {
				return err
			}
		}
	}

	return p.summary(files)
}

func (p *Pretty) diagnostic(file File, d diag.Diagnostic) error {
	header := fmt.Sprintf("%s %s",
		p.theme.Code.Render("("+d.Code+")"),
		p.theme.Message.Render(d.Message),
	)

	location := fmt.Sprintf(" --> %s", p.theme.Location.Render(
		fmt.Sprintf("%s:%s", file.Filename, d.Range.Start),
	))

	if _, err := fmt.Fprintf(p.w, "%s\n%s\n", header, location); err != nil {
		return err
	}

	if file.Program != nil {
		if err := p.snippet(file.Program, d.Range); err != nil {
			return err
		}
	}

	if d.Hint != "" {
		hint := p.theme.Hint.Render("hint: " + d.Hint)
		if _, err := fmt.Fprintf(p.w, "  = %s\n", hint); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(p.w)

	return err
}

// snippet prints the first line of the span with a caret underline. Spans
// crossing lines underline to the end of the first line.
func (p *Pretty) snippet(program *ast.Program, span ast.Span) error {
	line := program.Line(span.Start.Line)
	number := fmt.Sprintf("%d", span.Start.Line)
	gutter := strings.Repeat(" ", len(number))

	startCol := int(span.Start.Col)
	if startCol > len(line) {
		startCol = len(line)
	}

	endCol := len(line)
	if span.End.Line == span.Start.Line && int(span.End.Col) < endCol {
		endCol = int(span.End.Col)
	}

	if endCol < startCol {
		endCol = startCol
	}

	pad := runewidth.StringWidth(line[:startCol])

	carets := runewidth.StringWidth(line[startCol:endCol])
	if carets == 0 {
		carets = 1
	}

	underline := strings.Repeat(" ", pad) + p.theme.Caret.Render(strings.Repeat("^", carets))

	_, err := fmt.Fprintf(p.w, "%s | %s\n%s | %s\n", number, line, gutter, underline)

	return err
}

func (p *Pretty) summary(files []File) error {
	total := Total(files)
	if total == 0 {
		return nil
	}

	noun := "problems"
	if total == 1 {
		noun = "problem"
	}

	_, err := fmt.Fprintln(p.w, p.theme.Summary.Render(fmt.Sprintf("Found %d %s", total, noun)))

	return err
}
