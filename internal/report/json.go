package report

import (
	"encoding/json"
	"io"

	"github.com/ecmalint/ecmalint/internal/diag"
)

// JSON serializes the full result set for tooling.
type JSON struct {
	w io.Writer
}

// NewJSON creates the JSON reporter.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

type jsonPosition struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type jsonDiagnostic struct {
	Filename string       `json:"filename"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Hint     string       `json:"hint,omitempty"`
	Start    jsonPosition `json:"start"`
	End      jsonPosition `json:"end"`
}

type jsonError struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

type jsonReport struct {
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Errors      []jsonError      `json:"errors"`
}

// Report writes every diagnostic and per-file error as one JSON document.
func (j *JSON) Report(files []File) error {
	out := jsonReport{
		Diagnostics: []jsonDiagnostic{},
		Errors:      []jsonError{},
	}

	for _, file := range files {
		if file.Err != nil {
			out.Errors = append(out.Errors, jsonError{
				Filename: file.Filename,
				Message:  file.Err.Error(),
			})

			continue
		}

		for _, d := range file.Diagnostics {
			out.Diagnostics = append(out.Diagnostics, convert(file.Filename, d))
		}
	}

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func convert(filename string, d diag.Diagnostic) jsonDiagnostic {
	return jsonDiagnostic{
		Filename: filename,
		Code:     d.Code,
		Message:  d.Message,
		Hint:     d.Hint,
		Start:    jsonPosition{Line: d.Range.Start.Line, Col: d.Range.Start.Col},
		End:      jsonPosition{Line: d.Range.End.Line, Col: d.Range.End.Col},
	}
}
