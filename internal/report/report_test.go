package report_test

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ecmalint/ecmalint/internal/diag"
	"github.com/ecmalint/ecmalint/internal/report"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

func sampleFile() report.File {
	source := "let a = 1;\nvar b = 2;\n"
	program := ast.NewProgram("src/app.js", source, nil, nil)

	return report.File{
		Filename: "src/app.js",
		Program:  program,
		Diagnostics: []diag.Diagnostic{
			{
				Code:    "no-var",
				Message: "`var` keyword is not allowed",
				Hint:    "Use `let` or `const` instead",
				Range: ast.Span{
					Start: ast.Position{Line: 2, Col: 0, ByteOffset: 11},
					End:   ast.Position{Line: 2, Col: 10, ByteOffset: 21},
				},
			},
		},
	}
}

var _ = Describe("Pretty", func() {
	render := func(files ...report.File) string {
		var buf bytes.Buffer

		reporter := report.NewPretty(&buf, report.Options{})
		Expect(reporter.Report(files)).To(Succeed())

		return buf.String()
	}

	It("prints the header, location, snippet, and hint", func() {
		out := render(sampleFile())

		Expect(out).To(ContainSubstring("(no-var) `var` keyword is not allowed"))
		Expect(out).To(ContainSubstring(" --> src/app.js:2:1"))
		Expect(out).To(ContainSubstring("2 | var b = 2;"))
		Expect(out).To(ContainSubstring("^^^^^^^^^^"))
		Expect(out).To(ContainSubstring("= hint: Use `let` or `const` instead"))
	})

	It("counts problems in the summary", func() {
		Expect(render(sampleFile())).To(ContainSubstring("Found 1 problem\n"))

		two := sampleFile()
		two.Diagnostics = append(two.Diagnostics, two.Diagnostics[0])

		Expect(render(two)).To(ContainSubstring("Found 2 problems\n"))
	})

	It("prints nothing but errors for failed files", func() {
		out := render(report.File{
			Filename: "bad.js",
			Err:      errors.New("syntax error"),
		})

		Expect(out).To(ContainSubstring("error: syntax error (bad.js)"))
		Expect(out).NotTo(ContainSubstring("Found"))
	})

	It("prints no summary for a clean run", func() {
		Expect(render(report.File{Filename: "ok.js"})).To(BeEmpty())
	})
})

var _ = Describe("Compact", func() {
	It("prints one line per diagnostic", func() {
		var buf bytes.Buffer

		Expect(report.NewCompact(&buf).Report([]report.File{sampleFile()})).To(Succeed())

		Expect(buf.String()).To(ContainSubstring(
			"src/app.js:2:1: (no-var) `var` keyword is not allowed\n",
		))
		Expect(buf.String()).To(ContainSubstring("Found 1 problem\n"))
	})
})

var _ = Describe("JSON", func() {
	It("serializes diagnostics and errors", func() {
		var buf bytes.Buffer

		files := []report.File{
			sampleFile(),
			{Filename: "bad.js", Err: errors.New("syntax error")},
		}

		Expect(report.NewJSON(&buf).Report(files)).To(Succeed())

		var out struct {
			Diagnostics []struct {
				Filename string `json:"filename"`
				Code     string `json:"code"`
				Start    struct {
					Line uint32 `json:"line"`
					Col  uint32 `json:"col"`
				} `json:"start"`
			} `json:"diagnostics"`
			Errors []struct {
				Filename string `json:"filename"`
				Message  string `json:"message"`
			} `json:"errors"`
		}

		Expect(json.Unmarshal(buf.Bytes(), &out)).To(Succeed())
		Expect(out.Diagnostics).To(HaveLen(1))
		Expect(out.Diagnostics[0].Code).To(Equal("no-var"))
		Expect(out.Diagnostics[0].Start.Line).To(Equal(uint32(2)))
		Expect(out.Errors).To(HaveLen(1))
		Expect(out.Errors[0].Filename).To(Equal("bad.js"))
	})
})

var _ = Describe("New", func() {
	It("builds a reporter per format", func() {
		var buf bytes.Buffer

		for _, f := range []report.Format{
			report.FormatPretty, report.FormatCompact, report.FormatJSON,
		} {
			r, err := report.New(f, &buf, report.Options{})

			Expect(err).NotTo(HaveOccurred())
			Expect(r).NotTo(BeNil())
		}
	})

	It("rejects unknown formats", func() {
		var buf bytes.Buffer

		_, err := report.New("xml", &buf, report.Options{})

		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Total", func() {
	It("counts diagnostics across files", func() {
		Expect(report.Total([]report.File{sampleFile(), sampleFile()})).To(Equal(2))
	})
})
