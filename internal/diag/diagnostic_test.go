package diag_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ecmalint/ecmalint/internal/diag"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

func at(line, col uint32, code string) diag.Diagnostic {
	return diag.Diagnostic{
		Code: code,
		Range: ast.Span{
			Start: ast.Position{Line: line, Col: col},
		},
	}
}

var _ = Describe("Sort", func() {
	It("orders by line, then column, then code", func() {
		ds := []diag.Diagnostic{
			at(3, 0, "no-var"),
			at(1, 4, "no-debugger"),
			at(3, 0, "eqeqeq"),
			at(1, 2, "no-var"),
		}

		diag.Sort(ds)

		Expect(ds[0].Range.Start).To(Equal(ast.Position{Line: 1, Col: 2}))
		Expect(ds[1].Range.Start).To(Equal(ast.Position{Line: 1, Col: 4}))
		Expect(ds[2].Code).To(Equal("eqeqeq"))
		Expect(ds[3].Code).To(Equal("no-var"))
	})

	It("is stable for identical positions and codes", func() {
		first := at(2, 0, "no-var")
		first.Message = "first"

		second := at(2, 0, "no-var")
		second.Message = "second"

		ds := []diag.Diagnostic{first, second}
		diag.Sort(ds)

		Expect(ds[0].Message).To(Equal("first"))
		Expect(ds[1].Message).To(Equal("second"))
	})
})

var _ = Describe("String", func() {
	It("renders as (code) message", func() {
		d := diag.Diagnostic{Code: "no-debugger", Message: "`debugger` statement is not allowed"}

		Expect(d.String()).To(Equal("(no-debugger) `debugger` statement is not allowed"))
	})
})
