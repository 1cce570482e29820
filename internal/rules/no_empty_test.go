package rules_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ecmalint/ecmalint/internal/rules"
	"github.com/ecmalint/ecmalint/internal/testkit"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

var _ = Describe("NoEmpty", func() {
	It("reports an empty block statement", func() {
		source := "if (x) {}\n"
		ifStmt := testkit.Node(ast.KindIfStatement, source, "if (x) {}", 1)
		block := fieldNode(ast.KindStatementBlock, "consequence", testkit.SpanOf(source, "{}", 1))
		ifStmt.AddChild(block)

		program := testkit.Program(source, testkit.Root(source, ifStmt))

		Expect(onlyCodes(lintWith(rules.NoEmpty{}, program))).To(Equal([]string{"no-empty"}))
	})

	It("accepts a block containing a statement", func() {
		source := "if (x) { y(); }\n"
		ifStmt := testkit.Node(ast.KindIfStatement, source, "if (x) { y(); }", 1)
		block := fieldNode(ast.KindStatementBlock, "consequence", testkit.SpanOf(source, "{ y(); }", 1))
		block.AddChild(testkit.Node(ast.KindExpressionStatement, source, "y();", 1))
		ifStmt.AddChild(block)

		program := testkit.Program(source, testkit.Root(source, ifStmt))

		Expect(lintWith(rules.NoEmpty{}, program)).To(BeEmpty())
	})

	It("accepts a block containing only a comment", func() {
		source := "if (x) { /* intentional */ }\n"
		ifStmt := testkit.Node(ast.KindIfStatement, source, "if (x) { /* intentional */ }", 1)
		block := fieldNode(ast.KindStatementBlock, "consequence",
			testkit.SpanOf(source, "{ /* intentional */ }", 1))
		ifStmt.AddChild(block)

		program := testkit.Program(source, testkit.Root(source, ifStmt))

		Expect(lintWith(rules.NoEmpty{}, program)).To(BeEmpty())
	})

	It("accepts empty function bodies", func() {
		source := "function noop() {}\n"
		fn := testkit.Node(ast.KindFunctionDeclaration, source, "function noop() {}", 1)
		body := fieldNode(ast.KindStatementBlock, "body", testkit.SpanOf(source, "{}", 1))
		fn.AddChild(body)

		program := testkit.Program(source, testkit.Root(source, fn))

		Expect(lintWith(rules.NoEmpty{}, program)).To(BeEmpty())
	})

	It("reports a switch without arms", func() {
		source := "switch (x) {}\n"
		sw := testkit.Node(ast.KindSwitchStatement, source, "switch (x) {}", 1)
		body := fieldNode(ast.KindUnknown, "body", testkit.SpanOf(source, "{}", 1))
		sw.AddChild(body)

		program := testkit.Program(source, testkit.Root(source, sw))

		Expect(onlyCodes(lintWith(rules.NoEmpty{}, program))).To(Equal([]string{"no-empty"}))
	})

	It("accepts a switch with a case", func() {
		source := "switch (x) { case 1: y(); }\n"
		sw := testkit.Node(ast.KindSwitchStatement, source, "switch (x) { case 1: y(); }", 1)
		body := fieldNode(ast.KindUnknown, "body", testkit.SpanOf(source, "{ case 1: y(); }", 1))
		body.AddChild(testkit.Node(ast.KindSwitchCase, source, "case 1: y();", 1))
		sw.AddChild(body)

		program := testkit.Program(source, testkit.Root(source, sw))

		Expect(lintWith(rules.NoEmpty{}, program)).To(BeEmpty())
	})
})

var _ = Describe("NoSparseArrays", func() {
	buildArray := func(literal string) *ast.Program {
		source := "const a = " + literal + ";\n"
		decl := testkit.Node(ast.KindLexicalDeclaration, source, source[:len(source)-1], 1)
		arr := testkit.Node(ast.KindArray, source, literal, 1)
		decl.AddChild(arr)

		return testkit.Program(source, testkit.Root(source, decl))
	}

	It("reports holes between elements", func() {
		Expect(onlyCodes(lintWith(rules.NoSparseArrays{}, buildArray("[1,, 2]")))).
			To(Equal([]string{"no-sparse-arrays"}))
	})

	It("reports a leading hole", func() {
		Expect(onlyCodes(lintWith(rules.NoSparseArrays{}, buildArray("[, 1]")))).
			To(Equal([]string{"no-sparse-arrays"}))
	})

	It("accepts dense arrays", func() {
		Expect(lintWith(rules.NoSparseArrays{}, buildArray("[1, 2, 3]"))).To(BeEmpty())
	})

	It("accepts a single trailing comma", func() {
		Expect(lintWith(rules.NoSparseArrays{}, buildArray("[1, 2,]"))).To(BeEmpty())
	})

	It("ignores commas inside nested literals and strings", func() {
		Expect(lintWith(rules.NoSparseArrays{}, buildArray("[[1, 2], \"a,,b\"]"))).To(BeEmpty())
	})
})

var _ = Describe("BanUntaggedTodo", func() {
	run := func(source string) []string {
		program := testkit.Program(source, testkit.Root(source))

		return onlyCodes(lintWith(rules.BanUntaggedTodo{}, program))
	}

	It("reports a bare TODO", func() {
		Expect(run("// TODO fix this\nconst a = 1;\n")).To(Equal([]string{"ban-untagged-todo"}))
	})

	It("reports TODO in block comments", func() {
		Expect(run("/* todo later */\nconst a = 1;\n")).To(Equal([]string{"ban-untagged-todo"}))
	})

	It("accepts TODO with a user tag", func() {
		Expect(run("// TODO(@alice) fix this\nconst a = 1;\n")).To(BeEmpty())
	})

	It("accepts TODO with an issue reference", func() {
		Expect(run("// TODO(#123) fix this\nconst a = 1;\n")).To(BeEmpty())
	})

	It("ignores comments without TODO", func() {
		Expect(run("// plain note\nconst a = 1;\n")).To(BeEmpty())
	})
})

var _ = Describe("NoUnreachable", func() {
	It("reports statements after a return", func() {
		source := "return;\nfoo();\n"
		ret := testkit.Node(ast.KindReturnStatement, source, "return;", 1)
		after := testkit.Node(ast.KindExpressionStatement, source, "foo();", 1)

		program := testkit.Program(source, testkit.Root(source, ret, after))

		found := lintWith(rules.NoUnreachable{}, program)

		Expect(onlyCodes(found)).To(Equal([]string{"no-unreachable"}))
		Expect(found[0].Range).To(Equal(after.Span))
	})

	It("skips hoisted function declarations", func() {
		source := "return;\nfunction f() {}\n"
		ret := testkit.Node(ast.KindReturnStatement, source, "return;", 1)
		fn := testkit.Node(ast.KindFunctionDeclaration, source, "function f() {}", 1)

		program := testkit.Program(source, testkit.Root(source, ret, fn))

		Expect(lintWith(rules.NoUnreachable{}, program)).To(BeEmpty())
	})

	It("skips initializer-less var declarations", func() {
		source := "return;\nvar x;\nvar y = 1;\n"
		ret := testkit.Node(ast.KindReturnStatement, source, "return;", 1)

		bare := testkit.Node(ast.KindVariableDeclaration, source, "var x;", 1)
		bare.AddChild(testkit.Node(ast.KindVariableDeclarator, source, "x", 1))

		initialized := testkit.Node(ast.KindVariableDeclaration, source, "var y = 1;", 1)
		declarator := testkit.Node(ast.KindVariableDeclarator, source, "y = 1", 1)
		declarator.AddChild(fieldNode(ast.KindNumber, "value", testkit.SpanOf(source, "1", 1)))
		initialized.AddChild(declarator)

		program := testkit.Program(source, testkit.Root(source, ret, bare, initialized))

		found := lintWith(rules.NoUnreachable{}, program)

		Expect(onlyCodes(found)).To(Equal([]string{"no-unreachable"}))
		Expect(found[0].Range).To(Equal(initialized.Span))
	})
})
