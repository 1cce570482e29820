package jsparser

import "github.com/ecmalint/ecmalint/pkg/ast"

// kinds maps tree-sitter grammar node types to engine kinds. Types absent
// from the table become KindUnknown; their children are still walked, so an
// unmapped construct never hides a violation nested inside it. Both the
// older "function" and the newer "function_expression" spellings are
// accepted because the JavaScript and TypeScript grammars disagree.
var kinds = map[string]ast.NodeKind{
	"program": ast.KindProgram,

	"expression_statement":  ast.KindExpressionStatement,
	"variable_declaration":  ast.KindVariableDeclaration,
	"lexical_declaration":   ast.KindLexicalDeclaration,
	"statement_block":       ast.KindStatementBlock,
	"return_statement":      ast.KindReturnStatement,
	"if_statement":          ast.KindIfStatement,
	"switch_statement":      ast.KindSwitchStatement,
	"switch_case":           ast.KindSwitchCase,
	"switch_default":        ast.KindSwitchDefault,
	"for_statement":         ast.KindForStatement,
	"for_in_statement":      ast.KindForInStatement,
	"while_statement":       ast.KindWhileStatement,
	"do_statement":          ast.KindDoStatement,
	"break_statement":       ast.KindBreakStatement,
	"continue_statement":    ast.KindContinueStatement,
	"throw_statement":       ast.KindThrowStatement,
	"try_statement":         ast.KindTryStatement,
	"catch_clause":          ast.KindCatchClause,
	"finally_clause":        ast.KindFinallyClause,
	"labeled_statement":     ast.KindLabeledStatement,
	"empty_statement":       ast.KindEmptyStatement,
	"debugger_statement":    ast.KindDebuggerStatement,
	"with_statement":        ast.KindWithStatement,
	"import_statement":      ast.KindImportStatement,
	"export_statement":      ast.KindExportStatement,

	"function_declaration":           ast.KindFunctionDeclaration,
	"generator_function_declaration": ast.KindGeneratorFunctionDeclaration,
	"class_declaration":              ast.KindClassDeclaration,

	"variable_declarator":             ast.KindVariableDeclarator,
	"function":                        ast.KindFunctionExpression,
	"function_expression":             ast.KindFunctionExpression,
	"generator_function":              ast.KindGeneratorFunctionExpression,
	"arrow_function":                  ast.KindArrowFunction,
	"call_expression":                 ast.KindCallExpression,
	"new_expression":                  ast.KindNewExpression,
	"member_expression":               ast.KindMemberExpression,
	"subscript_expression":            ast.KindSubscriptExpression,
	"binary_expression":               ast.KindBinaryExpression,
	"unary_expression":                ast.KindUnaryExpression,
	"update_expression":               ast.KindUpdateExpression,
	"assignment_expression":           ast.KindAssignmentExpression,
	"augmented_assignment_expression": ast.KindAugmentedAssignmentExpression,
	"ternary_expression":              ast.KindTernaryExpression,
	"sequence_expression":             ast.KindSequenceExpression,
	"parenthesized_expression":        ast.KindParenthesizedExpression,
	"await_expression":                ast.KindAwaitExpression,
	"yield_expression":                ast.KindYieldExpression,
	"method_definition":               ast.KindMethodDefinition,
	"class_body":                      ast.KindClassBody,
	"formal_parameters":               ast.KindFormalParameters,
	"arguments":                       ast.KindArguments,
	"pair":                            ast.KindPair,

	"identifier":          ast.KindIdentifier,
	"property_identifier": ast.KindPropertyIdentifier,
	"number":              ast.KindNumber,
	"string":              ast.KindString,
	"template_string":     ast.KindTemplateString,
	"regex":               ast.KindRegex,
	"true":                ast.KindTrue,
	"false":               ast.KindFalse,
	"null":                ast.KindNull,
	"undefined":           ast.KindUndefined,
	"this":                ast.KindThis,
	"super":               ast.KindSuper,
	"array":               ast.KindArray,
	"object":              ast.KindObject,
}

func kindFor(grammarType string) ast.NodeKind {
	return kinds[grammarType]
}
