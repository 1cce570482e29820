package ast

// NodeKind identifies the grammatical production a Node represents. The set
// mirrors the tree-sitter JavaScript/TypeScript grammars; kinds a parser
// cannot classify map to KindUnknown.
type NodeKind int

const (
	KindUnknown NodeKind = iota

	KindProgram

	// Statements.
	KindExpressionStatement
	KindVariableDeclaration // `var` declarations
	KindLexicalDeclaration  // `let` / `const` declarations
	KindStatementBlock
	KindReturnStatement
	KindIfStatement
	KindSwitchStatement
	KindSwitchCase
	KindSwitchDefault
	KindForStatement
	KindForInStatement
	KindWhileStatement
	KindDoStatement
	KindBreakStatement
	KindContinueStatement
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindFinallyClause
	KindLabeledStatement
	KindEmptyStatement
	KindDebuggerStatement
	KindWithStatement
	KindImportStatement
	KindExportStatement

	// Declarations usable in statement position.
	KindFunctionDeclaration
	KindGeneratorFunctionDeclaration
	KindClassDeclaration

	// Expressions.
	KindVariableDeclarator
	KindFunctionExpression
	KindGeneratorFunctionExpression
	KindArrowFunction
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindSubscriptExpression
	KindBinaryExpression
	KindUnaryExpression
	KindUpdateExpression
	KindAssignmentExpression
	KindAugmentedAssignmentExpression
	KindTernaryExpression
	KindSequenceExpression
	KindParenthesizedExpression
	KindAwaitExpression
	KindYieldExpression
	KindMethodDefinition
	KindClassBody
	KindFormalParameters
	KindArguments
	KindPair

	// Leaves.
	KindIdentifier
	KindPropertyIdentifier
	KindNumber
	KindString
	KindTemplateString
	KindRegex
	KindTrue
	KindFalse
	KindNull
	KindUndefined
	KindThis
	KindSuper
	KindArray
	KindObject

	kindCount
)

var kindNames = [...]string{
	KindUnknown:                       "unknown",
	KindProgram:                       "program",
	KindExpressionStatement:           "expression_statement",
	KindVariableDeclaration:           "variable_declaration",
	KindLexicalDeclaration:            "lexical_declaration",
	KindStatementBlock:                "statement_block",
	KindReturnStatement:               "return_statement",
	KindIfStatement:                   "if_statement",
	KindSwitchStatement:               "switch_statement",
	KindSwitchCase:                    "switch_case",
	KindSwitchDefault:                 "switch_default",
	KindForStatement:                  "for_statement",
	KindForInStatement:                "for_in_statement",
	KindWhileStatement:                "while_statement",
	KindDoStatement:                   "do_statement",
	KindBreakStatement:                "break_statement",
	KindContinueStatement:             "continue_statement",
	KindThrowStatement:                "throw_statement",
	KindTryStatement:                  "try_statement",
	KindCatchClause:                   "catch_clause",
	KindFinallyClause:                 "finally_clause",
	KindLabeledStatement:              "labeled_statement",
	KindEmptyStatement:                "empty_statement",
	KindDebuggerStatement:             "debugger_statement",
	KindWithStatement:                 "with_statement",
	KindImportStatement:               "import_statement",
	KindExportStatement:               "export_statement",
	KindFunctionDeclaration:           "function_declaration",
	KindGeneratorFunctionDeclaration:  "generator_function_declaration",
	KindClassDeclaration:              "class_declaration",
	KindVariableDeclarator:            "variable_declarator",
	KindFunctionExpression:            "function_expression",
	KindGeneratorFunctionExpression:   "generator_function",
	KindArrowFunction:                 "arrow_function",
	KindCallExpression:                "call_expression",
	KindNewExpression:                 "new_expression",
	KindMemberExpression:              "member_expression",
	KindSubscriptExpression:           "subscript_expression",
	KindBinaryExpression:              "binary_expression",
	KindUnaryExpression:               "unary_expression",
	KindUpdateExpression:              "update_expression",
	KindAssignmentExpression:          "assignment_expression",
	KindAugmentedAssignmentExpression: "augmented_assignment_expression",
	KindTernaryExpression:             "ternary_expression",
	KindSequenceExpression:            "sequence_expression",
	KindParenthesizedExpression:       "parenthesized_expression",
	KindAwaitExpression:               "await_expression",
	KindYieldExpression:               "yield_expression",
	KindMethodDefinition:              "method_definition",
	KindClassBody:                     "class_body",
	KindFormalParameters:              "formal_parameters",
	KindArguments:                     "arguments",
	KindPair:                          "pair",
	KindIdentifier:                    "identifier",
	KindPropertyIdentifier:            "property_identifier",
	KindNumber:                        "number",
	KindString:                        "string",
	KindTemplateString:                "template_string",
	KindRegex:                         "regex",
	KindTrue:                          "true",
	KindFalse:                         "false",
	KindNull:                          "null",
	KindUndefined:                     "undefined",
	KindThis:                          "this",
	KindSuper:                         "super",
	KindArray:                         "array",
	KindObject:                        "object",
}

// String returns the grammar name of the kind.
func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}

	return kindNames[k]
}

// statementKinds are the kinds that can appear in statement position inside
// a block, a program, or a switch-case body.
var statementKinds = map[NodeKind]bool{
	KindExpressionStatement:          true,
	KindVariableDeclaration:          true,
	KindLexicalDeclaration:           true,
	KindStatementBlock:               true,
	KindReturnStatement:              true,
	KindIfStatement:                  true,
	KindSwitchStatement:              true,
	KindForStatement:                 true,
	KindForInStatement:               true,
	KindWhileStatement:               true,
	KindDoStatement:                  true,
	KindBreakStatement:               true,
	KindContinueStatement:            true,
	KindThrowStatement:               true,
	KindTryStatement:                 true,
	KindLabeledStatement:             true,
	KindEmptyStatement:               true,
	KindDebuggerStatement:            true,
	KindWithStatement:                true,
	KindImportStatement:              true,
	KindExportStatement:              true,
	KindFunctionDeclaration:          true,
	KindGeneratorFunctionDeclaration: true,
	KindClassDeclaration:             true,
}

// IsStatement reports whether the kind appears in statement position.
func (k NodeKind) IsStatement() bool {
	return statementKinds[k]
}

// StatementKinds returns every kind for which IsStatement is true, in a
// stable order. Rules that want a callback on every statement register one
// handler per returned kind.
func StatementKinds() []NodeKind {
	kinds := make([]NodeKind, 0, len(statementKinds))

	for k := NodeKind(0); k < kindCount; k++ {
		if statementKinds[k] {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

// functionKinds own a body that forms an independent control-flow scope.
var functionKinds = map[NodeKind]bool{
	KindFunctionDeclaration:          true,
	KindGeneratorFunctionDeclaration: true,
	KindFunctionExpression:           true,
	KindGeneratorFunctionExpression:  true,
	KindArrowFunction:                true,
	KindMethodDefinition:             true,
}

// IsFunction reports whether the kind introduces a function body.
func (k NodeKind) IsFunction() bool {
	return functionKinds[k]
}
