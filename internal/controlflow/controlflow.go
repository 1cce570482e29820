// Package controlflow derives per-statement reachability facts from the
// block structure of a file. The analysis is a single forward pass: it never
// iterates to a fixed point and prefers false negatives, defaulting to
// "reachable, does not terminate" for anything it cannot analyze.
package controlflow

import "github.com/ecmalint/ecmalint/pkg/ast"

// Fact is the derived reachability information for one statement.
type Fact struct {
	// Unreachable is true when no execution path reaches the statement.
	Unreachable bool

	// Terminates is true when the statement unconditionally transfers
	// control away from the following statement: return, throw, break,
	// continue, or a construct all of whose arms do.
	Terminates bool
}

// Info holds the facts for every statement of one file, keyed by the
// statement's start byte offset. Read-only after Analyze returns.
type Info struct {
	facts map[uint32]Fact
}

// Fact returns the fact recorded for the statement starting at pos.
func (i *Info) Fact(pos ast.Position) (Fact, bool) {
	f, ok := i.facts[pos.ByteOffset]

	return f, ok
}

// IsReachable reports whether the statement starting at pos is reachable.
// Unknown statements are reachable by default.
func (i *Info) IsReachable(pos ast.Position) bool {
	f, ok := i.facts[pos.ByteOffset]

	return !ok || !f.Unreachable
}

// Analyze builds reachability facts for the whole program, including every
// nested function body as an independent scope.
func Analyze(program *ast.Program) *Info {
	a := &analyzer{facts: make(map[uint32]Fact)}

	if program.Root != nil {
		a.sequence(program.Root.Statements(), true)
		a.scanFunctions(program.Root)
	}

	return &Info{facts: a.facts}
}

// flow describes how a statement (or statement sequence) ends.
type flow struct {
	// terminates: return, throw, or an infinite loop; nothing after it
	// runs in any enclosing block.
	terminates bool

	// breaks / continues: control jumps to the nearest enclosing loop or
	// switch. Consumed at that construct's boundary.
	breaks    bool
	continues bool
}

// stops reports whether execution cannot fall through to the next
// statement in the same sequence.
func (f flow) stops() bool {
	return f.terminates || f.breaks || f.continues
}

type analyzer struct {
	facts map[uint32]Fact
}

// scanFunctions walks the whole subtree and analyzes each function body as
// a fresh scope. Function bodies never affect the flow of the sequence the
// function appears in.
func (a *analyzer) scanFunctions(n *ast.Node) {
	for _, c := range n.Children {
		if c.Kind.IsFunction() {
			if body := c.ChildByField("body"); body != nil && body.Kind == ast.KindStatementBlock {
				a.sequence(body.Statements(), true)
			}
		}

		a.scanFunctions(c)
	}
}

// sequence analyzes a statement list, recording a fact per statement, and
// returns the flow of the sequence as a whole.
func (a *analyzer) sequence(stmts []*ast.Node, reachable bool) flow {
	var out flow

	stopped := !reachable

	for _, stmt := range stmts {
		// Function and class declarations are hoisted: they are reachable
		// regardless of position and never affect sequencing.
		if isHoistedDecl(stmt.Kind) {
			a.record(stmt, Fact{})

			continue
		}

		f := a.statement(stmt, !stopped)

		a.record(stmt, Fact{Unreachable: stopped, Terminates: f.stops()})

		if !stopped && f.stops() {
			out = f
			stopped = true
		}
	}

	return out
}

func isHoistedDecl(k ast.NodeKind) bool {
	return k == ast.KindFunctionDeclaration ||
		k == ast.KindGeneratorFunctionDeclaration ||
		k == ast.KindClassDeclaration
}

func (a *analyzer) record(stmt *ast.Node, f Fact) {
	a.facts[stmt.Span.Start.ByteOffset] = f
}

// statement analyzes one statement and returns its flow. reachable only
// controls how nested statements are recorded; the returned flow is
// position-independent.
func (a *analyzer) statement(stmt *ast.Node, reachable bool) flow {
	switch stmt.Kind {
	case ast.KindReturnStatement, ast.KindThrowStatement:
		return flow{terminates: true}

	case ast.KindBreakStatement:
		return flow{breaks: true}

	case ast.KindContinueStatement:
		return flow{continues: true}

	case ast.KindStatementBlock:
		return a.sequence(stmt.Statements(), reachable)

	case ast.KindIfStatement:
		return a.ifStatement(stmt, reachable)

	case ast.KindSwitchStatement:
		return a.switchStatement(stmt, reachable)

	case ast.KindTryStatement:
		return a.tryStatement(stmt, reachable)

	case ast.KindWhileStatement, ast.KindForStatement:
		return a.loop(stmt, reachable)

	case ast.KindDoStatement:
		return a.doStatement(stmt, reachable)

	case ast.KindForInStatement:
		// May iterate zero times; the body is reachable, the loop falls
		// through.
		a.bodyOf(stmt, reachable)

		return flow{}

	case ast.KindLabeledStatement:
		return a.labeled(stmt, reachable)

	case ast.KindWithStatement:
		a.bodyOf(stmt, reachable)

		return flow{}

	default:
		// Expressions, declarations, imports: fall through.
		return flow{}
	}
}

// bodyOf analyzes the "body" child, which is either a block or a single
// statement.
func (a *analyzer) bodyOf(stmt *ast.Node, reachable bool) flow {
	body := stmt.ChildByField("body")
	if body == nil {
		return flow{}
	}

	return a.arm(body, reachable)
}

// arm analyzes a branch arm: a block is analyzed as a sequence, a bare
// statement as itself (recording its fact).
func (a *analyzer) arm(n *ast.Node, reachable bool) flow {
	if n.Kind == ast.KindStatementBlock {
		return a.sequence(n.Statements(), reachable)
	}

	f := a.statement(n, reachable)
	a.record(n, Fact{Unreachable: !reachable, Terminates: f.stops()})

	return f
}

// ifStatement: the statement after an if is unreachable only when every arm
// stops execution, which requires an else.
func (a *analyzer) ifStatement(stmt *ast.Node, reachable bool) flow {
	consequence := stmt.ChildByField("consequence")
	alternative := stmt.ChildByField("alternative")

	var consFlow, altFlow flow

	if consequence != nil {
		consFlow = a.arm(consequence, reachable)
	}

	if alternative == nil {
		return flow{}
	}

	// The alternative field wraps the statement in an else_clause in some
	// grammars; unwrap a single-child container.
	altStmt := alternative
	if !altStmt.Kind.IsStatement() && len(altStmt.Children) == 1 {
		altStmt = altStmt.Children[0]
	}

	altFlow = a.arm(altStmt, reachable)

	return mergeArms(consFlow, altFlow)
}

// switchStatement: arms are the case bodies. A break escapes the switch, so
// the switch only stops execution when it has a default arm and every arm
// terminates without breaking.
func (a *analyzer) switchStatement(stmt *ast.Node, reachable bool) flow {
	body := stmt.ChildByField("body")
	if body == nil {
		return flow{}
	}

	hasDefault := false
	allTerminate := true
	sawArm := false

	for _, c := range body.Children {
		if c.Kind != ast.KindSwitchCase && c.Kind != ast.KindSwitchDefault {
			continue
		}

		sawArm = true

		if c.Kind == ast.KindSwitchDefault {
			hasDefault = true
		}

		armFlow := a.sequence(c.Statements(), reachable)

		if armFlow.breaks || !armFlow.terminates {
			allTerminate = false
		}
	}

	if sawArm && hasDefault && allTerminate {
		return flow{terminates: true}
	}

	return flow{}
}

// tryStatement: code after the try stops only when the finally terminates,
// or when the try terminates together with every handler that could take
// over from it.
func (a *analyzer) tryStatement(stmt *ast.Node, reachable bool) flow {
	tryFlow := a.bodyOf(stmt, reachable)

	var catchFlow flow

	catchClause := stmt.ChildByField("handler")
	if catchClause == nil {
		catchClause = stmt.FirstChildOfKind(ast.KindCatchClause)
	}

	hasCatch := catchClause != nil
	if hasCatch {
		catchFlow = a.bodyOf(catchClause, reachable)
	}

	var finallyFlow flow

	finallyClause := stmt.ChildByField("finalizer")
	if finallyClause == nil {
		finallyClause = stmt.FirstChildOfKind(ast.KindFinallyClause)
	}

	if finallyClause != nil {
		if body := finallyClause.FirstChildOfKind(ast.KindStatementBlock); body != nil {
			finallyFlow = a.sequence(body.Statements(), reachable)
		}
	}

	if finallyFlow.stops() {
		return finallyFlow
	}

	if tryFlow.terminates && (!hasCatch || catchFlow.terminates) {
		return flow{terminates: true}
	}

	return flow{}
}

// loop handles while and for statements. A statically-true condition with
// no reachable break is an infinite loop (terminates); a statically-false
// condition means the body never runs.
func (a *analyzer) loop(stmt *ast.Node, reachable bool) flow {
	truth := conditionTruth(stmt)

	if truth == conditionFalse {
		a.bodyOf(stmt, false)

		return flow{}
	}

	bodyFlow := a.bodyOf(stmt, reachable)

	if truth == conditionTrue && !bodyFlow.breaks {
		return flow{terminates: true}
	}

	return flow{}
}

// doStatement: the body runs at least once.
func (a *analyzer) doStatement(stmt *ast.Node, reachable bool) flow {
	bodyFlow := a.bodyOf(stmt, reachable)

	if bodyFlow.terminates {
		return flow{terminates: true}
	}

	if conditionTruth(stmt) == conditionTrue && !bodyFlow.breaks {
		return flow{terminates: true}
	}

	return flow{}
}

// labeled: transparent; label-targeted breaks are treated like plain breaks,
// which is the conservative reading.
func (a *analyzer) labeled(stmt *ast.Node, reachable bool) flow {
	body := stmt.ChildByField("body")
	if body == nil {
		return flow{}
	}

	f := a.arm(body, reachable)

	// A break out of the labeled statement lands right after it.
	if f.breaks {
		return flow{}
	}

	return f
}

type conditionValue int

const (
	conditionUnknown conditionValue = iota
	conditionTrue
	conditionFalse
)

// conditionTruth statically evaluates a loop condition. Only literal
// `true` / `false` (possibly parenthesized) and an absent `for(;;)`
// condition are recognized; everything else is unknown.
func conditionTruth(stmt *ast.Node) conditionValue {
	cond := stmt.ChildByField("condition")
	if cond == nil {
		if stmt.Kind == ast.KindForStatement {
			return conditionTrue
		}

		return conditionUnknown
	}

	for cond.Kind == ast.KindParenthesizedExpression && len(cond.Children) == 1 {
		cond = cond.Children[0]
	}

	switch cond.Kind {
	case ast.KindTrue:
		return conditionTrue
	case ast.KindFalse:
		return conditionFalse
	case ast.KindNumber:
		if cond.Text == "0" {
			return conditionFalse
		}

		if cond.Text != "" {
			return conditionTrue
		}

		return conditionUnknown
	default:
		return conditionUnknown
	}
}

// mergeArms combines two exhaustive arms: the construct stops execution
// only when both arms stop.
func mergeArms(a, b flow) flow {
	if !a.stops() || !b.stops() {
		return flow{}
	}

	return flow{
		terminates: a.terminates && b.terminates,
		breaks:     a.breaks || b.breaks,
		continues:  a.continues || b.continues,
	}
}
