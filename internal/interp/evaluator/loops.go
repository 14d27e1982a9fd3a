package evaluator

import (
	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/interp/exception"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// loopSignal classifies an error returned from a loop body against the
// loop's own label (spec §4.3 For/labeled statement): an unlabeled or
// matching-label Break exits the loop; an unlabeled or matching-label
// Continue skips to the next iteration; anything else propagates.
type loopSignal int

const (
	loopNone loopSignal = iota
	loopBreak
	loopContinue
)

func classifyLoopErr(err error, label string) (loopSignal, error) {
	sig, ok := err.(*exception.Signal)
	if !ok {
		return loopNone, err
	}
	switch sig.Kind {
	case exception.KindBreak:
		if sig.Label == "" || sig.Label == label {
			return loopBreak, nil
		}
	case exception.KindContinue:
		if sig.Label == "" || sig.Label == label {
			return loopContinue, nil
		}
	}
	return loopNone, err
}

// evalLabeled dispatches a labeled statement's body directly if it is a
// loop or switch (so the label is visible to classifyLoopErr), and
// otherwise just runs the body, treating a matching unlabeled-scope
// Break as normal completion (spec §4.3 Labeled statement).
func (e *Evaluator) evalLabeled(h *runtime.Heap, stmt *ast.LabeledStatement) (runtime.Interpreted, error) {
	switch body := stmt.Body.(type) {
	case *ast.ForStatement:
		return e.evalFor(h, body, stmt.Label)
	case *ast.WhileStatement:
		return e.evalWhile(h, body, stmt.Label)
	case *ast.DoWhileStatement:
		return e.evalDoWhile(h, body, stmt.Label)
	case *ast.ForInStatement:
		return e.evalForIn(h, body, stmt.Label)
	case *ast.SwitchStatement:
		return e.evalSwitch(h, body, stmt.Label)
	default:
		res, err := e.EvalStatement(h, stmt.Body)
		if err != nil {
			if sig, ok := err.(*exception.Signal); ok && sig.Kind == exception.KindBreak && sig.Label == stmt.Label {
				return runtime.VOID, nil
			}
		}
		return res, err
	}
}

// evalFor implements the C-style for loop (spec §4.3 For).
func (e *Evaluator) evalFor(h *runtime.Heap, stmt *ast.ForStatement, label string) (runtime.Interpreted, error) {
	return h.EnterBlockScope(func() (runtime.Interpreted, error) {
		if stmt.Init != nil {
			if _, err := e.evalForInit(h, stmt.Init); err != nil {
				return runtime.VOID, err
			}
		}
		for {
			if stmt.Test != nil {
				test, err := e.evalValue(h, stmt.Test)
				if err != nil {
					return runtime.VOID, err
				}
				if !test.ToBoolean() {
					break
				}
			}
			_, err := e.EvalStatement(h, stmt.Body)
			if err != nil {
				sig, propagate := classifyLoopErr(err, label)
				if propagate != nil {
					return runtime.VOID, propagate
				}
				if sig == loopBreak {
					break
				}
				// loopContinue falls through to Update below.
			}
			if stmt.Update != nil {
				if _, err := e.evalValue(h, stmt.Update); err != nil {
					return runtime.VOID, err
				}
			}
		}
		return runtime.VOID, nil
	})
}

// evalForInit runs a for-loop's init clause, which is either a variable
// declaration or a bare expression.
func (e *Evaluator) evalForInit(h *runtime.Heap, init ast.Statement) (runtime.Interpreted, error) {
	switch n := init.(type) {
	case *ast.VariableDeclaration:
		vars, _ := collectBlockHoists([]ast.Statement{n})
		h.Declare(h.CurrentScope(), vars, nil)
		return e.evalVariableDeclaration(h, n)
	default:
		return e.EvalStatement(h, init)
	}
}

func (e *Evaluator) evalWhile(h *runtime.Heap, stmt *ast.WhileStatement, label string) (runtime.Interpreted, error) {
	for {
		test, err := e.evalValue(h, stmt.Test)
		if err != nil {
			return runtime.VOID, err
		}
		if !test.ToBoolean() {
			return runtime.VOID, nil
		}
		_, err = e.EvalStatement(h, stmt.Body)
		if err != nil {
			sig, propagate := classifyLoopErr(err, label)
			if propagate != nil {
				return runtime.VOID, propagate
			}
			if sig == loopBreak {
				return runtime.VOID, nil
			}
		}
	}
}

func (e *Evaluator) evalDoWhile(h *runtime.Heap, stmt *ast.DoWhileStatement, label string) (runtime.Interpreted, error) {
	for {
		_, err := e.EvalStatement(h, stmt.Body)
		if err != nil {
			sig, propagate := classifyLoopErr(err, label)
			if propagate != nil {
				return runtime.VOID, propagate
			}
			if sig == loopBreak {
				return runtime.VOID, nil
			}
		}
		test, err := e.evalValue(h, stmt.Test)
		if err != nil {
			return runtime.VOID, err
		}
		if !test.ToBoolean() {
			return runtime.VOID, nil
		}
	}
}

// classifySwitchErr recognizes only a Break matching this switch (unlabeled
// or carrying the switch's own label) as terminating the switch. Everything
// else, including Continue, is returned unchanged so it propagates to an
// enclosing loop: a switch is not a loop and must never swallow continue.
func classifySwitchErr(err error, label string) (isBreak bool, propagate error) {
	if sig, ok := err.(*exception.Signal); ok && sig.Kind == exception.KindBreak {
		if sig.Label == "" || sig.Label == label {
			return true, nil
		}
	}
	return false, err
}

// evalSwitch evaluates the discriminant once, scans cases in source order
// for the first strict-equal match (or the default clause), and falls
// through from there, honoring unlabeled break (spec §4.3 Switch).
func (e *Evaluator) evalSwitch(h *runtime.Heap, stmt *ast.SwitchStatement, label string) (runtime.Interpreted, error) {
	return h.EnterBlockScope(func() (runtime.Interpreted, error) {
		disc, err := e.evalValue(h, stmt.Discriminant)
		if err != nil {
			return runtime.VOID, err
		}

		restart := -1
		defaultIdx := -1
		for i, c := range stmt.Cases {
			if c.Test == nil {
				defaultIdx = i
				continue
			}
			tv, err := e.evalValue(h, c.Test)
			if err != nil {
				return runtime.VOID, err
			}
			if runtime.StrictEquals(disc, tv) {
				restart = i
				break
			}
		}
		if restart == -1 {
			restart = defaultIdx
		}
		if restart == -1 {
			return runtime.VOID, nil
		}

		last := runtime.VOID
		for i := restart; i < len(stmt.Cases); i++ {
			vars, funcs := collectBlockHoists(stmt.Cases[i].Statements)
			h.Declare(h.CurrentScope(), vars, funcs)
			res, err := e.runStatements(h, stmt.Cases[i].Statements)
			if err != nil {
				isBreak, propagate := classifySwitchErr(err, label)
				if propagate != nil {
					return runtime.VOID, propagate
				}
				if isBreak {
					return last, nil
				}
			}
			last = res
		}
		return last, nil
	})
}
