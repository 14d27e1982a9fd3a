// Package exception implements the single failure channel the evaluator
// uses for both genuine errors and structured non-local control transfer
// (spec §4.4). A *Signal is a Go error, so every evaluator rule is
// transparent to it for free by just propagating a non-nil error; only
// the frames named in spec §4.4 (try/catch, loop/switch, labeled
// statement, function activation) type-assert on it to decide whether
// they are the intended destination.
package exception

import (
	"fmt"

	"github.com/cwbudde/go-jsi/internal/interp/runtime"
	"github.com/cwbudde/go-jsi/internal/token"
)

// Kind tags which variant of the failure channel a Signal carries.
type Kind uint8

const (
	// KindThrown carries the operand of a user `throw` (spec §4.4).
	KindThrown Kind = iota
	// KindReturn, KindBreak, KindContinue are structured Jumps (spec §4.4).
	KindReturn
	KindBreak
	KindContinue
	// Typed diagnostics, materialized as Error objects when a user catch
	// handler runs (spec §4.4, §7).
	KindSyntax
	KindReference
	KindType
	KindRange
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindThrown:
		return "Thrown"
	case KindReturn:
		return "Return"
	case KindBreak:
		return "Break"
	case KindContinue:
		return "Continue"
	case KindSyntax:
		return "SyntaxError"
	case KindReference:
		return "ReferenceError"
	case KindType:
		return "TypeError"
	case KindRange:
		return "RangeError"
	case KindInternal:
		return "InternalError"
	default:
		return "UnknownSignal"
	}
}

// IsJump reports whether a Signal is structured control transfer rather
// than a true error. try/catch catches only KindThrown and the
// IsDiagnostic kinds, so Jumps pass through it untouched (spec §4.3 Try).
func (k Kind) IsJump() bool {
	return k == KindReturn || k == KindBreak || k == KindContinue
}

// IsDiagnostic reports whether a Signal is one of the typed error kinds
// that get materialized into an Error object for a user catch handler.
func (k Kind) IsDiagnostic() bool {
	switch k {
	case KindSyntax, KindReference, KindType, KindRange, KindInternal:
		return true
	default:
		return false
	}
}

// Signal is the evaluator's single error type, implementing error so it
// can be returned and propagated like any other Go error.
type Signal struct {
	Kind Kind

	// Value carries the thrown value (KindThrown) or the returned value
	// (KindReturn).
	Value runtime.Value

	// Label carries the optional target of a labeled Break/Continue; ""
	// means unlabeled.
	Label string

	// Message and Pos describe a typed diagnostic.
	Message string
	Pos     *token.Position
	Stack   []string
}

func (s *Signal) Error() string {
	switch {
	case s.Kind == KindThrown:
		return "uncaught exception: " + s.Value.ToPrimitiveString()
	case s.Kind.IsJump():
		if s.Label != "" {
			return fmt.Sprintf("%s %s outside its target frame", s.Kind, s.Label)
		}
		return fmt.Sprintf("%s outside its target frame", s.Kind)
	case s.Pos != nil:
		return fmt.Sprintf("%s at %s: %s", s.Kind, s.Pos, s.Message)
	default:
		return fmt.Sprintf("%s: %s", s.Kind, s.Message)
	}
}

// Thrown builds a KindThrown Signal from a user-level throw operand.
func Thrown(v runtime.Value) *Signal { return &Signal{Kind: KindThrown, Value: v} }

// Return builds a KindReturn Signal.
func Return(v runtime.Value) *Signal { return &Signal{Kind: KindReturn, Value: v} }

// Break builds a KindBreak Signal, optionally labeled.
func Break(label string) *Signal { return &Signal{Kind: KindBreak, Label: label} }

// Continue builds a KindContinue Signal, optionally labeled.
func Continue(label string) *Signal { return &Signal{Kind: KindContinue, Label: label} }

// NewType, NewReference, NewSyntax, and NewRange build typed diagnostics.
// Pos is attached by the evaluator from Heap.CurrentLoc at the raise
// site, not by the caller.
func NewType(pos *token.Position, format string, args ...any) *Signal {
	return &Signal{Kind: KindType, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func NewReference(pos *token.Position, format string, args ...any) *Signal {
	return &Signal{Kind: KindReference, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func NewSyntax(pos *token.Position, format string, args ...any) *Signal {
	return &Signal{Kind: KindSyntax, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func NewRange(pos *token.Position, format string, args ...any) *Signal {
	return &Signal{Kind: KindRange, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func NewInternal(format string, args ...any) *Signal {
	return &Signal{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// ErrorClassName returns the Error subclass name ("TypeError",
// "ReferenceError", ...) a diagnostic Signal materializes as.
func (s *Signal) ErrorClassName() string {
	switch s.Kind {
	case KindSyntax:
		return "SyntaxError"
	case KindReference:
		return "ReferenceError"
	case KindType:
		return "TypeError"
	case KindRange:
		return "RangeError"
	default:
		return "Error"
	}
}

// Materialize converts a typed-diagnostic Signal into the Value a user
// catch handler observes: an Error object of the matching class (spec
// §4.4). KindThrown signals already carry their catchable Value directly.
func Materialize(h *runtime.Heap, s *Signal) runtime.Value {
	if s.Kind == KindThrown {
		return s.Value
	}
	id := h.NewErrorObject(s.ErrorClassName(), s.Message)
	return runtime.RefValue(id)
}

// AsSignal extracts a *Signal from any error produced by the evaluator.
// A non-Signal error (should not happen once the evaluator is complete,
// but host functions can return plain errors) is wrapped as an internal
// diagnostic so it still propagates through the single failure channel.
func AsSignal(err error) *Signal {
	if err == nil {
		return nil
	}
	if s, ok := err.(*Signal); ok {
		return s
	}
	return NewInternal("%s", err.Error())
}
