// interpreter.go — the evaluator and its public entry points.
//
// EXECUTION & SCOPING
// -------------------
// Programs evaluate against an Env: a fixed 26-slot table mapping the
// lowercase letters to array values. The Interpreter owns one
// persistent Env and offers two ways in:
//   - EvalSource: ephemeral — runs against a snapshot of the
//     persistent env, so assignments do not leak back.
//   - EvalPersistentSource: REPL-style — assignments update the shared
//     env. Calls are serialized by the interpreter's mutex, which is
//     all the exclusion the tiny fixed table needs.
//
// Evaluate is the transport-facing boundary: one source line in, one
// formatted string (or wrapped error) out. The core performs no I/O.
//
// Dyadic operands evaluate right before left, consistent with the
// language's right-to-left reading.

package jay

import (
	"fmt"
	"sync"
)

// Env is the 26-slot variable table. A slot holds no value until its
// first assignment.
type Env struct {
	slots   [26]*Array
	defined [26]bool
}

// NewEnv returns an empty environment.
func NewEnv() *Env { return &Env{} }

func slotIndex(name rune) int { return int(name - 'a') }

// Get returns the value bound to name, or an UndefinedVariable error.
func (e *Env) Get(name rune) (*Array, error) {
	i := slotIndex(name)
	if i < 0 || i >= 26 || !e.defined[i] {
		return nil, &UndefinedVariable{Name: name}
	}
	return e.slots[i], nil
}

// Define binds name to v, replacing any previous binding.
func (e *Env) Define(name rune, v *Array) {
	i := slotIndex(name)
	e.slots[i] = v
	e.defined[i] = true
}

// Snapshot returns an independent copy of the bindings. Arrays are
// never mutated in place, so sharing the stored values is safe.
func (e *Env) Snapshot() *Env {
	out := &Env{}
	out.slots = e.slots
	out.defined = e.defined
	return out
}

// Interpreter evaluates expressions against a persistent environment.
type Interpreter struct {
	mu     sync.Mutex
	Global *Env
}

// NewInterpreter returns an interpreter with an empty environment.
func NewInterpreter() *Interpreter {
	return &Interpreter{Global: NewEnv()}
}

// EvalSource parses and evaluates src against a snapshot of the
// persistent environment. Global state is left untouched.
func (ip *Interpreter) EvalSource(src string) (*Array, error) {
	ip.mu.Lock()
	env := ip.Global.Snapshot()
	ip.mu.Unlock()
	return evalIn(src, env)
}

// EvalPersistentSource parses and evaluates src against the persistent
// environment; assignments survive into later calls.
func (ip *Interpreter) EvalPersistentSource(src string) (*Array, error) {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	return evalIn(src, ip.Global)
}

// Evaluate is the core boundary function: it evaluates src
// persistently and returns the formatted rendering of the result. On
// failure the error carries a caret snippet when the failure has a
// source offset.
func (ip *Interpreter) Evaluate(src string) (string, error) {
	v, err := ip.EvalPersistentSource(src)
	if err != nil {
		return "", WrapErrorWithSource(err, src)
	}
	return FormatValue(v), nil
}

func evalIn(src string, env *Env) (*Array, error) {
	ast, err := ParseResolved(src)
	if err != nil {
		return nil, err
	}
	return eval(ast, env)
}

// eval walks the resolved tree depth-first.
func eval(n Node, env *Env) (*Array, error) {
	switch t := n.(type) {
	case *Literal:
		return t.Value, nil

	case *Ident:
		return env.Get(t.Name)

	case *Assign:
		v, err := eval(t.Right, env)
		if err != nil {
			return nil, err
		}
		env.Define(t.Name, v)
		return v, nil

	case *Monad:
		w, err := eval(t.Right, env)
		if err != nil {
			return nil, err
		}
		return applyMonad(t.Verb, w)

	case *Dyad:
		// Right before left: the right-hand side is conceptually
		// already a finished value by the time the verb's left
		// argument is read.
		w, err := eval(t.Right, env)
		if err != nil {
			return nil, err
		}
		a, err := eval(t.Left, env)
		if err != nil {
			return nil, err
		}
		return applyDyad(t.Verb, a, w)

	default:
		// An Ambiguous node here means the resolver was skipped.
		return nil, fmt.Errorf("internal: unresolved node %T reached the evaluator", n)
	}
}
