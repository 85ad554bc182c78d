// Package trace replays operation scripts against an integer array and
// records the observable state after every step.
package trace

import (
	"errors"
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/cwbudde/algo-container/container/dynarray"
)

var (
	ErrUnknownOp       = errors.New("trace: unknown op")
	ErrInvalidPosition = errors.New("trace: invalid position")
)

// Op is a single scripted operation. Index is the position for insert,
// erase, set and at. Value is the pushed or stored element for push, insert
// and set, and the target size for reserve and resize. Fields an op does not
// use are ignored.
type Op struct {
	Op    string `json:"op"`
	Index int    `json:"index,omitempty"`
	Value int    `json:"value,omitempty"`
}

func (o Op) String() string {
	switch o.Op {
	case "push":
		return fmt.Sprintf("push %d", o.Value)
	case "insert", "set":
		return fmt.Sprintf("%s %d %d", o.Op, o.Index, o.Value)
	case "erase", "at":
		return fmt.Sprintf("%s %d", o.Op, o.Index)
	case "reserve", "resize":
		return fmt.Sprintf("%s %d", o.Op, o.Value)
	default:
		return o.Op
	}
}

// Script is the YAML form accepted by ParseScript:
//
//	reserve: 2
//	ops:
//	  - {op: push, value: 1}
//	  - {op: insert, index: 0, value: 99}
//	  - {op: at, index: 5}
type Script struct {
	Reserve int  `json:"reserve,omitempty"`
	Ops     []Op `json:"ops"`
}

// Row is the state of the array after one step.
type Row struct {
	Step     int
	Op       string
	Result   string
	Size     int
	Cap      int
	Realloc  bool
	Contents string
}

var knownOps = map[string]bool{
	"push": true, "pop": true, "insert": true, "erase": true,
	"reserve": true, "resize": true, "clear": true, "set": true, "at": true,
}

// ParseScript decodes a YAML script and validates its op names.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Script{}, fmt.Errorf("trace: parse script: %w", err)
	}
	if s.Reserve < 0 {
		return Script{}, fmt.Errorf("trace: negative reserve %d", s.Reserve)
	}
	for i := range s.Ops {
		op := strings.ToLower(strings.TrimSpace(s.Ops[i].Op))
		if !knownOps[op] {
			return Script{}, fmt.Errorf("%w %q at step %d", ErrUnknownOp, s.Ops[i].Op, i+1)
		}
		s.Ops[i].Op = op
	}
	return s, nil
}

// Growth pushes 0..n-1 onto an empty array and returns one row per push.
func Growth(n int, opts ...dynarray.Option) ([]Row, error) {
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = Op{Op: "push", Value: i}
	}
	return Replay(Script{Ops: ops}, opts...)
}

// Replay runs s against a fresh array. The first row shows the initial
// state. Recoverable failures (checked access out of range, allocation
// refused) are recorded in the row's Result and the replay continues;
// positions that would violate an operation's contract abort the replay.
func Replay(s Script, opts ...dynarray.Option) ([]Row, error) {
	a, err := dynarray.WithCapacity[int](s.Reserve, opts...)
	if err != nil {
		return nil, fmt.Errorf("trace: reserve %d: %w", s.Reserve, err)
	}

	rows := make([]Row, 0, len(s.Ops)+1)
	rows = append(rows, snapshot(a, 0, "init", "", false))

	for i, op := range s.Ops {
		step := i + 1
		before := a.Cap()
		result, err := apply(a, op)
		if err != nil {
			return rows, fmt.Errorf("step %d (%s): %w", step, op, err)
		}
		rows = append(rows, snapshot(a, step, op.String(), result, a.Cap() != before))
	}
	return rows, nil
}

func apply(a *dynarray.Array[int], op Op) (string, error) {
	var err error
	switch op.Op {
	case "push":
		err = a.PushBack(op.Value)
	case "pop":
		if a.IsEmpty() {
			return "", fmt.Errorf("%w: pop on empty array", ErrInvalidPosition)
		}
		a.PopBack()
	case "insert":
		if op.Index < 0 || op.Index > a.Len() {
			return "", fmt.Errorf("%w: insert at %d, size %d", ErrInvalidPosition, op.Index, a.Len())
		}
		_, err = a.Insert(op.Index, op.Value)
	case "erase":
		if op.Index < 0 || op.Index >= a.Len() {
			return "", fmt.Errorf("%w: erase at %d, size %d", ErrInvalidPosition, op.Index, a.Len())
		}
		a.Erase(op.Index)
	case "set":
		if op.Index < 0 || op.Index >= a.Len() {
			return "", fmt.Errorf("%w: set at %d, size %d", ErrInvalidPosition, op.Index, a.Len())
		}
		a.Set(op.Index, op.Value)
	case "reserve", "resize":
		if op.Value < 0 {
			return "", fmt.Errorf("%w: %s to %d", ErrInvalidPosition, op.Op, op.Value)
		}
		if op.Op == "reserve" {
			err = a.Reserve(op.Value)
		} else {
			err = a.Resize(op.Value)
		}
	case "clear":
		a.Clear()
	case "at":
		v, err := a.At(op.Index)
		if err != nil {
			return err.Error(), nil
		}
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
	}
	if err != nil {
		return err.Error(), nil
	}
	return "", nil
}

func snapshot(a *dynarray.Array[int], step int, op, result string, realloc bool) Row {
	return Row{
		Step:     step,
		Op:       op,
		Result:   result,
		Size:     a.Len(),
		Cap:      a.Cap(),
		Realloc:  realloc,
		Contents: a.String(),
	}
}
