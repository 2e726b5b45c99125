package report

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/DrSkyle/qstr/pkg/sys/intern"
)

// Filter selects dump entries with a CEL expression over the variables
// handle, len, hash, static and str, for example:
//
//	static == false && str.startsWith("__")
type Filter struct {
	expr string
	prg  cel.Program
}

var filterEnv = func() *cel.Env {
	env, err := cel.NewEnv(
		cel.Variable("handle", cel.UintType),
		cel.Variable("len", cel.IntType),
		cel.Variable("hash", cel.UintType),
		cel.Variable("static", cel.BoolType),
		cel.Variable("str", cel.StringType),
	)
	if err != nil {
		panic(err)
	}
	return env
}()

// CompileFilter compiles expr. It must evaluate to a bool.
func CompileFilter(expr string) (*Filter, error) {
	ast, issues := filterEnv.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("filter %q: %w", expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter %q: result is %s, want bool", expr, ast.OutputType())
	}
	prg, err := filterEnv.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", expr, err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

// Match reports whether e satisfies the filter.
func (f *Filter) Match(e intern.Entry) (bool, error) {
	out, _, err := f.prg.Eval(map[string]any{
		"handle": uint64(e.Handle),
		"len":    int64(e.Len),
		"hash":   uint64(e.Hash),
		"static": e.Static,
		"str":    e.Str,
	})
	if err != nil {
		return false, fmt.Errorf("filter %q on handle %d: %w", f.expr, e.Handle, err)
	}
	match, _ := out.Value().(bool)
	return match, nil
}

// Apply returns the entries that match. A nil filter keeps everything.
func (f *Filter) Apply(entries []intern.Entry) ([]intern.Entry, error) {
	if f == nil {
		return entries, nil
	}
	var out []intern.Entry
	for _, e := range entries {
		ok, err := f.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}
