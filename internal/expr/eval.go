package expr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/cssmixin"
)

// helperFunc evaluates one binding. args are already parsed but not
// evaluated; nested calls are resolved through the Evaluator on demand.
type helperFunc func(e *Evaluator, args *arguments) (string, error)

// Evaluator resolves calls against a configured Mixin.
type Evaluator struct {
	mixin   *cssmixin.Mixin
	helpers map[string]helperFunc
}

// NewEvaluator returns an Evaluator bound to m. One media.<label> helper is
// registered for every breakpoint m knows about.
func NewEvaluator(m *cssmixin.Mixin) *Evaluator {
	e := &Evaluator{
		mixin:   m,
		helpers: make(map[string]helperFunc, len(builtins)+len(m.Breakpoints())),
	}
	for name, fn := range builtins {
		e.helpers[name] = fn
	}
	for _, label := range m.Breakpoints() {
		e.helpers["media."+string(label)] = mediaHelper(label)
	}
	return e
}

// Names lists every helper the Evaluator understands, sorted.
func (e *Evaluator) Names() []string {
	names := make([]string, 0, len(e.helpers))
	for name := range e.helpers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Eval parses and evaluates src.
func (e *Evaluator) Eval(src string) (string, error) {
	call, err := Parse(src)
	if err != nil {
		return "", err
	}
	return e.EvalCall(call)
}

// EvalCall evaluates a parsed call.
func (e *Evaluator) EvalCall(call *Call) (string, error) {
	name := call.Path()
	fn, ok := e.helpers[name]
	if !ok {
		return "", errorAt(call.Pos, fmt.Errorf("%w %q", ErrUnknownHelper, name))
	}
	out, err := fn(e, &arguments{eval: e, call: call})
	if err != nil {
		return "", errorAt(call.Pos, err)
	}
	return strings.TrimSpace(out), nil
}

// arguments gives typed, position-aware access to a call's arguments.
// Missing trailing arguments and undefined read as null; only undefined
// and missing arguments take a parameter's default.
type arguments struct {
	eval *Evaluator
	call *Call
}

func (a *arguments) get(i int) *Value {
	if i < 0 || i >= len(a.call.Args) {
		return nil
	}
	return a.call.Args[i]
}

func (a *arguments) present(i int) bool {
	return i < len(a.call.Args) && !a.call.Args[i].Undefined
}

func (a *arguments) isNull(i int) bool {
	return a.get(i).Nullish()
}

func (a *arguments) max(n int) error {
	if len(a.call.Args) > n {
		return fmt.Errorf("%w: %s takes at most %d arguments, got %d",
			ErrArgument, a.call.Path(), n, len(a.call.Args))
	}
	return nil
}

func (a *arguments) mismatch(i int, want string) error {
	v := a.get(i)
	err := fmt.Errorf("%w: %s argument %d must be %s, got %s",
		ErrArgument, a.call.Path(), i+1, want, v.Kind())
	if v != nil {
		return errorAt(v.Pos, err)
	}
	return err
}

func (a *arguments) number(i int) (float64, error) {
	v := a.get(i)
	if v == nil || v.Number == nil {
		return 0, a.mismatch(i, "a number")
	}
	return *v.Number, nil
}

func (a *arguments) optNumber(i int) (*float64, error) {
	if a.isNull(i) {
		return nil, nil
	}
	n, err := a.number(i)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (a *arguments) str(i int) (string, error) {
	v := a.get(i)
	if v == nil || v.String == nil {
		return "", a.mismatch(i, "a string")
	}
	return string(*v.String), nil
}

func (a *arguments) optStr(i int) (string, error) {
	if a.isNull(i) {
		return "", nil
	}
	return a.str(i)
}

func (a *arguments) boolean(i int) (bool, error) {
	v := a.get(i)
	if v == nil || v.Bool == nil {
		return false, a.mismatch(i, "a boolean")
	}
	return bool(*v.Bool), nil
}

// dimension accepts a number (pixels) or a string with its own unit.
func (a *arguments) dimension(i int) (cssmixin.Dimension, error) {
	v := a.get(i)
	switch {
	case v != nil && v.Number != nil:
		return cssmixin.Px(*v.Number), nil
	case v != nil && v.String != nil:
		return cssmixin.Len(string(*v.String)), nil
	}
	return cssmixin.Dimension{}, a.mismatch(i, "a number or string")
}

// style accepts CSS text or a nested helper call.
func (a *arguments) style(i int) (cssmixin.Style, error) {
	v := a.get(i)
	switch {
	case v != nil && v.String != nil:
		return cssmixin.Style(*v.String), nil
	case v != nil && v.Call != nil:
		out, err := a.eval.EvalCall(v.Call)
		return cssmixin.Style(out), err
	}
	return "", a.mismatch(i, "a string or helper call")
}

func (a *arguments) object(i int) (*Object, error) {
	v := a.get(i)
	if v == nil || v.Object == nil {
		return nil, a.mismatch(i, "an object")
	}
	return v.Object, nil
}

// stringList reads an array of strings stored under key. A missing key or
// null reads as an empty list.
func stringList(path string, o *Object, key string) ([]string, error) {
	v := o.Get(key)
	if v.Nullish() {
		return nil, nil
	}
	if v.Array == nil {
		return nil, errorAt(v.Pos, fmt.Errorf("%w: %s %s must be an array, got %s",
			ErrArgument, path, key, v.Kind()))
	}
	out := make([]string, 0, len(v.Array.Items))
	for _, item := range v.Array.Items {
		if item.String == nil {
			return nil, errorAt(item.Pos, fmt.Errorf("%w: %s %s must contain strings, got %s",
				ErrArgument, path, key, item.Kind()))
		}
		out = append(out, string(*item.String))
	}
	return out, nil
}
