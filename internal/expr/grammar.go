// Package expr parses and evaluates mixin call expressions such as
// fontRem(24, 34, 100) or media.sp(".pc { display: none; }").
package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`},
		{Name: "Ident", Pattern: `[A-Za-z_$][A-Za-z0-9_$]*`},
		{Name: "Punct", Pattern: `[(){}\[\],.:]`},
	})

	callParser = participle.MustBuild[Call](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

// Call is a helper invocation. Name holds the dotted path, e.g. ["media", "sp"].
type Call struct {
	Pos  lexer.Position `parser:""`
	Name []string       `parser:"@Ident ( '.' @Ident )*"`
	Args []*Value       `parser:"'(' ( @@ ( ',' @@ )* ','? )? ')'"`
}

// Path returns the dotted helper name.
func (c *Call) Path() string {
	return strings.Join(c.Name, ".")
}

// Value is a literal argument or a nested call.
type Value struct {
	Pos       lexer.Position `parser:""`
	Null      bool           `parser:"  @'null'"`
	Undefined bool           `parser:"| @'undefined'"`
	Bool      *Boolean       `parser:"| @( 'true' | 'false' )"`
	Number    *float64       `parser:"| @Number"`
	String    *Str           `parser:"| @String"`
	Array     *Array         `parser:"| @@"`
	Object    *Object        `parser:"| @@"`
	Call      *Call          `parser:"| @@"`
}

// Nullish reports whether v is null, undefined or absent.
func (v *Value) Nullish() bool {
	return v == nil || v.Null || v.Undefined
}

// Truthy follows JavaScript truthiness: null, undefined, false, 0 and ''
// are falsy.
func (v *Value) Truthy() bool {
	switch {
	case v.Nullish():
		return false
	case v.Bool != nil:
		return bool(*v.Bool)
	case v.Number != nil:
		return *v.Number != 0
	case v.String != nil:
		return *v.String != ""
	default:
		return true
	}
}

// Kind names the value's type for error messages.
func (v *Value) Kind() string {
	switch {
	case v == nil, v.Undefined:
		return "undefined"
	case v.Null:
		return "null"
	case v.Bool != nil:
		return "boolean"
	case v.Number != nil:
		return "number"
	case v.String != nil:
		return "string"
	case v.Array != nil:
		return "array"
	case v.Object != nil:
		return "object"
	case v.Call != nil:
		return "call"
	default:
		return "unknown"
	}
}

// Array is a bracketed list of values.
type Array struct {
	Items []*Value `parser:"'[' ( @@ ( ',' @@ )* ','? )? ']'"`
}

// Object is a braced list of key: value entries.
type Object struct {
	Entries []*Entry `parser:"'{' ( @@ ( ',' @@ )* ','? )? '}'"`
}

// Get returns the value stored under key, or nil.
func (o *Object) Get(key string) *Value {
	for _, e := range o.Entries {
		if string(e.Key) == key {
			return e.Value
		}
	}
	return nil
}

// Entry is a single object member. Keys may be bare or quoted.
type Entry struct {
	Key   Str    `parser:"@( Ident | String )"`
	Value *Value `parser:"':' @@"`
}

// Boolean captures true/false keywords.
type Boolean bool

// Capture implements participle.Capture.
func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}

// Str captures a string literal in either quote style, or a bare identifier.
type Str string

// Capture implements participle.Capture.
func (s *Str) Capture(values []string) error {
	raw := strings.Join(values, "")
	if len(raw) < 2 || (raw[0] != '"' && raw[0] != '\'') {
		*s = Str(raw)
		return nil
	}
	out, err := unquote(raw)
	if err != nil {
		return err
	}
	*s = Str(out)
	return nil
}

func unquote(raw string) (string, error) {
	quote := raw[0]
	body := raw[1 : len(raw)-1]
	var b strings.Builder
	for body != "" {
		r, _, tail, err := strconv.UnquoteChar(body, quote)
		if err != nil {
			return "", fmt.Errorf("invalid string literal %s: %w", raw, err)
		}
		b.WriteRune(r)
		body = tail
	}
	return b.String(), nil
}

// Parse parses a single call expression.
func Parse(src string) (*Call, error) {
	call, err := callParser.ParseString("", src)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return call, nil
}

func wrapParseError(err error) error {
	if perr, ok := err.(participle.Error); ok {
		return &Error{Pos: perr.Position(), Err: fmt.Errorf("%w: %s", ErrSyntax, perr.Message())}
	}
	return fmt.Errorf("%w: %v", ErrSyntax, err)
}
