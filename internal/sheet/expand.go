package sheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yacobolo/cssmixin/internal/expr"
)

// Evaluator evaluates a single mixin call expression.
type Evaluator interface {
	Eval(src string) (string, error)
}

// Expansion is the result of expanding one template.
type Expansion struct {
	CSS        string
	Expansions int
	Helpers    map[string]int
	Issues     []Issue
}

// Expand replaces every ${...} span in src with the evaluated expression.
// Spans that fail to evaluate are reported and left in place.
func Expand(filename, src string, ev Evaluator) Expansion {
	result := Expansion{Helpers: make(map[string]int)}
	lines := strings.Split(src, "\n")

	var out strings.Builder
	out.Grow(len(src))

	rest := src
	offset := 0
	for {
		idx := strings.Index(rest, "${")
		if idx < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:idx])
		start := offset + idx
		line, col := lineCol(src, start)

		end := matchClose(rest[idx+2:])
		if end < 0 {
			result.Issues = append(result.Issues,
				newIssue(filename, lines, line, col, LinterMixin, SeverityError, IssueUnterminated))
			out.WriteString(rest[idx:])
			break
		}

		span := rest[idx : idx+2+end+1]
		body := span[2 : len(span)-1]
		if strings.TrimSpace(body) == "" {
			result.Issues = append(result.Issues,
				newIssue(filename, lines, line, col, LinterMixin, SeverityError, IssueEmptyExpr))
			out.WriteString(span)
		} else if css, err := ev.Eval(body); err != nil {
			eLine, eCol := errorPosition(err, line, col+2)
			result.Issues = append(result.Issues,
				newIssue(filename, lines, eLine, eCol, LinterMixin, SeverityError, errorText(err)))
			out.WriteString(span)
		} else {
			out.WriteString(css)
			result.Expansions++
			if name := helperName(body); name != "" {
				result.Helpers[name]++
			}
		}

		consumed := idx + len(span)
		rest = rest[consumed:]
		offset += consumed
	}

	result.CSS = out.String()
	return result
}

// matchClose returns the index of the } closing an expression body, skipping
// braces inside nested objects and string literals. It returns -1 when the
// body never closes.
func matchClose(s string) int {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// lineCol converts a byte offset in src to a 1-based line and column.
func lineCol(src string, offset int) (int, int) {
	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return line, col
}

// errorPosition maps a position inside an expression onto the template.
// bodyLine/bodyCol locate the first byte of the expression body.
func errorPosition(err error, bodyLine, bodyCol int) (int, int) {
	var perr *expr.Error
	if !errors.As(err, &perr) || perr.Pos.Line == 0 {
		return bodyLine, bodyCol - 2
	}
	if perr.Pos.Line == 1 {
		return bodyLine, bodyCol + perr.Pos.Column - 1
	}
	return bodyLine + perr.Pos.Line - 1, perr.Pos.Column
}

// errorText strips the embedded position from expression errors since the
// issue already carries one.
func errorText(err error) string {
	var perr *expr.Error
	if errors.As(err, &perr) {
		return perr.Err.Error()
	}
	return err.Error()
}

// helperName extracts the dotted helper name at the start of body.
func helperName(body string) string {
	body = strings.TrimSpace(body)
	if i := strings.IndexByte(body, '('); i > 0 {
		return strings.TrimSpace(body[:i])
	}
	return ""
}

func newIssue(filename string, lines []string, line, col int, linter, severity, text string) Issue {
	issue := Issue{
		FromLinter: linter,
		Text:       text,
		Severity:   severity,
		Pos:        IssuePos{Filename: filename, Line: line, Column: col},
	}
	if line >= 1 && line <= len(lines) {
		issue.SourceLines = []string{lines[line-1]}
	}
	return issue
}

func issuef(filename string, lines []string, line, col int, linter, severity, format string, args ...any) Issue {
	return newIssue(filename, lines, line, col, linter, severity, fmt.Sprintf(format, args...))
}
