package sheet

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Validate tokenizes generated CSS and reports structural problems as
// warnings: unbalanced braces and grammar errors reported by the parser.
func Validate(filename, src string) []Issue {
	lines := strings.Split(src, "\n")
	issues := checkBraces(filename, src, lines)
	return append(issues, checkGrammar(filename, src, lines)...)
}

type position struct {
	line, col int
}

// checkBraces walks the token stream, so braces inside strings, comments and
// urls are ignored.
func checkBraces(filename, src string, lines []string) []Issue {
	var issues []Issue
	var open []position

	lexer := css.NewLexer(parse.NewInputString(src))
	pos := position{line: 1, col: 1}
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				issues = append(issues, newIssue(filename, lines, pos.line, pos.col,
					LinterCSSCheck, SeverityWarning, err.Error()))
			}
			break
		}

		switch tt {
		case css.LeftBraceToken:
			open = append(open, pos)
		case css.RightBraceToken:
			if len(open) == 0 {
				issues = append(issues, newIssue(filename, lines, pos.line, pos.col,
					LinterCSSCheck, SeverityWarning, IssueUnexpectedRBr))
			} else {
				open = open[:len(open)-1]
			}
		}
		pos = advance(pos, text)
	}

	for _, p := range open {
		issues = append(issues, newIssue(filename, lines, p.line, p.col,
			LinterCSSCheck, SeverityWarning, IssueUnclosedBrace))
	}
	return issues
}

// checkGrammar runs the stylesheet parser and reports the first grammar
// error it stops on.
func checkGrammar(filename, src string, lines []string) []Issue {
	p := css.NewParser(parse.NewInputString(src), false)
	for {
		gt, _, _ := p.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		err := p.Err()
		if err == nil || errors.Is(err, io.EOF) {
			return nil
		}
		line, col := 0, 0
		var perr *parse.Error
		if errors.As(err, &perr) {
			line, col = perr.Line, perr.Column
		}
		return []Issue{issuef(filename, lines, line, col,
			LinterCSSCheck, SeverityWarning, "css parse: %s", errorMessage(err))}
	}
}

func errorMessage(err error) string {
	var perr *parse.Error
	if errors.As(err, &perr) {
		return perr.Message
	}
	return err.Error()
}

// advance moves pos past text.
func advance(pos position, text []byte) position {
	for _, c := range string(text) {
		if c == '\n' {
			pos.line++
			pos.col = 1
			continue
		}
		pos.col++
	}
	return pos
}
