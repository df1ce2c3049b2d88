package sheet

// Issue represents a single problem found while generating, in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "mixin" or "csscheck"
	Text        string   `json:"Text"`        // "unknown helper \"fontEm\""
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the template with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/globals.css.tmpl"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 9 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Linter names
const (
	LinterMixin    = "mixin"
	LinterCSSCheck = "csscheck"
	LinterIO       = "io"
)

// Issue messages
const (
	IssueUnterminated   = "unterminated ${ expression"
	IssueEmptyExpr      = "empty ${} expression"
	IssueUnexpectedRBr  = "unexpected } with no matching {"
	IssueUnclosedBrace  = "unclosed { block"
	IssueOverwritesSelf = "output %s would overwrite its template"
)
