package sheet

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter handles formatting and outputting generation issues
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// ReportOptions controls how issues are printed.
type ReportOptions struct {
	UseColors       bool // Force colors on
	PrintLines      bool // Show the template line under each issue
	PrintLinterName bool // Append "(mixin)" style suffixes
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts ReportOptions) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts.UseColors),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// NO_COLOR opts out (https://no-color.org)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)

	// Sort issues by file, then line, then column
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(styleLocation, location, r.useColors),
		RenderStyle(severityStyle(issue.Severity), issue.Text, r.useColors),
		RenderStyle(styleLinter, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(styleCaret, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column,
// copying tabs from the source line so alignment survives tab expansion.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result GenerateResult) {
	total := len(result.Issues)
	errors := result.ErrorCount()
	warnings := result.WarningCount()

	fmt.Fprintln(r.w, "")

	if total == 0 {
		fmt.Fprintln(r.w, RenderStyle(styleClean, "0 issues.", r.useColors))
		return
	}

	header := fmt.Sprintf("%s (%s, %s):",
		pluralizeCount(total, "issue", "issues"),
		pluralizeCount(errors, "error", "errors"),
		pluralizeCount(warnings, "warning", "warnings"))
	if errors > 0 {
		header = RenderStyle(styleFailed, header, r.useColors)
	}
	fmt.Fprintln(r.w, header)

	// Group by linter
	linterCounts := make(map[string]int)
	for _, issue := range result.Issues {
		linterCounts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}
}

// PrintStatistics outputs generation statistics and helper usage
func (r *Reporter) PrintStatistics(result GenerateResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(styleHeading, "Stylesheet Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------")
	fmt.Fprintf(r.w, "Templates Found:   %d\n", result.FilesDiscovered)
	fmt.Fprintf(r.w, "Templates Skipped: %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Files Written:     %d\n", result.FilesWritten)
	fmt.Fprintf(r.w, "Expansions:        %d\n", result.Expansions)

	if len(result.HelperUsage) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(styleHeading, "Helper Usage", r.useColors))
	for _, hc := range sortedUsage(result.HelperUsage) {
		fmt.Fprintf(r.w, "  %-20s %d\n", hc.Name, hc.Count)
	}
}

// HelperCount is one row of the helper usage table.
type HelperCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// sortedUsage orders helpers by descending count, then name.
func sortedUsage(usage map[string]int) []HelperCount {
	out := make([]HelperCount, 0, len(usage))
	for name, count := range usage {
		out = append(out, HelperCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
