// Package sheet expands stylesheet templates that interpolate mixin calls
// with ${...} into plain CSS files.
package sheet

// Config holds generator configuration
type Config struct {
	SourceDir string   // "web/styles"
	OutputDir string   // "web/static/css"
	Includes  []string // ["**/*.css.tmpl"]
	Minify    bool     // Minify generated CSS
	Validate  bool     // Tokenize generated CSS and report structural problems
	DryRun    bool     // Expand and validate without writing files
}

// TemplateSuffix is stripped from template file names to form output names.
const TemplateSuffix = ".tmpl"

// DefaultIncludes are used when Config.Includes is empty.
var DefaultIncludes = []string{"**/*.css.tmpl"}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesDiscovered int            // Files matched by include patterns
	FilesScanned    int            // Files expanded (after filtering)
	FilesSkipped    int            // Files skipped by .gitignore
	FilesWritten    int            // Output files written
	Expansions      int            // ${...} spans successfully expanded
	HelperUsage     map[string]int // Expansions per helper name
	Outputs         []string       // Paths of written (or, in dry runs, planned) files
	Issues          []Issue
}

// ErrorCount returns the number of error-severity issues.
func (r *GenerateResult) ErrorCount() int {
	return r.countSeverity(SeverityError)
}

// WarningCount returns the number of warning-severity issues.
func (r *GenerateResult) WarningCount() int {
	return r.countSeverity(SeverityWarning)
}

func (r *GenerateResult) countSeverity(severity string) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows generation statistics and helper usage only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
