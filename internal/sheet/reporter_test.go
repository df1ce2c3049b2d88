package sheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  ${fontEm(12)}",
			column:     5,
			want:       "    ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tcolor: ${x()}",
			column:     10,
			want:       "\t\t       ^",
		},
		{
			name:       "start of line",
			sourceLine: "${x()}",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reporter.buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func sampleResult() *GenerateResult {
	return &GenerateResult{
		FilesDiscovered: 3,
		FilesSkipped:    1,
		FilesWritten:    2,
		Expansions:      4,
		HelperUsage:     map[string]int{"fontRem": 3, "size": 1},
		Outputs:         []string{"css/a.css", "css/b.css"},
		Issues: []Issue{
			{
				FromLinter:  LinterCSSCheck,
				Text:        IssueUnclosedBrace,
				Severity:    SeverityWarning,
				SourceLines: []string{"b {"},
				Pos:         IssuePos{Filename: "css/b.css", Line: 1, Column: 3},
			},
			{
				FromLinter:  LinterMixin,
				Text:        `unknown helper "fontEm"`,
				Severity:    SeverityError,
				SourceLines: []string{"  ${fontEm(12)}"},
				Pos:         IssuePos{Filename: "a.css.tmpl", Line: 2, Column: 5},
			},
		},
	}
}

func TestReporterPrintIssues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	r := NewReporter(&buf, ReportOptions{PrintLines: true, PrintLinterName: true})
	require.False(t, r.UseColors())

	result := sampleResult()
	r.PrintIssues(result.Issues)

	want := "a.css.tmpl:2:5: unknown helper \"fontEm\" (mixin)\n" +
		"\t  ${fontEm(12)}\n" +
		"\t    ^\n" +
		"css/b.css:1:3: unclosed { block (csscheck)\n" +
		"\tb {\n" +
		"\t  ^\n"
	assert.Equal(t, want, buf.String())

	// The caller's slice keeps its order.
	assert.Equal(t, LinterCSSCheck, result.Issues[0].FromLinter)
}

func TestReporterPrintSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewReporter(&buf, ReportOptions{}).PrintSummary(*sampleResult())
	assert.Equal(t, "\n2 issues (1 error, 1 warning):\n* csscheck: 1\n* mixin: 1\n", buf.String())

	buf.Reset()
	NewReporter(&buf, ReportOptions{}).PrintSummary(GenerateResult{})
	assert.Equal(t, "\n0 issues.\n", buf.String())
}

func TestReporterPrintStatistics(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewReporter(&buf, ReportOptions{}).PrintStatistics(*sampleResult())
	out := buf.String()
	assert.Contains(t, out, "Stylesheet Statistics")
	assert.Contains(t, out, "Files Written:     2")
	assert.Contains(t, out, "Expansions:        4")
	assert.Regexp(t, `(?s)fontRem\s+3.*size\s+1`, out)
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(true))
	assert.False(t, ShouldUseColors(false))

	t.Setenv("NO_COLOR", "")
	assert.True(t, ShouldUseColors(false))
}

func TestSeverityStyle(t *testing.T) {
	assert.Equal(t, styleError, severityStyle(SeverityError))
	assert.Equal(t, styleWarning, severityStyle(SeverityWarning))
	assert.Equal(t, "plain", RenderStyle(styleFailed, "plain", false))
}
