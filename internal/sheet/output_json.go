package sheet

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version     string        `json:"version"`
	Timestamp   string        `json:"timestamp"`
	Summary     JSONSummary   `json:"summary"`
	Outputs     []string      `json:"outputs"`
	Issues      []JSONIssue   `json:"issues"`
	HelperUsage []HelperCount `json:"helper_usage"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues     int `json:"total_issues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	FilesDiscovered int `json:"files_discovered"`
	FilesSkipped    int `json:"files_skipped"`
	FilesWritten    int `json:"files_written"`
	Expansions      int `json:"expansions"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// jsonSchemaVersion is bumped when the JSON layout changes incompatibly.
const jsonSchemaVersion = "1"

// now is replaced in tests.
var now = time.Now

// WriteJSON writes the generation result as JSON
func WriteJSON(w io.Writer, result *GenerateResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// buildJSONOutput converts GenerateResult to JSONOutput
func buildJSONOutput(result *GenerateResult) JSONOutput {
	issues := make([]JSONIssue, 0, len(result.Issues))
	for _, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		issues = append(issues, ji)
	}

	outputs := result.Outputs
	if outputs == nil {
		outputs = []string{}
	}

	return JSONOutput{
		Version:   jsonSchemaVersion,
		Timestamp: now().UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:     len(result.Issues),
			Errors:          result.ErrorCount(),
			Warnings:        result.WarningCount(),
			FilesDiscovered: result.FilesDiscovered,
			FilesSkipped:    result.FilesSkipped,
			FilesWritten:    result.FilesWritten,
			Expansions:      result.Expansions,
		},
		Outputs:     outputs,
		Issues:      issues,
		HelperUsage: sortedUsage(result.HelperUsage),
	}
}
