package sheet

import (
	"fmt"
	"io"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to OutputIssues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch OutputFormat(formatFlag) {
	case OutputSummary:
		return OutputSummary
	case OutputFull:
		return OutputFull
	case OutputJSON:
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the generation result in the specified format
func WriteOutput(w io.Writer, result *GenerateResult, format OutputFormat, opts ReportOptions) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
		return nil

	case OutputSummary:
		reporter := NewReporter(w, opts)
		reporter.PrintStatistics(*result)
		reporter.PrintSummary(*result)

	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintStatistics(*result)
		reporter.PrintSummary(*result)

	default:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}
