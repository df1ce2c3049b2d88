package sheet

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag string
		want OutputFormat
	}{
		{flag: "", want: OutputIssues},
		{flag: "issues", want: OutputIssues},
		{flag: "summary", want: OutputSummary},
		{flag: "full", want: OutputFull},
		{flag: "json", want: OutputJSON},
		{flag: "xml", want: OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var got JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "1", got.Version)
	assert.Equal(t, "2026-10-19T12:00:00Z", got.Timestamp)
	assert.Equal(t, JSONSummary{
		TotalIssues:     2,
		Errors:          1,
		Warnings:        1,
		FilesDiscovered: 3,
		FilesSkipped:    1,
		FilesWritten:    2,
		Expansions:      4,
	}, got.Summary)
	assert.Equal(t, []HelperCount{{Name: "fontRem", Count: 3}, {Name: "size", Count: 1}}, got.HelperUsage)
	require.Len(t, got.Issues, 2)
	assert.Equal(t, "  ${fontEm(12)}", got.Issues[1].Source)
}

func TestWriteJSONEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &GenerateResult{}))
	assert.Contains(t, buf.String(), `"issues": []`)
	assert.Contains(t, buf.String(), `"outputs": []`)
	assert.Contains(t, buf.String(), `"helper_usage": []`)
}

func TestWriteOutputFormats(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	opts := ReportOptions{PrintLinterName: true}

	var issues, summary, full bytes.Buffer
	require.NoError(t, WriteOutput(&issues, sampleResult(), OutputIssues, opts))
	require.NoError(t, WriteOutput(&summary, sampleResult(), OutputSummary, opts))
	require.NoError(t, WriteOutput(&full, sampleResult(), OutputFull, opts))

	assert.Contains(t, issues.String(), "(mixin)")
	assert.NotContains(t, issues.String(), "Stylesheet Statistics")

	assert.NotContains(t, summary.String(), "(mixin)")
	assert.Contains(t, summary.String(), "Stylesheet Statistics")

	assert.Contains(t, full.String(), "(mixin)")
	assert.Contains(t, full.String(), "Stylesheet Statistics")
}
