package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
)

// Generate is the main entry point: it expands every template below
// config.SourceDir and writes the CSS below config.OutputDir.
//
// Problems inside templates are collected as issues rather than returned as
// errors. A file with error issues is still written, with the failing spans
// left verbatim, so the remaining output can be inspected.
func Generate(config Config, ev Evaluator) (*GenerateResult, error) {
	log := Logger()
	result := &GenerateResult{HelperUsage: make(map[string]int)}

	// 1. Scan template files
	files, stats, err := scanTemplates(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesDiscovered = stats.FilesDiscovered
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped
	log.Debug("found templates", "count", len(files), "skipped", stats.FilesSkipped)

	var m *minify.M
	if config.Minify {
		m = minify.New()
		m.AddFunc("text/css", mincss.Minify)
	}

	// 2. Expand, check and write each template
	for _, file := range files {
		if err := generateFile(config, ev, m, file, result); err != nil {
			return nil, err
		}
	}

	log.Info("generation complete",
		"files", result.FilesWritten,
		"expansions", result.Expansions,
		"errors", result.ErrorCount(),
		"warnings", result.WarningCount())
	return result, nil
}

func generateFile(config Config, ev Evaluator, m *minify.M, file string, result *GenerateResult) error {
	log := Logger().With("template", file)

	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	dst, err := outputPath(config.SourceDir, config.OutputDir, file)
	if err != nil {
		return err
	}
	if sameFile(dst, file) {
		result.Issues = append(result.Issues, issuef(file, nil, 1, 1,
			LinterIO, SeverityError, IssueOverwritesSelf, dst))
		return nil
	}

	exp := Expand(file, string(content), ev)
	result.Expansions += exp.Expansions
	for name, n := range exp.Helpers {
		result.HelperUsage[name] += n
	}
	result.Issues = append(result.Issues, exp.Issues...)

	out := exp.CSS
	if config.Validate {
		// Positions refer to the generated text, reported against the output.
		result.Issues = append(result.Issues, Validate(dst, out)...)
	}
	if m != nil {
		minified, err := m.String("text/css", out)
		if err != nil {
			log.Warn("minify failed, writing unminified output", "err", err)
		} else {
			out = minified
		}
	}

	result.Outputs = append(result.Outputs, dst)
	if config.DryRun {
		log.Debug("dry run, not writing", "output", dst)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(dst, []byte(ensureNewline(out)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	result.FilesWritten++
	log.Debug("wrote stylesheet", "output", dst, "expansions", exp.Expansions)
	return nil
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
