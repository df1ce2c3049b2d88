package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks template discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files skipped by .gitignore
}

// loadGitIgnore loads <sourceDir>/.gitignore.
// Gracefully degrades if the file doesn't exist.
func loadGitIgnore(sourceDir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(sourceDir, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// scanTemplates finds all template files matching includes below sourceDir.
// Results are deduplicated and sorted so output order is stable.
func scanTemplates(sourceDir string, includes []string) ([]string, ScanStats, error) {
	var stats ScanStats
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	gi := loadGitIgnore(sourceDir)
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(gi, sourceDir, match) {
				stats.FilesSkipped++
				Logger().Debug("skipping ignored template", "path", match)
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// shouldSkipFile reports whether path is excluded by the source directory's
// .gitignore. Paths are matched relative to sourceDir.
func shouldSkipFile(gi *ignore.GitIgnore, sourceDir, path string) bool {
	if gi == nil {
		return false
	}
	rel, err := filepath.Rel(sourceDir, path)
	if err != nil {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(rel))
}

// outputPath maps a template below sourceDir to its location below
// outputDir, dropping the template suffix.
func outputPath(sourceDir, outputDir, path string) (string, error) {
	rel, err := filepath.Rel(sourceDir, path)
	if err != nil {
		return "", fmt.Errorf("relative path for %s: %w", path, err)
	}
	ext := filepath.Ext(rel)
	if ext == TemplateSuffix {
		rel = rel[:len(rel)-len(ext)]
	}
	return filepath.Join(outputDir, rel), nil
}
