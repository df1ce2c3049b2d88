package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssmixin"
	"github.com/yacobolo/cssmixin/internal/expr"
	"github.com/yacobolo/cssmixin/internal/sheet"
)

// errIssuesFound signals a failing exit code after issues were reported.
var errIssuesFound = errors.New("issues found")

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Expand stylesheet templates into CSS",
	Long: `Expand every ${...} helper call in the matched templates and write the
resulting CSS to the output directory. The .tmpl suffix is dropped from
output file names.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("source", "web/styles", "Source template directory")
	f.String("output-dir", "web/static/css", "Output directory for generated CSS")
	f.StringSlice("include", nil, "Glob patterns for templates to include (default **/*.css.tmpl)")
	f.Bool("minify", false, "Minify generated CSS")
	f.Bool("validate", true, "Check generated CSS for structural problems")
	f.Bool("dry-run", false, "Expand and check without writing files")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Bool("print-lines", true, "Show template lines with issues")
	f.Bool("print-linter-name", true, "Show (mixin) suffix on issues")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	ev := expr.NewEvaluator(cssmixin.New(buildMixinConfig()))

	result, err := sheet.Generate(config, ev)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBool("quiet", false)
	if !quiet {
		format := sheet.DetermineOutputFormat(getString("output-format", ""))
		if err := sheet.WriteOutput(cmd.OutOrStdout(), result, format, buildReportOptions()); err != nil {
			return err
		}
	}

	// Exit code logic - "Soft Gate" approach
	if getBool("strict", false) {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			return errIssuesFound
		}
	} else if result.ErrorCount() > 0 {
		// Default mode: only errors fail the build
		return errIssuesFound
	}

	return nil
}
