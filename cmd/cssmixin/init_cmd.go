package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssmixin.yaml config file",
	Long:  `Create a .cssmixin.yaml configuration file in the current directory with the reference design settings.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = ".cssmixin.yaml"
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# cssmixin configuration

verbose: false

# Design canvas per breakpoint mode. vwsp()/vwpc()/fontVW() convert pixel
# values on these canvases to viewport units.
sp:
  canvas-width: 750
  breakpoint: 767
pc:
  canvas-width: 1440
  breakpoint: 768

# Media query per label; each label becomes a media.<label>() helper.
# Derived from the breakpoints above while this stays commented out:
# setting it pins every query, breakpoint overrides included.
# media-queries:
#   sp: "max-width: 767px"
#   pc: "min-width: 768px"
#   tablet: "(min-width: 768px) and (max-width: 1023px)"

generate:
  source: web/styles
  output-dir: web/static/css
  include:
    - "**/*.css.tmpl"
  minify: false
  validate: true

output-format: issues      # issues | summary | full | json
strict: false
print-lines: true
print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
