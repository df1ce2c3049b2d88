package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssmixin",
	Short: "Expand mixin helpers in stylesheet templates",
	Long: `Stylesheet templates interpolate helpers with ${...}:

  body { ${fontRem(24, 34, 100)} }
  ${media.sp('.pc { display: none; }')}

cssmixin expands every template into plain CSS using the design canvas and
breakpoints from .cssmixin.yaml.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".cssmixin.yaml", "Config file path")
	pf.Float64("sp-canvas-width", 750, "Design canvas width of the sp mode in px")
	pf.Float64("pc-canvas-width", 1440, "Design canvas width of the pc mode in px")
	pf.Int("sp-breakpoint", 767, "Largest viewport width of the sp mode in px")
	pf.Int("pc-breakpoint", 768, "Smallest viewport width of the pc mode in px")

	// Flags of the default command live on root too.
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
