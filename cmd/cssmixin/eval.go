package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssmixin"
	"github.com/yacobolo/cssmixin/internal/expr"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Print the CSS produced by helper calls",
	Long: `Evaluate one or more helper calls with the configured canvas and
breakpoints and print the resulting CSS, one result per line.`,
	Example: `  cssmixin eval "fontRem(24, 34, 100)"
  cssmixin eval "media.sp('.pc { display: none; }')"
  cssmixin eval --list`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Bool("list", false, "List available helpers")
}

func runEval(cmd *cobra.Command, args []string) error {
	ev := expr.NewEvaluator(cssmixin.New(buildMixinConfig()))
	out := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("list"); list {
		fmt.Fprintln(out, strings.Join(ev.Names(), "\n"))
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("eval needs at least one expression (or --list)")
	}

	for _, src := range args {
		css, err := ev.Eval(src)
		if err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		fmt.Fprintln(out, css)
	}
	return nil
}
