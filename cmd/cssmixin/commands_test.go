package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.Flags().Bool("list", false, "")
	return cmd
}

func TestRunEval(t *testing.T) {
	resetKoanf()

	var out bytes.Buffer
	err := runEval(newTestCommand(&out), []string{"fontRem(24, 34, 100)", "vwsp(375)"})
	require.NoError(t, err)
	assert.Equal(t,
		"letter-spacing: 0.1em; line-height: 1.4166666666666667; font-size: 2.4rem;\n50vw\n",
		out.String())
}

func TestRunEvalUsesConfiguredCanvas(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("sp.canvas-width", 375))

	var out bytes.Buffer
	require.NoError(t, runEval(newTestCommand(&out), []string{"vwsp(375)"}))
	assert.Equal(t, "100vw\n", out.String())
}

func TestRunEvalList(t *testing.T) {
	resetKoanf()

	var out bytes.Buffer
	cmd := newTestCommand(&out)
	require.NoError(t, cmd.Flags().Set("list", "true"))
	require.NoError(t, runEval(cmd, nil))
	assert.Contains(t, out.String(), "bgImgMultiple\n")
	assert.Contains(t, out.String(), "media.sp\n")
}

func TestRunEvalErrors(t *testing.T) {
	resetKoanf()

	var out bytes.Buffer
	require.Error(t, runEval(newTestCommand(&out), nil))

	err := runEval(newTestCommand(&out), []string{"fontEm(1)"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fontEm(1)")
}

func TestRunGenerate(t *testing.T) {
	resetKoanf()
	t.Setenv("NO_COLOR", "1")

	src := t.TempDir()
	dst := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "globals.css.tmpl"),
		[]byte("body {\n  ${fontRem(24)}\n}\n"), 0o644))
	require.NoError(t, k.Set("generate.source", src))
	require.NoError(t, k.Set("generate.output-dir", dst))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runGenerate(cmd, nil))
	assert.Contains(t, out.String(), "0 issues.")

	css, err := os.ReadFile(filepath.Join(dst, "globals.css"))
	require.NoError(t, err)
	assert.Equal(t, "body {\n  font-size: 2.4rem;\n}\n", string(css))
}

func TestRunGenerateExitCodes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "warn.css.tmpl"),
		[]byte("a { ${fontRem(24)}\n"), 0o644))

	setup := func(strict bool) {
		resetKoanf()
		require.NoError(t, k.Set("generate.source", src))
		require.NoError(t, k.Set("generate.output-dir", t.TempDir()))
		require.NoError(t, k.Set("strict", strict))
	}

	// A warning alone passes the soft gate...
	setup(false)
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runGenerate(cmd, nil))
	assert.Contains(t, out.String(), "unclosed { block")

	// ...but fails in strict mode.
	setup(true)
	require.ErrorIs(t, runGenerate(cmd, nil), errIssuesFound)

	// Errors always fail.
	require.NoError(t, os.WriteFile(filepath.Join(src, "warn.css.tmpl"),
		[]byte("a { ${nope()} }\n"), 0o644))
	setup(false)
	require.ErrorIs(t, runGenerate(cmd, nil), errIssuesFound)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cssmixin.yaml")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"init", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Created "+path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, string(content))

	// A second run without --force refuses to overwrite.
	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
