package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssmixin"
	"github.com/yacobolo/cssmixin/internal/sheet"
)

var k = koanf.New(".")

// flagKeys maps flag names to config keys. Flags not listed use their own
// name as key.
var flagKeys = map[string]string{
	"sp-canvas-width": "sp.canvas-width",
	"pc-canvas-width": "pc.canvas-width",
	"sp-breakpoint":   "sp.breakpoint",
	"pc-breakpoint":   "pc.breakpoint",
	"source":          "generate.source",
	"output-dir":      "generate.output-dir",
	"include":         "generate.include",
	"minify":          "generate.minify",
	"validate":        "generate.validate",
	"dry-run":         "generate.dry-run",
}

// envSections are the config sections an env var may address.
var envSections = []string{"sp", "pc", "generate", "media-queries"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssmixin.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set)
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return flagKey(f.Name), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	setupLogger()
	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSMIXIN_* prefix)
	if err := k.Load(env.Provider("CSSMIXIN_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// envKey maps environment variables to config keys:
//
//	CSSMIXIN_SP_CANVAS_WIDTH    -> sp.canvas-width
//	CSSMIXIN_GENERATE_OUTPUT_DIR -> generate.output-dir
//	CSSMIXIN_MEDIA_QUERIES_SP   -> media-queries.sp
//	CSSMIXIN_OUTPUT_FORMAT      -> output-format
func envKey(s string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CSSMIXIN_")), "_", "-")
	for _, section := range envSections {
		if rest, ok := strings.CutPrefix(key, section+"-"); ok {
			return section + "." + rest
		}
	}
	return key
}

// buildMixinConfig constructs the library's Config from koanf state.
func buildMixinConfig() cssmixin.Config {
	def := cssmixin.DefaultConfig()
	config := cssmixin.Config{
		SP: cssmixin.Mode{
			CanvasWidth: getFloat64("sp.canvas-width", def.SP.CanvasWidth),
			Breakpoint:  getInt("sp.breakpoint", def.SP.Breakpoint),
		},
		PC: cssmixin.Mode{
			CanvasWidth: getFloat64("pc.canvas-width", def.PC.CanvasWidth),
			Breakpoint:  getInt("pc.breakpoint", def.PC.Breakpoint),
		},
	}

	if queries := k.StringMap("media-queries"); len(queries) > 0 {
		config.MediaQueries = make(map[cssmixin.Breakpoint]string, len(queries))
		for label, cond := range queries {
			config.MediaQueries[cssmixin.Breakpoint(label)] = cond
		}
	}
	return config
}

// buildGenerateConfig constructs the sheet Config from koanf state.
func buildGenerateConfig() sheet.Config {
	config := sheet.Config{
		SourceDir: getString("generate.source", "web/styles"),
		OutputDir: getString("generate.output-dir", "web/static/css"),
		Minify:    getBool("generate.minify", false),
		Validate:  getBool("generate.validate", true),
		DryRun:    getBool("generate.dry-run", false),
		Includes:  sheet.DefaultIncludes,
	}
	if includes := k.Strings("generate.include"); len(includes) > 0 {
		config.Includes = includes
	}
	return config
}

// buildReportOptions constructs reporter options from koanf state.
func buildReportOptions() sheet.ReportOptions {
	return sheet.ReportOptions{
		UseColors:       getBool("color", false),
		PrintLines:      getBool("print-lines", true),
		PrintLinterName: getBool("print-linter-name", true),
	}
}

// getString returns the config value for key, or the default when unset.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the config value for key, or the default when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getInt returns the config value for key, or the default when unset.
func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

// getFloat64 returns the config value for key, or the default when unset.
func getFloat64(key string, defaultVal float64) float64 {
	if k.Exists(key) {
		return k.Float64(key)
	}
	return defaultVal
}
