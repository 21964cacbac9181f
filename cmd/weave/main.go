// Command weave is a thin CLI over the weave driver package: parse one
// or more source files and report their diagnostics. Flag/option
// design is not part of the core's correctness surface; this exists
// so the core has a runnable entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weavelang/weave"
	"github.com/weavelang/weave/diagexport"
	"github.com/weavelang/weave/internal/config"
	"github.com/weavelang/weave/syntax"
)

var argsParse struct {
	configPath string
	trivia     string
	yamlOut    string
}

var cmdRoot = &cobra.Command{
	Use:   "weave",
	Short: "Weave front-end driver: lex and parse Weave source files",
}

var cmdParse = &cobra.Command{
	Use:   "parse <files...>",
	Short: "parse one or more source files and print diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	cmdParse.Flags().StringVar(&argsParse.configPath, "config", "", "path to a weave.toml manifest")
	cmdParse.Flags().StringVar(&argsParse.trivia, "trivia", "", "override trivia mode: all, documentation-only, none")
	cmdParse.Flags().StringVar(&argsParse.yamlOut, "diagnostics-yaml", "", "write diagnostics for every file to this YAML file")
	cmdRoot.AddCommand(cmdParse)
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, filenames []string) error {
	opts := weave.Options{}
	var maxSourceBytes int64

	if argsParse.configPath != "" {
		manifest, err := config.Load(argsParse.configPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", argsParse.configPath, err)
		}
		opts.TriviaMode = triviaModeFromManifest(manifest.Parser.Trivia)
		opts.MaxNestingDepth = manifest.Parser.MaxNestingDepth
		maxSourceBytes = manifest.Parser.MaxSourceBytes
	}
	if argsParse.trivia != "" {
		mode, err := parseTriviaModeFlag(argsParse.trivia)
		if err != nil {
			return err
		}
		opts.TriviaMode = mode
	}

	var yamlFile *os.File
	if argsParse.yamlOut != "" {
		f, err := os.Create(argsParse.yamlOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", argsParse.yamlOut, err)
		}
		defer f.Close()
		yamlFile = f
	}

	exitCode := 0
	for _, filename := range filenames {
		src, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}
		if maxSourceBytes > 0 && int64(len(src)) > maxSourceBytes {
			return fmt.Errorf("%s is %d bytes, exceeding the manifest's max-source-bytes of %d", filename, len(src), maxSourceBytes)
		}

		comp := weave.ParseFile(filename, src, opts)
		for _, d := range comp.Diags.Records() {
			pos := comp.Source.LinePosition(d.Span.Start)
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%s: %s: %s\n", filename, pos, d.Severity, d.Message)
		}
		if comp.HasErrors() {
			exitCode = 1
		}
		if yamlFile != nil {
			if err := diagexport.WriteYAML(yamlFile, filename, comp.Diags); err != nil {
				return fmt.Errorf("writing diagnostics for %s: %w", filename, err)
			}
		}
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func triviaModeFromManifest(mode config.TriviaMode) syntax.TriviaMode {
	switch mode {
	case config.TriviaModeDocumentationOnly:
		return syntax.TriviaModeDocumentationOnly
	case config.TriviaModeNone:
		return syntax.TriviaModeNone
	default:
		return syntax.TriviaModeAll
	}
}

func parseTriviaModeFlag(s string) (syntax.TriviaMode, error) {
	switch s {
	case "all":
		return syntax.TriviaModeAll, nil
	case "documentation-only":
		return syntax.TriviaModeDocumentationOnly, nil
	case "none":
		return syntax.TriviaModeNone, nil
	default:
		return syntax.TriviaModeAll, fmt.Errorf("invalid --trivia value %q (want all, documentation-only, or none)", s)
	}
}
