package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	simplec "github.com/simplec-lang/simplec"
	"github.com/simplec-lang/simplec/internal/cli/ui"
	"github.com/simplec-lang/simplec/internal/cliconfig"
	"github.com/simplec-lang/simplec/internal/compiler/ast"
	"github.com/simplec-lang/simplec/internal/diagnostics"
)

var (
	compileJSON    bool
	compileVerbose bool
	compileFormat  string
	compileNoColor bool
)

func init() {
	compileCmd.Flags().BoolVar(&compileJSON, "json", false, "Output results in JSON format")
	compileCmd.Flags().BoolVar(&compileVerbose, "verbose", false, "Trace phase transitions and recovery decisions")
	compileCmd.Flags().StringVar(&compileFormat, "format", "", "Output format: text, tree, or tokens (default from simplec.yml)")
	compileCmd.Flags().BoolVar(&compileNoColor, "no-color", false, "Disable colored output")
}

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a SimpleC source file",
	Long:  "Lex, parse, and semantically analyze a .sc file, reporting every recoverable fault",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}

		format := cfg.Output.Format
		if compileFormat != "" {
			format = compileFormat
		}
		noColor := cfg.Output.NoColor || compileNoColor

		path, err := resolveSourcePath(args)
		if err != nil {
			return err
		}

		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		logger := zap.NewNop()
		if compileVerbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()
		}

		result := simplec.CompileFrontendWithLogger(string(source), logger)

		if compileJSON {
			if err := outputJSON(os.Stdout, result); err != nil {
				return err
			}
		} else {
			outputTerminal(os.Stdout, result, format, noColor, cfg.Output.MaxDiagnostics)
		}

		if !result.Success() {
			return fmt.Errorf("compilation failed with %d error(s)", len(result.Diagnostics))
		}
		return nil
	},
}

// resolveSourcePath returns the file to compile, prompting interactively
// when the command was invoked without an argument.
func resolveSourcePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	var path string
	prompt := &survey.Input{
		Message: "Source file to compile:",
	}
	if err := survey.AskOne(prompt, &path, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return path, nil
}

func outputJSON(w io.Writer, result simplec.Result) error {
	tokens := make([]string, len(result.Tokens))
	for i, tok := range result.Tokens {
		tokens[i] = tok.String()
	}

	output := struct {
		Success       bool     `json:"success"`
		CompilationID string   `json:"compilation_id"`
		Tokens        []string `json:"tokens"`
		AST           string   `json:"ast"`
		Diagnostics   []string `json:"diagnostics"`
	}{
		Success:       result.Success(),
		CompilationID: result.CompilationID.String(),
		Tokens:        tokens,
		AST:           ast.Dump(result.AST),
	}

	output.Diagnostics = make([]string, len(result.Diagnostics))
	for i, d := range result.Diagnostics {
		output.Diagnostics[i] = d.Format()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputTerminal(w io.Writer, result simplec.Result, format string, noColor bool, maxDiagnostics int) {
	switch format {
	case "tree":
		ui.Header(w, "AST", noColor)
		fmt.Fprint(w, ast.Dump(result.AST))
	case "tokens":
		ui.Header(w, "Tokens", noColor)
		outputTokenTable(w, result, noColor)
	default:
		outputDiagnostics(w, result, noColor, maxDiagnostics)
	}
}

func outputTokenTable(w io.Writer, result simplec.Result, noColor bool) {
	table := ui.NewTable(w, []string{"Kind", "Lexeme", "Line"}, &ui.TableOptions{NoColor: noColor})
	for _, tok := range result.Tokens {
		table.AddRow(tok.Type.String(), tok.Lexeme, fmt.Sprintf("%d", tok.Line))
	}
	table.Render()
}

func outputDiagnostics(w io.Writer, result simplec.Result, noColor bool, maxDiagnostics int) {
	shown := result.Diagnostics
	truncated := 0
	if maxDiagnostics > 0 && len(shown) > maxDiagnostics {
		truncated = len(shown) - maxDiagnostics
		shown = shown[:maxDiagnostics]
	}

	diagnostics.Render(w, shown, &diagnostics.RenderOptions{NoColor: noColor})
	if truncated > 0 {
		fmt.Fprintf(w, "... and %d more\n", truncated)
	}

	if result.Success() {
		ok := color.New(color.FgGreen, color.Bold)
		if noColor {
			ok.DisableColor()
		}
		ok.Fprintln(w, "✓ no errors")
	} else {
		fmt.Fprintln(w, diagnostics.Summary(result.Diagnostics))
	}
}
