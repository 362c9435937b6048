package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/simplec-lang/simplec/internal/compiler/errors"
)

// RenderOptions configures terminal rendering.
type RenderOptions struct {
	NoColor bool
}

// Render writes every diagnostic in list to w in its phase-specific text
// format, with the phase label colorized: lexical and syntax faults in red,
// semantic faults in yellow, suggestions in cyan.
func Render(w io.Writer, list errors.List, opts *RenderOptions) {
	noColor := opts != nil && opts.NoColor

	errColor := color.New(color.FgRed, color.Bold)
	semColor := color.New(color.FgYellow, color.Bold)
	hintColor := color.New(color.FgCyan)
	if noColor {
		errColor.DisableColor()
		semColor.DisableColor()
		hintColor.DisableColor()
	}

	for _, d := range list {
		switch d.Phase {
		case errors.PhaseSemantic:
			semColor.Fprint(w, "Semantic Error")
			fmt.Fprintf(w, ": %s on line %d\n", d.Message, d.Line)
		case errors.PhaseLex:
			errColor.Fprint(w, "Lex Error")
			fmt.Fprintf(w, " on line %d: %s\n", d.Line, d.Message)
		default:
			errColor.Fprint(w, "Syntax Error")
			fmt.Fprintf(w, " on line %d: %s\n", d.Line, d.Message)
		}

		if d.Suggestion != "" {
			hintColor.Fprintf(w, "   -> Suggestion: %s\n", d.Suggestion)
		}
	}
}

// Summary returns a one-line result summary for CLI output, e.g.
// "3 error(s) found" or "no errors".
func Summary(list errors.List) string {
	if len(list) == 0 {
		return "no errors"
	}
	return fmt.Sprintf("%d error(s) found", len(list))
}
