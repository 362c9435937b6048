// Package simplec is the compiler front-end for SimpleC, a small C-like
// teaching language. CompileFrontend is a pure function from a source string
// to a token stream, an AST, and an ordered diagnostic report; it never
// aborts on a fault, so every invocation yields all three products.
package simplec

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/simplec-lang/simplec/internal/compiler/ast"
	"github.com/simplec-lang/simplec/internal/compiler/errors"
	"github.com/simplec-lang/simplec/internal/compiler/lexer"
	"github.com/simplec-lang/simplec/internal/compiler/parser"
	"github.com/simplec-lang/simplec/internal/compiler/semantic"
	"github.com/simplec-lang/simplec/internal/diagnostics"
)

// Result holds the three products of one front-end invocation. Each call
// gets its own CompilationID so concurrent invocations can be told apart in
// logs and JSON output.
type Result struct {
	CompilationID uuid.UUID     `json:"compilation_id"`
	Tokens        []lexer.Token `json:"tokens"`
	AST           *ast.Program  `json:"-"`
	Diagnostics   errors.List   `json:"diagnostics"`
}

// Success reports whether the compilation produced no diagnostics. The
// pipeline itself never stops early — callers detect failure by inspecting
// the diagnostic report, not by a missing artifact.
func (r Result) Success() bool {
	return !r.Diagnostics.HasErrors()
}

// CompileFrontend lexes, parses, and semantically analyzes source. The
// returned diagnostics aggregate lexical, syntax, and semantic entries in
// that phase order; within a phase, emission order is preserved.
func CompileFrontend(source string) Result {
	return CompileFrontendWithLogger(source, nil)
}

// CompileFrontendWithLogger is CompileFrontend with phase and recovery
// tracing on the given logger. A nil logger disables tracing.
func CompileFrontendWithLogger(source string, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := Result{CompilationID: uuid.New()}
	collector := diagnostics.New(logger)

	logger.Debug("lexing", zap.Int("source_bytes", len(source)))
	lex := lexer.New(source)
	tokens, lexErrors := lex.ScanTokens()
	result.Tokens = tokens
	for _, lexErr := range lexErrors {
		collector.Emit(errors.NewAtLine(errors.PhaseLex, lexErr.Line, lexErr.Message))
	}

	logger.Debug("parsing", zap.Int("tokens", len(tokens)))
	program, parseDiags := parser.New(tokens).Parse()
	result.AST = program
	collector.EmitAll(parseDiags)

	logger.Debug("analyzing", zap.Int("top_level_statements", len(program.Children)))
	collector.EmitAll(semantic.Analyze(program))

	result.Diagnostics = collector.Snapshot()
	logger.Debug("compile finished",
		zap.String("compilation_id", result.CompilationID.String()),
		zap.Int("diagnostics", len(result.Diagnostics)),
	)
	return result
}
