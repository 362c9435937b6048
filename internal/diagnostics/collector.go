// Package diagnostics provides the shared ordered diagnostic buffer used
// across the compile pipeline, plus the zap-based phase tracing and
// terminal rendering the CLI needs on top of the bare Diagnostic type in
// internal/compiler/errors.
package diagnostics

import (
	"go.uber.org/zap"

	"github.com/simplec-lang/simplec/internal/compiler/errors"
)

// Collector is a shared ordered buffer. It never deduplicates — each phase
// is responsible for not emitting the same diagnostic twice at one source
// position.
type Collector struct {
	diagnostics errors.List
	logger      *zap.Logger
}

// New creates a Collector. A nil logger is replaced with zap.NewNop(),
// matching internal/lsp/server.go's fallback when development logging
// can't be constructed.
func New(logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{logger: logger}
}

// Emit appends a diagnostic and traces it at debug level, tagged with its
// phase and line, so `--verbose` runs can see each recovery decision as it
// happens rather than only in the final batch.
func (c *Collector) Emit(d *errors.Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
	c.logger.Debug("diagnostic emitted",
		zap.String("phase", string(d.Phase)),
		zap.Int("line", d.Line),
		zap.String("message", d.Message),
	)
}

// EmitAll appends every diagnostic in list, preserving order.
func (c *Collector) EmitAll(list errors.List) {
	for _, d := range list {
		c.Emit(d)
	}
}

// Snapshot returns the diagnostics collected so far, in emission order.
func (c *Collector) Snapshot() errors.List {
	return c.diagnostics
}
