package parser

import (
	"log/slog"

	"github.com/nordsoyv/cdl/pkg/lexer"
)

// logSkippedChar reports a lexer character that options.StrictLexing=false
// chose to skip instead of failing on, using the standard library
// structured logger (perbu-vcltest uses log/slog throughout its own
// runner/cache packages for exactly this kind of "non-fatal, but the
// operator should know" event).
func logSkippedChar(tok lexer.Token) {
	slog.Warn("cdl: skipping unrecognized character",
		"char", tok.Value,
		"line", tok.Start.Line,
		"column", tok.Start.Column,
	)
}
