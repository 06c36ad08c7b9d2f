// Package modules implements every language construct as a node that parses
// and type checks itself from the token stream and later renders itself as
// shell text.
//
// Parsing and translation are separate passes. Parse may consult the token
// cursor and the scope memory held by parser.Context; Translate only sees
// the node's own fields and codegen.Context, and never fails.
package modules

import (
	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/diagnostics"
	"github.com/HicaroD/brush/internal/parser"
	"github.com/HicaroD/brush/internal/types"
)

type Module interface {
	// Parse consumes the construct starting at the cursor. On success the
	// cursor is left past the construct. A grammar mismatch returns a
	// *diagnostics.QuietFailure, a semantic error a *diagnostics.LoudFailure.
	Parse(ctx *parser.Context) error
	Translate(ctx *codegen.Context) string
}

// ExprModule is a Module that also resolves to a static type
type ExprModule interface {
	Module
	types.Typed
}

// furthest picks, between two quiet failures, the one that got further into
// the source, so that "Unexpected token" points at the real culprit
func furthest(current, candidate error) error {
	if current == nil {
		return candidate
	}
	a, okA := current.(*diagnostics.QuietFailure)
	b, okB := candidate.(*diagnostics.QuietFailure)
	if !okA || !okB {
		return current
	}
	if b.Pos.Line > a.Pos.Line || (b.Pos.Line == a.Pos.Line && b.Pos.Column > a.Pos.Column) {
		return candidate
	}
	return current
}
