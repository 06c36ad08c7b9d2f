package diagnostics

import (
	"errors"

	"github.com/HicaroD/brush/internal/lexer/token"
)

// QuietFailure is a grammar mismatch. It only knows where it happened; the
// statement loop that catches it decides the message.
type QuietFailure struct {
	Pos token.Pos
}

func (failure *QuietFailure) Error() string {
	return failure.Pos.String() + ": syntax mismatch"
}

// LoudFailure carries a complete diagnostic and is propagated verbatim.
type LoudFailure struct {
	Diag Diag
}

func (failure *LoudFailure) Error() string {
	return failure.Diag.String()
}

func Quiet(pos token.Pos) error {
	return &QuietFailure{Pos: pos}
}

func Loud(pos token.Pos, message string) error {
	return &LoudFailure{Diag: Diag{Pos: pos, Message: message}}
}

func IsQuiet(err error) bool {
	var quiet *QuietFailure
	return errors.As(err, &quiet)
}

func IsLoud(err error) bool {
	var loud *LoudFailure
	return errors.As(err, &loud)
}

// AsDiag extracts the diagnostic of a loud failure. Quiet failures become a
// generic "Unexpected token" diagnostic at their position.
func AsDiag(err error) (Diag, bool) {
	var loud *LoudFailure
	if errors.As(err, &loud) {
		return loud.Diag, true
	}
	var quiet *QuietFailure
	if errors.As(err, &quiet) {
		return Diag{Pos: quiet.Pos, Message: "Unexpected token"}, true
	}
	return Diag{}, false
}
