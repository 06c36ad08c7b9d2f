package parser

import (
	"errors"
	"strings"

	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/scope"
	"github.com/HicaroD/brush/internal/types"
)

// Characters allowed in variable names on top of letters and digits
const VARIABLE_NAME_EXTENSIONS = "_"

// Expect consumes a token of the expected kind or fails quietly without
// moving the cursor.
func Expect(ctx *Context, expectedKind token.Kind) (*token.Token, error) {
	tok := ctx.Current()
	if tok.Kind != expectedKind {
		return nil, ctx.Quiet(tok)
	}
	ctx.Skip()
	return tok, nil
}

// Variable consumes an identifier whose first character is an ASCII letter
// or one of extensions and whose remaining characters are ASCII letters,
// digits or extensions. Keywords never match.
func Variable(ctx *Context, extensions string) (string, error) {
	tok := ctx.Current()
	if tok.Kind != token.ID || !isVariableName(string(tok.Lexeme), extensions) {
		return "", ctx.Quiet(tok)
	}
	ctx.Skip()
	return string(tok.Lexeme), nil
}

func isVariableName(name, extensions string) bool {
	if name == "" {
		return false
	}
	for i, chr := range name {
		allowed := isASCIILetter(chr) || strings.ContainsRune(extensions, chr)
		if i > 0 {
			allowed = allowed || (chr >= '0' && chr <= '9')
		}
		if !allowed {
			return false
		}
	}
	return true
}

func isASCIILetter(chr rune) bool {
	return (chr >= 'a' && chr <= 'z') || (chr >= 'A' && chr <= 'Z')
}

// HandleVariableReference resolves name against the active scopes and
// returns its type. An unknown name is a loud failure anchored at tok.
func HandleVariableReference(ctx *Context, tok *token.Token, name string) (types.Type, error) {
	ty, err := ctx.Mem.Lookup(name)
	if err != nil {
		if errors.Is(err, scope.SYMBOL_NOT_FOUND_ON_SCOPE) {
			return types.NULL, ctx.ErrorAt(tok, "Variable '%s' does not exist", name)
		}
		return types.NULL, err
	}
	return ty, nil
}

// HandleAddVariable declares name in the innermost scope. Names already
// visible from any active scope are rejected: the emitted script has a
// single flat namespace.
func HandleAddVariable(ctx *Context, tok *token.Token, name string, ty types.Type) error {
	if _, err := ctx.Mem.Lookup(name); err == nil {
		return ctx.ErrorAt(tok, "Variable '%s' already exists", name)
	}
	if err := ctx.Mem.Insert(name, ty); err != nil {
		return ctx.ErrorAt(tok, "%s", err)
	}
	return nil
}
