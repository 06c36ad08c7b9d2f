package modules

import (
	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/parser"
	"github.com/HicaroD/brush/internal/types"
)

type VariableGet struct {
	Name string
	kind types.Type
}

func (get *VariableGet) Type() types.Type { return get.kind }

func (get *VariableGet) Parse(ctx *parser.Context) error {
	tok := ctx.Current()
	name, err := parser.Variable(ctx, parser.VARIABLE_NAME_EXTENSIONS)
	if err != nil {
		return err
	}
	kind, err := parser.HandleVariableReference(ctx, tok, name)
	if err != nil {
		return err
	}
	get.Name = name
	get.kind = kind
	return nil
}

func (get *VariableGet) Translate(ctx *codegen.Context) string {
	return "${" + get.Name + "}"
}

// VariableInit declares a variable: let name = value. The name becomes
// visible only after the value is parsed.
type VariableInit struct {
	Name  string
	value *Expr
}

func (decl *VariableInit) Value() *Expr { return decl.value }

func (decl *VariableInit) Parse(ctx *parser.Context) error {
	if _, err := parser.Expect(ctx, token.LET); err != nil {
		return err
	}

	tok := ctx.Current()
	name, err := parser.Variable(ctx, parser.VARIABLE_NAME_EXTENSIONS)
	if err != nil {
		return err
	}
	if _, err := parser.Expect(ctx, token.EQUAL); err != nil {
		return err
	}

	value := NewExpr()
	if err := value.Parse(ctx); err != nil {
		return err
	}

	if err := parser.HandleAddVariable(ctx, tok, name, value.Type()); err != nil {
		return err
	}
	decl.Name = name
	decl.value = value
	return nil
}

func (decl *VariableInit) Translate(ctx *codegen.Context) string {
	return decl.Name + "=" + decl.value.Translate(ctx)
}

// VariableSet assigns to a declared variable: name = value. The value must
// have the declared type.
type VariableSet struct {
	Name  string
	value *Expr
}

func (set *VariableSet) Value() *Expr { return set.value }

func (set *VariableSet) Parse(ctx *parser.Context) error {
	tok := ctx.Current()
	name, err := parser.Variable(ctx, parser.VARIABLE_NAME_EXTENSIONS)
	if err != nil {
		return err
	}
	if _, err := parser.Expect(ctx, token.EQUAL); err != nil {
		return err
	}

	declared, err := parser.HandleVariableReference(ctx, tok, name)
	if err != nil {
		return err
	}

	value := NewExpr()
	if err := value.Parse(ctx); err != nil {
		return err
	}
	if value.Type() != declared {
		return ctx.ErrorAt(tok, "Cannot assign value of type '%s' to a variable of type '%s'", value.Type(), declared)
	}

	set.Name = name
	set.value = value
	return nil
}

func (set *VariableSet) Translate(ctx *codegen.Context) string {
	return set.Name + "=" + set.value.Translate(ctx)
}
