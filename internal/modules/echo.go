package modules

import (
	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/parser"
)

type Echo struct {
	value *Expr
}

func (echo *Echo) Value() *Expr { return echo.value }

func (echo *Echo) Parse(ctx *parser.Context) error {
	if _, err := parser.Expect(ctx, token.ECHO); err != nil {
		return err
	}
	value := NewExpr()
	if err := value.Parse(ctx); err != nil {
		return err
	}
	echo.value = value
	return nil
}

func (echo *Echo) Translate(ctx *codegen.Context) string {
	return "echo " + echo.value.Translate(ctx)
}
