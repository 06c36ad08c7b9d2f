package modules

import (
	"fmt"

	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/diagnostics"
	"github.com/HicaroD/brush/internal/parser"
	"github.com/HicaroD/brush/internal/types"
)

type ExprKind int

const (
	KIND_BINOP ExprKind = iota
	KIND_UNOP
	KIND_PARENTHESIS
	KIND_NUMBER
	KIND_BOOL
	KIND_TEXT
	KIND_NULL
	KIND_VARIABLE_GET
)

func (kind ExprKind) String() string {
	switch kind {
	case KIND_BINOP:
		return "KIND_BINOP"
	case KIND_UNOP:
		return "KIND_UNOP"
	case KIND_PARENTHESIS:
		return "KIND_PARENTHESIS"
	case KIND_NUMBER:
		return "KIND_NUMBER"
	case KIND_BOOL:
		return "KIND_BOOL"
	case KIND_TEXT:
		return "KIND_TEXT"
	case KIND_NULL:
		return "KIND_NULL"
	case KIND_VARIABLE_GET:
		return "KIND_VARIABLE_GET"
	default:
		return fmt.Sprintf("Unknown Expression Kind: %d", int(kind))
	}
}

// Operand forms, tried in order
var PRIMARY_MODULES = []struct {
	Kind ExprKind
	New  func() ExprModule
}{
	{KIND_PARENTHESIS, func() ExprModule { return new(Parenthesis) }},
	{KIND_NUMBER, func() ExprModule { return new(Number) }},
	{KIND_BOOL, func() ExprModule { return new(Bool) }},
	{KIND_TEXT, func() ExprModule { return new(Text) }},
	{KIND_NULL, func() ExprModule { return new(Null) }},
	{KIND_VARIABLE_GET, func() ExprModule { return new(VariableGet) }},
}

// Expr is the tagged union of every expression form. An expression that was
// never parsed has no node and is of type Null.
type Expr struct {
	Kind ExprKind
	Node ExprModule
}

func NewExpr() *Expr {
	return &Expr{}
}

func (expr *Expr) Type() types.Type {
	if expr.Node == nil {
		return types.NULL
	}
	return expr.Node.Type()
}

func (expr *Expr) Parse(ctx *parser.Context) error {
	parsed, err := parseExprFrom(ctx, 0)
	if err != nil {
		return err
	}
	*expr = *parsed
	return nil
}

func (expr *Expr) Translate(ctx *codegen.Context) string {
	if expr.Node == nil {
		return Null{}.Translate(ctx)
	}
	return expr.Node.Translate(ctx)
}

// parseExprFrom parses an expression whose loosest operator binds at level.
// Operators of one level fold to the left: the operand parsed so far becomes
// the left arm of the next operator.
func parseExprFrom(ctx *parser.Context, level int) (*Expr, error) {
	if level >= BINARY_LEVELS {
		return parseUnary(ctx)
	}

	left, err := parseExprFrom(ctx, level+1)
	if err != nil {
		return nil, err
	}

	for {
		op, ok := binopAt(level, ctx.Current().Kind)
		if !ok {
			return left, nil
		}
		binop := &BinOp{Op: op, left: left}
		if err := binop.Parse(ctx); err != nil {
			return nil, err
		}
		left = &Expr{Kind: KIND_BINOP, Node: binop}
	}
}

func parseUnary(ctx *parser.Context) (*Expr, error) {
	if op, ok := unopFor(ctx.Current().Kind); ok {
		unop := &UnOp{Op: op}
		if err := unop.Parse(ctx); err != nil {
			return nil, err
		}
		return &Expr{Kind: KIND_UNOP, Node: unop}, nil
	}
	return parsePrimary(ctx)
}

func parsePrimary(ctx *parser.Context) (*Expr, error) {
	var mismatch error
	for _, alternative := range PRIMARY_MODULES {
		start := ctx.Index()
		node := alternative.New()

		err := node.Parse(ctx)
		if err == nil {
			return &Expr{Kind: alternative.Kind, Node: node}, nil
		}
		if !diagnostics.IsQuiet(err) {
			return nil, err
		}
		mismatch = furthest(mismatch, err)
		ctx.SetIndex(start)
	}
	return nil, mismatch
}
