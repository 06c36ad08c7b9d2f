package modules

import (
	"testing"

	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/config"
	"github.com/HicaroD/brush/internal/diagnostics"
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/types"
)

func TestLiterals(t *testing.T) {
	tests := []struct {
		input      string
		kind       ExprKind
		ty         types.Type
		translated string
	}{
		{"42", KIND_NUMBER, types.NUM, "42"},
		{"3.5", KIND_NUMBER, types.NUM, "3.5"},
		{"true", KIND_BOOL, types.BOOL, "1"},
		{"false", KIND_BOOL, types.BOOL, "0"},
		{`"hi"`, KIND_TEXT, types.TEXT, `"hi"`},
		{`"cost \$5"`, KIND_TEXT, types.TEXT, `"cost \$5"`},
		{`"say \"hi\""`, KIND_TEXT, types.TEXT, `"say \"hi\""`},
		{"\"back`tick\"", KIND_TEXT, types.TEXT, "\"back\\`tick\""},
		{"null", KIND_NULL, types.NULL, "''"},
		{"(7)", KIND_PARENTHESIS, types.NUM, "7"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			ctx := newTestContext(t, test.input)
			expr := NewExpr()
			if err := expr.Parse(ctx); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if expr.Kind != test.kind {
				t.Errorf("expected %s, got %s", test.kind, expr.Kind)
			}
			if expr.Type() != test.ty {
				t.Errorf("expected type %s, got %s", test.ty, expr.Type())
			}
			if got := expr.Translate(newEmitContext(config.ARITH_BC_SED)); got != test.translated {
				t.Errorf("expected %q, got %q", test.translated, got)
			}
			if !ctx.IsEOF() {
				t.Errorf("expected the whole input to be consumed, stopped at %s", ctx.Current())
			}
		})
	}
}

func TestComparison(t *testing.T) {
	ctx := newTestContext(t, "3 < 5")
	expr := NewExpr()
	if err := expr.Parse(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expr.Kind != KIND_BINOP || expr.Type() != types.BOOL {
		t.Fatalf("expected a Bool binary operation, got %s of type %s", expr.Kind, expr.Type())
	}

	emit := newEmitContext(config.ARITH_BC_SED)
	left, right := "3", "5"
	expected := codegen.TranslateComputation(emit, codegen.LT, &left, &right)
	if got := expr.Translate(emit); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestStandaloneBinOp(t *testing.T) {
	ctx := newTestContext(t, "3 < 5")
	binop := NewBinOp(codegen.LT)
	if err := binop.Parse(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if binop.Type() != types.BOOL {
		t.Errorf("expected Bool, got %s", binop.Type())
	}
	if _, ok := binop.Left().Node.(*Number); !ok {
		t.Errorf("expected a number on the left, got %T", binop.Left().Node)
	}

	ctx = newTestContext(t, "3 > 5")
	if err := NewBinOp(codegen.LT).Parse(ctx); !diagnostics.IsQuiet(err) {
		t.Errorf("expected quiet failure on a different operator, got %v", err)
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		input      string
		translated string
	}{
		{"1 - 2 - 3", "$(( $(( 1 - 2 )) - 3 ))"},
		{"8 / 4 / 2", "$(( $(( 8 / 4 )) / 2 ))"},
		{"1 + 2 * 3", "$(( 1 + $(( 2 * 3 )) ))"},
		{"(1 + 2) * 3", "$(( $(( 1 + 2 )) * 3 ))"},
		{"7 % 3 + 1", "$(( $(( 7 % 3 )) + 1 ))"},
		{"1 < 2 and 3 > 2 or false", "$(( $(( $(( 1 < 2 )) && $(( 3 > 2 )) )) || 0 ))"},
		{"true or false and false", "$(( 1 || $(( 0 && 0 )) ))"},
		{"-1 - -2", "$(( $(( - 1 )) - $(( - 2 )) ))"},
		{"not true == false", "$(( $(( ! 1 )) == 0 ))"},
		{"not not true", "$(( ! $(( ! 1 )) ))"},
		{`"a" + "b" + "c"`, `"a""b""c"`},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			ctx := newTestContext(t, test.input)
			expr := NewExpr()
			if err := expr.Parse(ctx); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := expr.Translate(newEmitContext(config.ARITH_SHELL)); got != test.translated {
				t.Errorf("expected %q, got %q", test.translated, got)
			}
		})
	}
}

func TestOperatorTypeMismatch(t *testing.T) {
	tests := []struct {
		input   string
		message string
		column  int
	}{
		{"true < 5", "Cannot compare two values of different types: Bool < Num", 6},
		{`"a" == "a"`, "Cannot compare two values of different types: Text == Text", 5},
		{`1 + "a"`, "Cannot add two values of different types: Num + Text", 3},
		{"true + true", "Cannot add two values of different types: Bool + Bool", 6},
		{`"a" - "b"`, "Cannot subtract two values of different types: Text - Text", 5},
		{"2 * false", "Cannot multiply two values of different types: Num * Bool", 3},
		{"1 and true", "Cannot perform logical operation on values of different types: Num and Bool", 3},
		{"not 1", "Cannot apply logical negation to value of type 'Num'", 1},
		{"-true", "Cannot negate value of type 'Bool'", 1},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			ctx := newTestContext(t, test.input)
			err := NewExpr().Parse(ctx)
			diag := expectLoud(t, err, test.message)
			if diag.Pos.Line != 1 || diag.Pos.Column != test.column {
				t.Errorf("expected diagnostic at 1:%d, got %s", test.column, diag.Pos)
			}
		})
	}
}

func TestVariableGet(t *testing.T) {
	ctx := newTestContextWith(t, "x", map[string]types.Type{"x": types.NUM})
	expr := NewExpr()
	if err := expr.Parse(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expr.Kind != KIND_VARIABLE_GET || expr.Type() != types.NUM {
		t.Errorf("expected a Num variable, got %s of type %s", expr.Kind, expr.Type())
	}
	if got := expr.Translate(newEmitContext(config.ARITH_BC_SED)); got != "${x}" {
		t.Errorf("expected ${x}, got %q", got)
	}

	ctx = newTestContextWith(t, "y", nil)
	diag := expectLoud(t, NewExpr().Parse(ctx), "Variable 'y' does not exist")
	if diag.Pos.Column != 1 {
		t.Errorf("expected diagnostic at column 1, got %s", diag.Pos)
	}
}

func TestExprStopsBeforeUnknownToken(t *testing.T) {
	ctx := newTestContext(t, "1 + 2 }")
	if err := NewExpr().Parse(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Current().Kind != token.CLOSE_CURLY {
		t.Errorf("expected cursor on '}', got %s", ctx.Current())
	}
}

func TestMissingOperand(t *testing.T) {
	for _, input := range []string{"3 <", "(1", "", "not"} {
		t.Run(input, func(t *testing.T) {
			ctx := newTestContext(t, input)
			if err := NewExpr().Parse(ctx); !diagnostics.IsQuiet(err) {
				t.Errorf("expected quiet failure, got %v", err)
			}
		})
	}
}

func TestUnparsedExprIsNull(t *testing.T) {
	expr := NewExpr()
	if expr.Type() != types.NULL {
		t.Errorf("expected Null, got %s", expr.Type())
	}
	if got := expr.Translate(newEmitContext(config.ARITH_BC_SED)); got != "''" {
		t.Errorf("expected '', got %q", got)
	}
}

func TestFractionalNumberBackend(t *testing.T) {
	tests := []struct {
		input string
		arith config.ArithType
		ok    bool
	}{
		{"2.5", config.ARITH_BC_SED, true},
		{"2", config.ARITH_SHELL, true},
		{"2.5", config.ARITH_SHELL, false},
	}

	for _, test := range tests {
		t.Run(test.input+"/"+test.arith.String(), func(t *testing.T) {
			ctx := newTestContext(t, test.input)
			ctx.Arith = test.arith
			err := NewExpr().Parse(ctx)
			if test.ok {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			expectLoud(t, err, "Fractional number '2.5' requires the 'bc' arithmetic backend, got 'shell'")
		})
	}
}

func TestLeftFoldingShape(t *testing.T) {
	ctx := newTestContext(t, "10 - 4 - 3")
	expr := NewExpr()
	if err := expr.Parse(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root, ok := expr.Node.(*BinOp)
	if !ok || root.Op != codegen.SUB {
		t.Fatalf("expected a subtraction at the root, got %T", expr.Node)
	}
	inner, ok := root.Left().Node.(*BinOp)
	if !ok || inner.Op != codegen.SUB {
		t.Fatalf("expected (10 - 4) on the left, got %T", root.Left().Node)
	}
	if num, ok := inner.Right().Node.(*Number); !ok || num.Value != "4" {
		t.Errorf("expected 4 as the inner right operand, got %v", inner.Right().Node)
	}
	if num, ok := root.Right().Node.(*Number); !ok || num.Value != "3" {
		t.Errorf("expected 3 as the outer right operand, got %v", root.Right().Node)
	}
}

func TestStandaloneUnOp(t *testing.T) {
	ctx := newTestContext(t, "- -5")
	unop := NewUnOp(codegen.NEG)
	if err := unop.Parse(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nested, ok := unop.Operand().Node.(*UnOp)
	if !ok || nested.Op != codegen.NEG {
		t.Fatalf("expected a nested negation, got %T", unop.Operand().Node)
	}
	if num, ok := nested.Operand().Node.(*Number); !ok || num.Value != "5" {
		t.Errorf("expected 5 as the innermost operand, got %v", nested.Operand().Node)
	}

	ctx = newTestContext(t, "5")
	if err := NewUnOp(codegen.NOT).Parse(ctx); !diagnostics.IsQuiet(err) {
		t.Errorf("expected quiet failure without the operator, got %v", err)
	}
}

func TestParenthesisInner(t *testing.T) {
	ctx := newTestContext(t, "(1 < 2)")
	paren := new(Parenthesis)
	if err := paren.Parse(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paren.Inner().Kind != KIND_BINOP || paren.Type() != types.BOOL {
		t.Errorf("expected a Bool comparison inside, got %s of type %s", paren.Inner().Kind, paren.Type())
	}
}
