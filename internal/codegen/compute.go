package codegen

import (
	"fmt"

	"github.com/HicaroD/brush/internal/config"
)

type ArithOp int

const (
	ADD ArithOp = iota
	SUB
	MUL
	DIV
	MODULO
	NEG
	GT
	GE
	LT
	LE
	EQ
	NEQ
	NOT
	AND
	OR
)

func (op ArithOp) String() string {
	switch op {
	case ADD:
		return "Add"
	case SUB:
		return "Sub"
	case MUL:
		return "Mul"
	case DIV:
		return "Div"
	case MODULO:
		return "Modulo"
	case NEG:
		return "Neg"
	case GT:
		return "Gt"
	case GE:
		return "Ge"
	case LT:
		return "Lt"
	case LE:
		return "Le"
	case EQ:
		return "Eq"
	case NEQ:
		return "Neq"
	case NOT:
		return "Not"
	case AND:
		return "And"
	case OR:
		return "Or"
	}
	return fmt.Sprintf("ArithOp(%d)", int(op))
}

// Symbol is the operator spelling understood by both bc(1) and $(( ))
func (op ArithOp) Symbol() string {
	switch op {
	case ADD:
		return "+"
	case SUB, NEG:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case MODULO:
		return "%"
	case GT:
		return ">"
	case GE:
		return ">="
	case LT:
		return "<"
	case LE:
		return "<="
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case NOT:
		return "!"
	case AND:
		return "&&"
	case OR:
		return "||"
	}
	return "?"
}

// Strips trailing zeros of bc results so that 4.000 prints as 4
const BC_SED_REGEX = `/\./ s/\.\{0,1\}0\{1,\}$//`

// TranslateComputation renders op applied to the already translated
// operands. Unary operators pass a nil left operand.
func TranslateComputation(ctx *Context, op ArithOp, left, right *string) string {
	var l, r string
	if left != nil {
		l = *left
	}
	if right != nil {
		r = *right
	}

	switch ctx.Arith {
	case config.ARITH_SHELL:
		if left == nil {
			return fmt.Sprintf("$(( %s %s ))", op.Symbol(), r)
		}
		return fmt.Sprintf("$(( %s %s %s ))", l, op.Symbol(), r)
	default:
		mathLibFlag := " -l"
		// bc computes % with the current scale, which -l sets to 20
		if op == MODULO {
			mathLibFlag = ""
		}
		var command string
		if left == nil {
			command = fmt.Sprintf("echo '%s' %s | bc%s | sed '%s'", op.Symbol(), r, mathLibFlag, BC_SED_REGEX)
		} else {
			command = fmt.Sprintf("echo %s '%s' %s | bc%s | sed '%s'", l, op.Symbol(), r, mathLibFlag, BC_SED_REGEX)
		}
		return ctx.GenSubprocess(command)
	}
}
