package modules

import (
	"fmt"

	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/diagnostics"
	"github.com/HicaroD/brush/internal/parser"
)

type StmtKind int

const (
	KIND_VARIABLE_INIT StmtKind = iota
	KIND_IF_CONDITION
	KIND_ECHO
	KIND_VARIABLE_SET
)

func (kind StmtKind) String() string {
	switch kind {
	case KIND_VARIABLE_INIT:
		return "KIND_VARIABLE_INIT"
	case KIND_IF_CONDITION:
		return "KIND_IF_CONDITION"
	case KIND_ECHO:
		return "KIND_ECHO"
	case KIND_VARIABLE_SET:
		return "KIND_VARIABLE_SET"
	default:
		return fmt.Sprintf("Unknown Statement Kind: %d", int(kind))
	}
}

// Order matters: keyword-led statements come before the ones starting with
// a plain identifier
var STATEMENT_MODULES = []struct {
	Kind StmtKind
	New  func() Module
}{
	{KIND_VARIABLE_INIT, func() Module { return new(VariableInit) }},
	{KIND_IF_CONDITION, func() Module { return new(IfCondition) }},
	{KIND_ECHO, func() Module { return new(Echo) }},
	{KIND_VARIABLE_SET, func() Module { return new(VariableSet) }},
}

type Statement struct {
	Kind StmtKind
	Node Module
}

func NewStatement() *Statement {
	return &Statement{}
}

func (stmt *Statement) Parse(ctx *parser.Context) error {
	var mismatch error
	for _, alternative := range STATEMENT_MODULES {
		start := ctx.Index()
		node := alternative.New()

		err := node.Parse(ctx)
		if err == nil {
			stmt.Kind = alternative.Kind
			stmt.Node = node
			return nil
		}
		if !diagnostics.IsQuiet(err) {
			return err
		}
		mismatch = furthest(mismatch, err)
		ctx.SetIndex(start)
	}
	return mismatch
}

func (stmt *Statement) Translate(ctx *codegen.Context) string {
	return stmt.Node.Translate(ctx)
}
