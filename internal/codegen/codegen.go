// Package codegen holds the translate-time state and the shell renderings
// shared by every node.
package codegen

import (
	"strings"

	"github.com/HicaroD/brush/internal/config"
)

type Context struct {
	Arith config.ArithType

	indent      int
	indentWidth int
}

func NewContext(cfg *config.Config) *Context {
	return &Context{
		Arith:       cfg.Emit.Arith,
		indent:      0,
		indentWidth: cfg.Emit.Indent,
	}
}

func (ctx *Context) IncreaseIndent() {
	ctx.indent++
}

// DecreaseIndent never goes below zero
func (ctx *Context) DecreaseIndent() {
	if ctx.indent > 0 {
		ctx.indent--
	}
}

func (ctx *Context) Indent() int { return ctx.indent }

func (ctx *Context) GenIndent() string {
	return strings.Repeat(" ", ctx.indent*ctx.indentWidth)
}

// GenSubprocess wraps a command in a command substitution
func (ctx *Context) GenSubprocess(command string) string {
	return "$(" + command + ")"
}
