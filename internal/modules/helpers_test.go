package modules

import (
	"testing"

	"github.com/HicaroD/brush/internal/codegen"
	"github.com/HicaroD/brush/internal/config"
	"github.com/HicaroD/brush/internal/diagnostics"
	"github.com/HicaroD/brush/internal/parser"
	"github.com/HicaroD/brush/internal/testutil"
	"github.com/HicaroD/brush/internal/types"
)

func newTestContext(t *testing.T, src string) *parser.Context {
	t.Helper()
	return testutil.NewContext(t, src)
}

func newTestContextWith(t *testing.T, src string, vars map[string]types.Type) *parser.Context {
	t.Helper()
	return testutil.NewContextWith(t, src, vars)
}

func newEmitContext(arith config.ArithType) *codegen.Context {
	return testutil.NewEmitContext(arith)
}

func expectLoud(t *testing.T, err error, message string) diagnostics.Diag {
	t.Helper()
	return testutil.ExpectLoud(t, err, message)
}

// rawModule renders a fixed string
type rawModule string

func (raw rawModule) Parse(*parser.Context) error { return nil }
func (raw rawModule) Translate(*codegen.Context) string { return string(raw) }
