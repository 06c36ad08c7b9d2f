package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/HicaroD/brush/internal/lexer/token"
)

var (
	COMPILER_ERROR_FOUND = errors.New("compiler error found")
)

type Diag struct {
	Pos     token.Pos
	Message string
}

func (diag Diag) String() string {
	return fmt.Sprintf("%s: %s", diag.Pos, diag.Message)
}

type Collector struct {
	Diags []Diag

	out io.Writer
}

func New() *Collector {
	return &Collector{
		Diags: nil,
		out:   os.Stderr,
	}
}

// NewWithWriter is useful for testing, where reports should not reach the
// terminal
func NewWithWriter(out io.Writer) *Collector {
	return &Collector{Diags: nil, out: out}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	fmt.Fprintln(collector.out, diag)
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}
