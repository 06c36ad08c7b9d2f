package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/HicaroD/brush/internal/compiler"
)

const (
	HISTORY_FILE = ".brush_history"

	PROMPT_MAIN = "brush> "
	PROMPT_CONT = "  ...> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Compiles statements interactively",
	Long: `Starts an interactive session. Every accepted snippet is compiled and its
shell translation printed; declarations stay visible to later snippets.

Type :reset to forget every declaration and :quit to leave.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	session := compiler.NewSession(newCompiler(cmd, cfg))
	out := cmd.OutOrStdout()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, HISTORY_FILE)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		code, ok := readSnippet(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		trimmed := strings.TrimSpace(code)
		switch {
		case trimmed == "":
			continue
		case trimmed == ":quit":
			return nil
		case trimmed == ":reset":
			session.Reset()
			continue
		case strings.HasPrefix(trimmed, ":"):
			fmt.Fprintln(out, "unknown command. Type :quit to exit.")
			continue
		}

		script, err := session.Eval(code)
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if err != nil {
			// the diagnostic is already on the error stream
			continue
		}
		if script != "" {
			fmt.Fprintln(out, script)
		}
	}
}

// readSnippet keeps prompting while a block is left open
func readSnippet(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := PROMPT_MAIN
		if b.Len() > 0 {
			prompt = PROMPT_CONT
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !compiler.IsIncomplete(b.String()) {
			return b.String(), true
		}
	}
}
