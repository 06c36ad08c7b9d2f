package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const EVAL_FILENAME = "<eval>"

var evalCmd = &cobra.Command{
	Use:   "eval <code>",
	Short: "Compiles a snippet and prints the script",
	Long: `Compiles a snippet given on the command line and prints the resulting
script. A single "-" argument reads the snippet from standard input.`,
	Example: `  brush eval 'let x = 1; echo x + 1'
  echo 'echo "hi"' | brush eval -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	code := strings.Join(args, " ")
	if len(args) == 1 && args[0] == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("unable to read standard input: %w", err)
		}
		code = string(src)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	script, err := newCompiler(cmd, cfg).Compile(EVAL_FILENAME, []byte(code))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}
