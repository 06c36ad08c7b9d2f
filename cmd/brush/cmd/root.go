package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/HicaroD/brush/internal/compiler"
	"github.com/HicaroD/brush/internal/config"
	"github.com/HicaroD/brush/internal/diagnostics"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "brush",
	Short: "brush - a small typed language that compiles to POSIX shell",
	Long: `brush compiles a small statically typed language into portable shell
scripts.

Programs declare variables with let, assign, branch with if/else and print
with echo. Arithmetic and comparisons are rendered through bc(1) or the
shell's $(( )) expansion, depending on the [emit] arithmetic setting.

For more information about brush, visit: https://github.com/HicaroD/brush`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./brush.toml, then the user config directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace compilation phases")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		source := cfg.Source
		if source == "" {
			source = "defaults"
		}
		log.Printf("configuration loaded from %s", source)
	}
	return cfg, nil
}

// newCompiler reports diagnostics on the command's error stream
func newCompiler(cmd *cobra.Command, cfg *config.Config) *compiler.Compiler {
	c := compiler.New(cfg, diagnostics.NewWithWriter(cmd.ErrOrStderr()))
	c.Verbose = verbose
	return c
}
