package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HicaroD/brush/internal/config"
)

var (
	buildOutput  string
	buildRelease bool
	buildDebug   bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Compiles a program into an executable shell script",
	Long: `Compiles a program into an executable shell script.

The script is written next to the source with a .sh extension unless -o is
given. Debug builds, the default, start with a "# compiled from" line.`,
	Example: `  brush build main.br
  brush build main.br -o dist/main.sh
  brush build main.br --release`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output script path")
	buildCmd.Flags().BoolVar(&buildRelease, "release", false, "build in release mode")
	buildCmd.Flags().BoolVar(&buildDebug, "debug", false, "build in debug mode")
	buildCmd.MarkFlagsMutuallyExclusive("release", "debug")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if buildRelease {
		cfg.SetBuildType(config.RELEASE)
	} else if buildDebug {
		cfg.SetBuildType(config.DEBUG)
	}

	output := buildOutput
	if output == "" {
		output = strings.TrimSuffix(source, filepath.Ext(source)) + ".sh"
	}
	if filepath.Clean(output) == filepath.Clean(source) {
		return fmt.Errorf("output %q would overwrite the source file", output)
	}

	script, err := newCompiler(cmd, cfg).CompileFile(source)
	if err != nil {
		return err
	}

	if err := config.WriteScript(output, script); err != nil {
		return fmt.Errorf("unable to write script: %w", err)
	}
	if verbose {
		log.Printf("wrote %s (%s build)", output, cfg.Build.Kind)
	}
	return nil
}
