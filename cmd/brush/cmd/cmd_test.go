package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// execute runs the root command with every flag back to its default
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	for _, flags := range []*pflag.FlagSet{rootCmd.PersistentFlags(), buildCmd.Flags()} {
		flags.VisitAll(func(flag *pflag.Flag) {
			_ = flag.Value.Set(flag.DefValue)
			flag.Changed = false
		})
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestEval(t *testing.T) {
	stdout, _, err := execute(t, "", "eval", "let x = 1;", "echo x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "#!/usr/bin/env sh\n# compiled from <eval>\nx=1;\necho ${x}\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestEvalStdin(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "brush.toml", "[build]\ntype = \"release\"\n")
	stdout, _, err := execute(t, "echo \"hi\"\n", "--config", cfg, "eval", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "#!/usr/bin/env sh\necho \"hi\"\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestEvalDiagnostic(t *testing.T) {
	stdout, stderr, err := execute(t, "", "eval", "echo y")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if stdout != "" {
		t.Errorf("expected no script, got %q", stdout)
	}
	if !strings.Contains(stderr, "<eval>:1:6: Variable 'y' does not exist") {
		t.Errorf("expected diagnostic on stderr, got %q", stderr)
	}
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "main.br", "echo 1\n")

	if _, _, err := execute(t, "", "build", source, "--release"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := filepath.Join(dir, "main.sh")
	script, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("expected script at %s: %v", output, err)
	}
	if string(script) != "#!/usr/bin/env sh\necho 1\n" {
		t.Errorf("unexpected script %q", script)
	}

	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("expected the script to be executable, mode is %s", info.Mode())
	}
}

func TestBuildOutputFlag(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "main.br", "echo 1\n")
	output := filepath.Join(dir, "dist", "run.sh")

	if _, _, err := execute(t, "", "build", source, "-o", output); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	script, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("expected script at %s: %v", output, err)
	}
	if !strings.Contains(string(script), "# compiled from "+source) {
		t.Errorf("expected a debug header by default, got %q", script)
	}
}

func TestBuildRejectsConflictingModes(t *testing.T) {
	source := writeFile(t, t.TempDir(), "main.br", "echo 1\n")
	if _, _, err := execute(t, "", "build", source, "--release", "--debug"); err == nil {
		t.Errorf("expected --release and --debug to conflict")
	}
}

func TestBuildRefusesToOverwriteSource(t *testing.T) {
	source := writeFile(t, t.TempDir(), "main.sh", "echo 1\n")
	if _, _, err := execute(t, "", "build", source); err == nil {
		t.Errorf("expected an error when the output is the source")
	}
}

func TestEnv(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "brush.toml", "[emit]\narithmetic = \"shell\"\n")
	stdout, _, err := execute(t, "", "--config", cfg, "env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range []string{"emit.arithmetic='shell'", "build.type='debug'", "source='" + cfg + "'"} {
		if !strings.Contains(stdout, line+"\n") {
			t.Errorf("expected %q in output, got %q", line, stdout)
		}
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout, "brush v"+Version+"\n") {
		t.Errorf("unexpected output %q", stdout)
	}
}
