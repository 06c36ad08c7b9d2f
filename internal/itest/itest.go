// Package itest holds the helpers of the end-to-end compilation tests:
// compiling sources with a silent collector and loading golden cases.
package itest

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/HicaroD/brush/internal/compiler"
	"github.com/HicaroD/brush/internal/config"
	"github.com/HicaroD/brush/internal/diagnostics"
)

// Case is a golden compilation case. Exactly one of Script and Error is
// expected to be set: the full expected script, or a substring of the
// expected diagnostic.
type Case struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	// TOML text overlaid on the test configuration
	Config string `yaml:"config"`
	Script string `yaml:"script"`
	Error  string `yaml:"error"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file caseFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", path, err)
	}

	for i, c := range file.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("%s: case %d has no name", path, i)
		}
		if (c.Script == "") == (c.Error == "") {
			return nil, fmt.Errorf("%s: case %q needs exactly one of script or error", path, c.Name)
		}
	}
	return file.Cases, nil
}

// NewConfig builds the configuration of a case with overlay applied on top
// of the defaults. Unless the overlay has a [build] table the build type is
// release, so that no debug header appears.
func NewConfig(overlay string) (*config.Config, error) {
	cfg, err := config.Decode(overlay)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(overlay, "[build]") {
		cfg.SetBuildType(config.RELEASE)
	}
	return cfg, nil
}

func Compile(filename, src string, cfg *config.Config) (string, *diagnostics.Collector) {
	collector := diagnostics.NewWithWriter(&bytes.Buffer{})
	script, _ := compiler.New(cfg, collector).Compile(filename, []byte(src))
	return script, collector
}

func CompileFile(path string) (string, *diagnostics.Collector) {
	cfg, _ := NewConfig("")
	collector := diagnostics.NewWithWriter(&bytes.Buffer{})
	script, err := compiler.New(cfg, collector).CompileFile(path)
	if err != nil && !collector.HasErrors() {
		collector.ReportAndSave(diagnostics.Diag{Message: err.Error()})
	}
	return script, collector
}
