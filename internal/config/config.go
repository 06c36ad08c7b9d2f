package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	APP_NAME    = "brush"
	CONFIG_FILE = "brush.toml"
)

var (
	DEFAULT_SHEBANG = "#!/usr/bin/env sh"
	DEFAULT_INDENT  = 4
)

type Config struct {
	Build BuildConfig `toml:"build"`
	Emit  EmitConfig  `toml:"emit"`

	// Path of the file the configuration was read from, empty for defaults
	Source string `toml:"-"`
}

type BuildConfig struct {
	Type    string `toml:"type"`
	Shebang string `toml:"shebang"`

	Kind BuildType `toml:"-"`
}

type EmitConfig struct {
	Indent     int    `toml:"indent"`
	Arithmetic string `toml:"arithmetic"`

	Arith ArithType `toml:"-"`
}

func Default() *Config {
	return &Config{
		Build: BuildConfig{
			Type:    DEBUG.String(),
			Shebang: DEFAULT_SHEBANG,
			Kind:    DEBUG,
		},
		Emit: EmitConfig{
			Indent:     DEFAULT_INDENT,
			Arithmetic: ARITH_BC_SED.String(),
			Arith:      ARITH_BC_SED,
		},
	}
}

// Load reads the configuration at path. An empty path searches the working
// directory and then the user configuration directory, falling back to the
// defaults when neither holds a config file.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := Find()
		if err != nil {
			return nil, err
		}
		path = found
	}

	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Decode overlays configuration text on the defaults. Unknown keys and
// invalid values are errors.
func Decode(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find returns the first existing config file, or "" when there is none
func Find() (string, error) {
	if fileExists(CONFIG_FILE) {
		return CONFIG_FILE, nil
	}

	cfgDir, err := getConfigDir(APP_NAME)
	if err != nil {
		// No home directory is not fatal, defaults still apply
		return "", nil
	}
	path := filepath.Join(cfgDir, CONFIG_FILE)
	if fileExists(path) {
		return path, nil
	}
	return "", nil
}

func (cfg *Config) resolve() error {
	buildType, err := ParseBuildType(cfg.Build.Type)
	if err != nil {
		return err
	}
	cfg.Build.Kind = buildType

	arith, err := ParseArithType(cfg.Emit.Arithmetic)
	if err != nil {
		return err
	}
	cfg.Emit.Arith = arith

	if cfg.Emit.Indent < 0 {
		return errors.New("emit.indent must not be negative")
	}
	return nil
}

// SetBuildType overrides the build type, e.g. from a command line flag
func (cfg *Config) SetBuildType(bt BuildType) {
	cfg.Build.Kind = bt
	cfg.Build.Type = bt.String()
}

// ShowAll prints every configuration key as section.key='value'
func (cfg *Config) ShowAll(w io.Writer) {
	v := reflect.ValueOf(cfg).Elem()

	for i := 0; i < v.NumField(); i++ {
		section := v.Type().Field(i)
		sectionTag := section.Tag.Get("toml")
		if sectionTag == "" || sectionTag == "-" || section.Type.Kind() != reflect.Struct {
			continue
		}

		sectionValue := v.Field(i)
		for j := 0; j < sectionValue.NumField(); j++ {
			field := sectionValue.Type().Field(j)
			tag := field.Tag.Get("toml")
			if tag == "" || tag == "-" {
				continue
			}
			fmt.Fprintf(w, "%s.%s='%v'\n", sectionTag, tag, sectionValue.Field(j).Interface())
		}
	}

	source := cfg.Source
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(w, "source='%s'\n", source)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
