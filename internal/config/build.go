package config

import "fmt"

// DEV is set from the DevMode ldflags variable of the CLI
var DEV bool

func SetDevMode(dev bool) {
	DEV = dev
}

type BuildType int

const (
	RELEASE BuildType = iota
	DEBUG
)

func (bt BuildType) String() string {
	switch bt {
	case RELEASE:
		return "release"
	case DEBUG:
		return "debug"
	}
	return "unknown"
}

func ParseBuildType(name string) (BuildType, error) {
	switch name {
	case "release":
		return RELEASE, nil
	case "debug":
		return DEBUG, nil
	}
	return DEBUG, fmt.Errorf("unknown build type %q, expected 'debug' or 'release'", name)
}

// ArithType selects how arithmetic and comparisons are rendered
type ArithType int

const (
	// bc(1) piped through sed(1), supports fractional numbers
	ARITH_BC_SED ArithType = iota
	// POSIX $(( )) expansion, integers only
	ARITH_SHELL
)

func (at ArithType) String() string {
	switch at {
	case ARITH_BC_SED:
		return "bc"
	case ARITH_SHELL:
		return "shell"
	}
	return "unknown"
}

func ParseArithType(name string) (ArithType, error) {
	switch name {
	case "bc":
		return ARITH_BC_SED, nil
	case "shell":
		return ARITH_SHELL, nil
	}
	return ARITH_BC_SED, fmt.Errorf("unknown arithmetic backend %q, expected 'bc' or 'shell'", name)
}
