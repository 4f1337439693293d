package codegen

import (
	"strings"

	"github.com/clientforge/forge/internal/util"
)

// Flag is a named feature flag interpreted by individual backends.
// Unknown flags are carried through untouched; a backend that does not
// understand a flag ignores it.
type Flag string

const (
	// FlagOrmlite adds ORM-mapping metadata to generated models
	// (ormlite::TableMeta derives, Rust only)
	FlagOrmlite Flag = "ormlite"

	// FlagFake adds test-data synthesis metadata to generated models
	// (fake::Dummy derives, Rust only)
	FlagFake Flag = "fake"
)

// ParseFlag maps a user spelling to a feature flag.
func ParseFlag(s string) (Flag, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ormlite":
		return FlagOrmlite, true
	case "fake":
		return FlagFake, true
	default:
		return "", false
	}
}

// ConfigInputs are the invocation-level inputs the CLI layer collects.
type ConfigInputs struct {
	// Name is the service name as supplied, e.g. "stripe" or "my_api"
	Name string

	// OutputDir is where the source tree is written; empty means the
	// current working directory
	OutputDir string

	// Derives are extra derive/annotation names to attach to generated
	// models, in caller order
	Derives []string

	// BuildExamples toggles example generation
	BuildExamples bool

	// Flags are named feature flags
	Flags []Flag

	// Language is the generation target
	Language Language
}

// Config is the generation configuration consumed by every backend.
// Built once per invocation and never mutated afterwards, so each backend
// observes identical configuration.
type Config struct {
	// Name is the canonical service name in PascalCase
	Name string

	// Dest is the output directory
	Dest string

	// Derives is the caller-supplied derive list, verbatim and in order.
	// No deduplication or validation: backends interpret or reject
	// unknown names themselves.
	Derives []string

	// BuildExamples toggles example generation
	BuildExamples bool

	// Language is the generation target
	Language Language

	flags map[Flag]struct{}
}

// BuildConfig assembles the immutable generation configuration from
// invocation inputs. Pure data transformation: same inputs always produce
// an equal Config, and it cannot fail.
func BuildConfig(in ConfigInputs) Config {
	dest := in.OutputDir
	if dest == "" {
		dest = "."
	}

	derives := make([]string, len(in.Derives))
	copy(derives, in.Derives)

	flags := make(map[Flag]struct{}, len(in.Flags))
	for _, f := range in.Flags {
		flags[f] = struct{}{}
	}

	return Config{
		Name:          util.ToPascalCase(in.Name),
		Dest:          dest,
		Derives:       derives,
		BuildExamples: in.BuildExamples,
		Language:      in.Language,
		flags:         flags,
	}
}

// HasFlag reports whether the named feature flag was requested.
func (c Config) HasFlag(f Flag) bool {
	_, ok := c.flags[f]
	return ok
}

// FlagNames returns the requested flags in stable order, for logging.
func (c Config) FlagNames() []string {
	names := make([]string, 0, len(c.flags))
	for _, f := range []Flag{FlagOrmlite, FlagFake} {
		if _, ok := c.flags[f]; ok {
			names = append(names, string(f))
		}
	}
	return names
}
