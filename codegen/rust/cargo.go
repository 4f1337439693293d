package rust

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/clientforge/forge/codegen"
	"github.com/clientforge/forge/internal/util"
	"github.com/clientforge/forge/ir"
)

type manifestPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

type manifest struct {
	Package      manifestPackage `toml:"package"`
	Dependencies map[string]any  `toml:"dependencies"`
}

// CrateName derives the crate name from the canonical service name.
func CrateName(cfg codegen.Config) string {
	return util.ToSnakeCase(cfg.Name)
}

// GenerateCargoToml renders the crate manifest. Dependency versions track
// what the emitted code needs: serde for models, reqwest for the client,
// tokio for examples, plus whatever the feature flags pull in.
func GenerateCargoToml(spec *ir.Spec, cfg codegen.Config) string {
	deps := map[string]any{
		"serde":      map[string]any{"version": "1.0", "features": []string{"derive"}},
		"serde_json": "1.0",
		"reqwest":    map[string]any{"version": "0.12", "features": []string{"json"}},
		"tokio":      map[string]any{"version": "1", "features": []string{"full"}},
	}
	if cfg.HasFlag(codegen.FlagOrmlite) {
		deps["ormlite"] = "0.22"
	}
	if cfg.HasFlag(codegen.FlagFake) {
		deps["fake"] = map[string]any{"version": "2", "features": []string{"derive"}}
	}

	m := manifest{
		Package: manifestPackage{
			Name:    CrateName(cfg),
			Version: "0.1.0",
			Edition: "2021",
		},
		Dependencies: deps,
	}

	out, err := toml.Marshal(m)
	if err != nil {
		// The manifest is built from plain maps and strings; marshaling
		// cannot fail on this shape
		panic(err)
	}

	var sb strings.Builder
	sb.WriteString("# Generated by forge. Do not edit manually.\n")
	sb.Write(out)
	return sb.String()
}
