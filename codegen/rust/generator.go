// Package rust emits a Rust client crate from the intermediate
// representation: a Cargo manifest, model structs with serde derives, a
// client with one method per operation, and optional usage examples.
package rust

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clientforge/forge/codegen"
	"github.com/clientforge/forge/errors"
	"github.com/clientforge/forge/internal/util"
	"github.com/clientforge/forge/ir"
	"github.com/clientforge/forge/logger"
)

// Generator implements codegen.Generator for Rust.
type Generator struct{}

// NewGenerator creates a new Rust generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns codegen.LanguageRust.
func (g *Generator) Language() codegen.Language {
	return codegen.LanguageRust
}

// Generate writes a complete crate under cfg.Dest:
//
//	Cargo.toml
//	src/lib.rs      client struct, one method per operation
//	src/model.rs    one struct per record
//	examples/*.rs   one per operation, when cfg.BuildExamples
//
// No atomicity: a failed run may leave a partial tree behind.
func (g *Generator) Generate(spec *ir.Spec, cfg codegen.Config) error {
	files := map[string]string{
		"Cargo.toml":   GenerateCargoToml(spec, cfg),
		"src/lib.rs":   GenerateLibRs(spec, cfg),
		"src/model.rs": GenerateModelRs(spec, cfg),
	}
	if cfg.BuildExamples {
		for _, op := range spec.Operations {
			files[filepath.Join("examples", op.Name+".rs")] = GenerateExample(spec, op, cfg)
		}
	}

	for rel, content := range files {
		path := filepath.Join(cfg.Dest, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.Wrapf(errors.Mark(err, errors.ErrGeneration), "rust backend: creating %s", filepath.Dir(path))
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return errors.Wrapf(errors.Mark(err, errors.ErrGeneration), "rust backend: writing %s", path)
		}
		logger.Logger.Debugw("wrote generated file", "path", path, "bytes", len(content))
	}
	return nil
}

// TypeMapping defines how IR primitive kinds map to Rust types
var TypeMapping = map[ir.Kind]string{
	ir.KindString: "String",
	ir.KindInt:    "i64",
	ir.KindFloat:  "f64",
	ir.KindBool:   "bool",
	ir.KindAny:    "serde_json::Value",
}

// RustType renders an ir.Type as Rust source. Nullability is handled by the
// caller because required-ness also feeds into Option wrapping.
func RustType(t ir.Type) string {
	switch t.Kind {
	case ir.KindRef:
		return t.Ref
	case ir.KindArray:
		return "Vec<" + elemType(t.Elem) + ">"
	case ir.KindMap:
		return fmt.Sprintf("std::collections::HashMap<String, %s>", elemType(t.Elem))
	default:
		if mapped, ok := TypeMapping[t.Kind]; ok {
			return mapped
		}
		return "serde_json::Value"
	}
}

func elemType(t *ir.Type) string {
	if t == nil {
		return "serde_json::Value"
	}
	return RustType(*t)
}

// deriveLine builds the #[derive(...)] attribute for generated structs:
// the serde baseline, then caller-supplied derives verbatim and in order,
// then feature-flag derives.
func deriveLine(cfg codegen.Config) string {
	derives := []string{"Debug", "Clone", "serde::Serialize", "serde::Deserialize"}
	derives = append(derives, cfg.Derives...)
	if cfg.HasFlag(codegen.FlagOrmlite) {
		derives = append(derives, "ormlite::TableMeta")
	}
	if cfg.HasFlag(codegen.FlagFake) {
		derives = append(derives, "fake::Dummy")
	}
	return "#[derive(" + strings.Join(derives, ", ") + ")]"
}

// GenerateModelRs renders src/model.rs with one struct per record.
func GenerateModelRs(spec *ir.Spec, cfg codegen.Config) string {
	var sb strings.Builder
	sb.WriteString("//! Data models for the " + cfg.Name + " API.\n")
	sb.WriteString("//! Generated by forge. Do not edit manually.\n\n")

	for i, record := range spec.Records {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(GenerateStruct(record, cfg))
	}
	return sb.String()
}

// GenerateStruct renders a single record as a Rust struct.
func GenerateStruct(record ir.Record, cfg codegen.Config) string {
	var sb strings.Builder

	if record.Description != "" {
		for _, line := range strings.Split(strings.TrimRight(record.Description, "\n"), "\n") {
			sb.WriteString("/// " + line + "\n")
		}
	}
	sb.WriteString(deriveLine(cfg) + "\n")
	sb.WriteString("pub struct " + record.Name + " {\n")

	for _, field := range record.Fields {
		rustName := util.ToSnakeCase(field.Name)
		optional := !field.Required || field.Type.Nullable

		if field.Name != rustName {
			sb.WriteString(fmt.Sprintf("    #[serde(rename = %q)]\n", field.Name))
		}
		if optional {
			sb.WriteString("    #[serde(skip_serializing_if = \"Option::is_none\")]\n")
		}

		rustType := RustType(field.Type)
		if optional {
			rustType = "Option<" + rustType + ">"
		}
		sb.WriteString(fmt.Sprintf("    pub %s: %s,\n", rustName, rustType))
	}

	sb.WriteString("}\n")
	return sb.String()
}
