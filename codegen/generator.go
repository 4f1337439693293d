// Package codegen defines the generation contract shared by every target
// language backend: the closed language enumeration, the immutable
// generation configuration, and the Generator interface backends implement.
//
// The dispatch seam lives in the root forge package, which maps each
// Language member to its backend. This package stays free of backend
// imports so backends can depend on it.
package codegen

import (
	"github.com/clientforge/forge/ir"
	"github.com/clientforge/forge/openapi"
)

// Generator is a language backend's code-emission entry point.
//
// Generate writes a complete client-library source tree for spec under
// cfg.Dest. It makes no atomicity promise: on failure the destination may
// hold a partial tree.
type Generator interface {
	// Language returns the target this backend generates
	Language() Language

	// Generate emits the source tree for spec as configured by cfg
	Generate(spec *ir.Spec, cfg Config) error
}

// Extractor turns a canonical document into the generator-facing
// intermediate representation.
type Extractor interface {
	Extract(doc *openapi.CanonicalDocument) (*ir.Spec, error)
}
