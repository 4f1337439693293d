// Package openapi ingests API description files.
//
// It reads a spec file in whatever serialization format and schema version it
// was authored in, and normalizes it to a single canonical document shape.
// Everything downstream of this package is version-independent.
package openapi

import (
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"
)

// CanonicalDocument is the single schema version the rest of the system
// understands: OpenAPI 3.x as modeled by kin-openapi.
type CanonicalDocument = openapi3.T

// VersionedDocument is a spec in whatever schema version it was authored.
// Exactly one version arm is active. Produced by Read, consumed by Upgrade.
type VersionedDocument struct {
	// swagger holds the Swagger 2.0 arm
	swagger *openapi2.T

	// canonical holds the OpenAPI 3.x arm. For a Swagger 2.0 document it
	// holds the upgrade computed (and validated) at read time, which keeps
	// Upgrade total: malformed input is rejected by Read, never here.
	canonical *CanonicalDocument

	// version is the declared schema version string, e.g. "2.0" or "3.0.3"
	version string
}

// NewCanonical wraps an already-canonical document back into the versioned
// union. Upgrading the result is a no-op.
func NewCanonical(doc *CanonicalDocument) *VersionedDocument {
	version := ""
	if doc != nil {
		version = doc.OpenAPI
	}
	return &VersionedDocument{canonical: doc, version: version}
}

// Version returns the declared schema version of the document as authored.
func (d *VersionedDocument) Version() string {
	return d.version
}

// IsCanonical reports whether the document was authored in the canonical
// schema version.
func (d *VersionedDocument) IsCanonical() bool {
	return d.swagger == nil
}

// Upgrade converts the document to canonical form.
//
// Total over every value Read can produce: each supported version has a
// defined upgrade path, an already-canonical document passes through
// unchanged, and repeated application is a no-op.
func (d *VersionedDocument) Upgrade() *CanonicalDocument {
	return d.canonical
}
