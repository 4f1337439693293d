// Package forge composes the spec-to-client-library pipeline.
//
// One invocation processes exactly one spec file through exactly one
// backend, start to finish:
//
//	read -> upgrade -> extract -> build config -> dispatch
//
// Each stage exclusively owns its output until handing it to the next; there
// is no retry logic and no partial-success state. The first failing stage
// stops the run and its error surfaces with stage context added and the
// original cause intact.
package forge

import (
	"github.com/clientforge/forge/codegen"
	"github.com/clientforge/forge/errors"
	"github.com/clientforge/forge/extractor"
	"github.com/clientforge/forge/logger"
	"github.com/clientforge/forge/openapi"
)

// Pipeline runs spec ingestion and generation dispatch.
type Pipeline struct {
	// Extractor turns the canonical document into the IR. Defaults to the
	// real extractor; tests substitute fakes.
	Extractor codegen.Extractor
}

// NewPipeline creates a Pipeline wired with the default extractor.
func NewPipeline() *Pipeline {
	return &Pipeline{Extractor: extractor.New()}
}

// Run generates a client library from the spec at specPath, configured by
// the invocation inputs.
func (p *Pipeline) Run(specPath string, in codegen.ConfigInputs) error {
	doc, err := openapi.Read(specPath)
	if err != nil {
		return errors.Wrap(err, "reading spec")
	}
	logger.Logger.Infow("spec read",
		"path", specPath,
		"version", doc.Version(),
		"canonical", doc.IsCanonical())

	canonical := doc.Upgrade()

	spec, err := p.Extractor.Extract(canonical)
	if err != nil {
		// Extraction failures are opaque here; surface them classified
		// but otherwise verbatim
		return errors.Wrap(errors.Mark(err, errors.ErrExtraction), "extracting spec")
	}
	logger.Logger.Infow("spec extracted",
		"service", spec.Name,
		"operations", len(spec.Operations),
		"records", len(spec.Records))

	cfg := codegen.BuildConfig(in)
	logger.Logger.Debugw("generation config",
		"name", cfg.Name,
		"dest", cfg.Dest,
		"language", cfg.Language.String(),
		"examples", cfg.BuildExamples,
		"derives", cfg.Derives,
		"flags", cfg.FlagNames())

	if err := Dispatch(cfg.Language, spec, cfg); err != nil {
		return err
	}

	logger.Logger.Infow("generation complete", "language", cfg.Language.String(), "dest", cfg.Dest)
	return nil
}

// Generate runs the full pipeline with the default extractor.
func Generate(specPath string, in codegen.ConfigInputs) error {
	return NewPipeline().Run(specPath, in)
}
