package forge

import (
	"github.com/clientforge/forge/codegen"
	"github.com/clientforge/forge/codegen/rust"
	"github.com/clientforge/forge/errors"
	"github.com/clientforge/forge/ir"
)

// backendFor maps a target language to its backend.
//
// This switch is the single registration point for backends: adding a
// language is one new member in codegen.Languages() and one new arm here.
// TestDispatchCoversEveryLanguage walks the enumeration, so a member
// without an arm fails the build gates instead of silently dropping
// requests.
func backendFor(lang codegen.Language) codegen.Generator {
	switch lang {
	case codegen.LanguageRust:
		return rust.NewGenerator()
	default:
		return nil
	}
}

// Dispatch routes the extracted spec and configuration to the backend
// registered for lang. Pure routing: the IR and config pass through
// untouched, and the backend's error comes back with only the backend name
// added as context.
func Dispatch(lang codegen.Language, spec *ir.Spec, cfg codegen.Config) error {
	backend := backendFor(lang)
	if backend == nil {
		// Only reachable with a Language that bypassed ParseLanguage
		return errors.Wrapf(errors.ErrGeneration, "no backend registered for language %q", lang)
	}
	if err := backend.Generate(spec, cfg); err != nil {
		return errors.Wrapf(err, "backend %s", backend.Language())
	}
	return nil
}
