package openapi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"gopkg.in/yaml.v3"

	"github.com/clientforge/forge/errors"
)

// Read opens the spec file at path and deserializes it into a versioned
// document.
//
// The serialization format is inferred from the file extension: .json is
// read as JSON, .yaml/.yml as YAML. Any other or missing extension is read
// as YAML rather than rejected. This default is deliberate and load-bearing:
// extensionless specs are common in the wild and almost always YAML. A JSON
// body behind an unknown extension may still parse, since YAML is a JSON
// superset. Do not "fix" this to fail loudly.
//
// Failure modes:
//   - errors.ErrFileNotFound when the file cannot be opened (includes path)
//   - errors.ErrUnsupportedExtension when the extension is not valid text
//   - errors.ErrParse when deserialization fails (includes the cause)
func Read(path string) (*VersionedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrFileNotFound), "opening spec %s", path)
	}

	ext := filepath.Ext(path)
	if ext != "" && !utf8.ValidString(ext) {
		// An unreadable extension is a caller/environment fault, not a
		// spec fault. Never default it to YAML.
		return nil, errors.Wrapf(errors.ErrUnsupportedExtension, "spec %s", path)
	}

	var jsonData []byte
	switch strings.ToLower(ext) {
	case ".json":
		jsonData = data
	default: // ".yaml", ".yml", and everything else
		jsonData, err = yamlToJSON(data)
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, errors.ErrParse), "deserializing spec %s", path)
		}
	}

	doc, err := decode(jsonData)
	if err != nil {
		return nil, errors.Wrapf(err, "spec %s", path)
	}
	return doc, nil
}

// decode picks the version arm from the document's declared schema version
// and deserializes into it.
func decode(jsonData []byte) (*VersionedDocument, error) {
	var header struct {
		Swagger any `json:"swagger"`
		OpenAPI any `json:"openapi"`
	}
	if err := json.Unmarshal(jsonData, &header); err != nil {
		return nil, errors.Wrap(errors.Mark(err, errors.ErrParse), "reading spec version header")
	}

	switch {
	case header.Swagger != nil:
		swaggerVersion := versionString(header.Swagger)
		declared, err := semver.NewVersion(swaggerVersion)
		if err != nil || declared.Major() != 2 || declared.Minor() != 0 {
			return nil, errors.Wrapf(errors.ErrParse, "unsupported swagger version %q", swaggerVersion)
		}
		if _, quoted := header.Swagger.(string); !quoted {
			// The gate accepted a numeric header, but the document's version
			// field is a string. Rewrite it so both see the same value.
			swaggerVersion = "2.0"
			if jsonData, err = setVersionField(jsonData, "swagger", swaggerVersion); err != nil {
				return nil, errors.Wrap(errors.Mark(err, errors.ErrParse), "normalizing swagger version header")
			}
		}
		var doc openapi2.T
		if err := json.Unmarshal(jsonData, &doc); err != nil {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrParse), "deserializing swagger 2.0 document")
		}
		// Validate the upgrade path now so Upgrade stays total. A 2.0
		// document that cannot convert is malformed input, and rejecting
		// malformed input is the reader's job.
		upgraded, err := openapi2conv.ToV3(&doc)
		if err != nil {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrParse), "swagger 2.0 document has no upgrade path")
		}
		return &VersionedDocument{swagger: &doc, canonical: upgraded, version: swaggerVersion}, nil

	case header.OpenAPI != nil:
		openapiVersion := versionString(header.OpenAPI)
		declared, err := semver.NewVersion(openapiVersion)
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, errors.ErrParse), "invalid openapi version %q", openapiVersion)
		}
		if declared.Major() != 3 {
			return nil, errors.Wrapf(errors.ErrParse, "unsupported openapi version %q", openapiVersion)
		}
		if _, quoted := header.OpenAPI.(string); !quoted {
			if jsonData, err = setVersionField(jsonData, "openapi", openapiVersion); err != nil {
				return nil, errors.Wrap(errors.Mark(err, errors.ErrParse), "normalizing openapi version header")
			}
		}
		var doc CanonicalDocument
		if err := json.Unmarshal(jsonData, &doc); err != nil {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrParse), "deserializing openapi 3 document")
		}
		return &VersionedDocument{canonical: &doc, version: openapiVersion}, nil
	}

	return nil, errors.Wrap(errors.ErrParse, "document declares no swagger/openapi version")
}

// setVersionField rewrites the document's version header to its canonical
// string form. Unquoted version numbers pass the gate above but would fail
// the document unmarshal, whose version fields are strings.
func setVersionField(jsonData []byte, field, value string) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(jsonData, &m); err != nil {
		return nil, err
	}
	m[field] = value
	return json.Marshal(m)
}

// versionString renders a decoded version header value. YAML authors leave
// versions unquoted often enough ("swagger: 2.0" decodes as a number) that
// rejecting non-strings here would be hostile.
func versionString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// yamlToJSON re-encodes a YAML document as JSON so both formats flow through
// the same version-tagged deserialization.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(stringifyKeys(v))
}

// stringifyKeys rewrites map keys to strings. yaml.v3 decodes mappings with
// non-string keys into map[any]any, which encoding/json refuses.
func stringifyKeys(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, val := range v {
			v[k] = stringifyKeys(val)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = stringifyKeys(val)
		}
		return m
	case []any:
		for i := range v {
			v[i] = stringifyKeys(v[i])
		}
		return v
	}
	return v
}
