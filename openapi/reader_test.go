package openapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientforge/forge/errors"
)

const petstoreYAML = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: ok
`

const petstoreJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "Petstore", "version": "1.0.0"},
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadYAML(t *testing.T) {
	doc, err := Read(writeSpec(t, "spec.yaml", petstoreYAML))
	require.NoError(t, err)

	assert.True(t, doc.IsCanonical())
	assert.Equal(t, "3.0.3", doc.Version())
	assert.Equal(t, "Petstore", doc.Upgrade().Info.Title)
}

func TestReadJSON(t *testing.T) {
	doc, err := Read(writeSpec(t, "spec.json", petstoreJSON))
	require.NoError(t, err)

	assert.True(t, doc.IsCanonical())
	assert.Equal(t, "Petstore", doc.Upgrade().Info.Title)
}

func TestReadYAMLAndJSONAgree(t *testing.T) {
	// The same logical document serialized both ways must produce equal
	// versioned documents.
	fromYAML, err := Read(writeSpec(t, "spec.yaml", petstoreYAML))
	require.NoError(t, err)
	fromJSON, err := Read(writeSpec(t, "spec.json", petstoreJSON))
	require.NoError(t, err)

	yamlBytes, err := fromYAML.Upgrade().MarshalJSON()
	require.NoError(t, err)
	jsonBytes, err := fromJSON.Upgrade().MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(jsonBytes), string(yamlBytes))
}

func TestReadNoExtensionDefaultsToYAML(t *testing.T) {
	withExt, err := Read(writeSpec(t, "spec.yaml", petstoreYAML))
	require.NoError(t, err)
	without, err := Read(writeSpec(t, "spec", petstoreYAML))
	require.NoError(t, err)

	a, err := withExt.Upgrade().MarshalJSON()
	require.NoError(t, err)
	b, err := without.Upgrade().MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestReadUnknownExtensionDefaultsToYAML(t *testing.T) {
	doc, err := Read(writeSpec(t, "spec.txt", petstoreYAML))
	require.NoError(t, err)
	assert.Equal(t, "Petstore", doc.Upgrade().Info.Title)
}

func TestReadMissingFile(t *testing.T) {
	path := "/does/not/exist/spec.yaml"
	_, err := Read(path)

	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
	assert.Contains(t, err.Error(), path)
}

func TestReadMalformedYAML(t *testing.T) {
	_, err := Read(writeSpec(t, "spec.yaml", "openapi: 3.0.0\ninfo: ["))

	require.Error(t, err)
	assert.True(t, errors.IsParse(err))
	assert.False(t, errors.IsFileNotFound(err))
}

func TestReadMalformedJSON(t *testing.T) {
	_, err := Read(writeSpec(t, "spec.json", `{"openapi": "3.0.0", "info": {`))

	require.Error(t, err)
	assert.True(t, errors.IsParse(err))
}

func TestReadUnquotedVersionHeaders(t *testing.T) {
	// Unquoted version headers decode as YAML numbers, not strings.
	// They must still be recognized and deserialize into the full document.
	tests := []struct {
		name      string
		spec      string
		canonical bool
		version   string
	}{
		{
			name: "swagger 2.0",
			spec: `swagger: 2.0
info:
  title: Petstore
  version: 1.0.0
paths: {}
`,
			canonical: false,
			version:   "2.0",
		},
		{
			name: "openapi 3.0",
			spec: `openapi: 3.0
info:
  title: Petstore
  version: 1.0.0
paths: {}
`,
			canonical: true,
			version:   "3",
		},
		{
			name: "openapi 3.1",
			spec: `openapi: 3.1
info:
  title: Petstore
  version: 1.0.0
paths: {}
`,
			canonical: true,
			version:   "3.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Read(writeSpec(t, "spec.yaml", tt.spec))
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, doc.IsCanonical())
			assert.Equal(t, tt.version, doc.Version())
			assert.Equal(t, "Petstore", doc.Upgrade().Info.Title)
		})
	}
}

func TestReadRejectsUnknownVersions(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no version field", `{"info": {"title": "x", "version": "1"}}`},
		{"swagger 1.2", `{"swagger": "1.2", "info": {"title": "x", "version": "1"}}`},
		{"openapi 4", `{"openapi": "4.0.0", "info": {"title": "x", "version": "1"}}`},
		{"garbage version", `{"openapi": "not-a-version"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(writeSpec(t, "spec.json", tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsParse(err))
		})
	}
}
