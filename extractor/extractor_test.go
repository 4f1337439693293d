package extractor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientforge/forge/errors"
	"github.com/clientforge/forge/ir"
	"github.com/clientforge/forge/openapi"
)

const petstore = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
servers:
  - url: https://api.example.com/v1
paths:
  /pets:
    get:
      operationId: listPets
      summary: List all pets
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: "#/components/schemas/Pet"
    post:
      operationId: createPet
      requestBody:
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/NewPet"
      responses:
        "201":
          description: created
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema:
          type: string
    get:
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      description: A pet.
      required: [id, name]
      properties:
        id:
          type: integer
        name:
          type: string
        tag:
          type: string
          nullable: true
        labels:
          type: object
          additionalProperties:
            type: string
    NewPet:
      type: object
      required: [name]
      properties:
        name:
          type: string
`

func loadPetstore(t *testing.T) *ir.Spec {
	t.Helper()
	path := filepath.Join(t.TempDir(), "petstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstore), 0o644))

	doc, err := openapi.Read(path)
	require.NoError(t, err)

	spec, err := New().Extract(doc.Upgrade())
	require.NoError(t, err)
	return spec
}

func TestExtractServiceShape(t *testing.T) {
	spec := loadPetstore(t)

	assert.Equal(t, "Petstore", spec.Name)
	assert.Equal(t, []string{"https://api.example.com/v1"}, spec.Servers)
}

func TestExtractOperations(t *testing.T) {
	spec := loadPetstore(t)

	require.Len(t, spec.Operations, 3)

	// Sorted by path, then method
	assert.Equal(t, "list_pets", spec.Operations[0].Name)
	assert.Equal(t, "create_pet", spec.Operations[1].Name)
	assert.Equal(t, "get_pets_pet_id", spec.Operations[2].Name)

	list := spec.Operations[0]
	assert.Equal(t, "GET", list.Method)
	assert.Equal(t, "/pets", list.Path)
	assert.Equal(t, "List all pets", list.Summary)
	require.NotNil(t, list.Response)
	assert.Equal(t, ir.KindArray, list.Response.Kind)
	require.NotNil(t, list.Response.Elem)
	assert.Equal(t, ir.KindRef, list.Response.Elem.Kind)
	assert.Equal(t, "Pet", list.Response.Elem.Ref)
	require.Len(t, list.Params, 1)
	assert.Equal(t, ir.Param{Name: "limit", In: "query", Type: ir.Type{Kind: ir.KindInt}}, list.Params[0])

	create := spec.Operations[1]
	assert.Equal(t, "POST", create.Method)
	require.NotNil(t, create.Request)
	assert.Equal(t, ir.Type{Kind: ir.KindRef, Ref: "NewPet"}, *create.Request)
	require.NotNil(t, create.Response)
	assert.Equal(t, "Pet", create.Response.Ref)
}

func TestExtractInheritsPathLevelParams(t *testing.T) {
	spec := loadPetstore(t)

	get := spec.Operations[2]
	assert.Equal(t, "/pets/{petId}", get.Path)
	require.Len(t, get.Params, 1)
	assert.Equal(t, "petId", get.Params[0].Name)
	assert.Equal(t, "path", get.Params[0].In)
	assert.True(t, get.Params[0].Required)
	assert.Equal(t, ir.KindString, get.Params[0].Type.Kind)
}

func TestExtractRecords(t *testing.T) {
	spec := loadPetstore(t)

	require.Len(t, spec.Records, 2)
	assert.Equal(t, "NewPet", spec.Records[0].Name)
	assert.Equal(t, "Pet", spec.Records[1].Name)

	pet, ok := spec.Record("Pet")
	require.True(t, ok)
	assert.Equal(t, "A pet.", pet.Description)

	// Fields come out sorted by name
	require.Len(t, pet.Fields, 4)
	assert.Equal(t, "id", pet.Fields[0].Name)
	assert.Equal(t, "labels", pet.Fields[1].Name)
	assert.Equal(t, "name", pet.Fields[2].Name)
	assert.Equal(t, "tag", pet.Fields[3].Name)

	assert.True(t, pet.Fields[0].Required)
	assert.Equal(t, ir.KindInt, pet.Fields[0].Type.Kind)

	labels := pet.Fields[1]
	assert.False(t, labels.Required)
	assert.Equal(t, ir.KindMap, labels.Type.Kind)
	require.NotNil(t, labels.Type.Elem)
	assert.Equal(t, ir.KindString, labels.Type.Elem.Kind)

	tag := pet.Fields[3]
	assert.False(t, tag.Required)
	assert.Equal(t, ir.KindString, tag.Type.Kind)
	assert.True(t, tag.Type.Nullable)
}

func TestExtractDeterministic(t *testing.T) {
	a := loadPetstore(t)
	b := loadPetstore(t)
	assert.Equal(t, a, b)
}

func TestExtractNilDocument(t *testing.T) {
	_, err := New().Extract(nil)
	require.Error(t, err)
	assert.True(t, errors.IsExtraction(err))
}
