// Package extractor turns a canonical spec document into the intermediate
// representation backends consume.
//
// Extraction is the only place that understands spec structure. Output is
// deterministic: paths, methods, schemas, and fields are all emitted in
// sorted order so regenerating from an unchanged spec produces an identical
// tree.
package extractor

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/clientforge/forge/errors"
	"github.com/clientforge/forge/internal/util"
	"github.com/clientforge/forge/ir"
	"github.com/clientforge/forge/openapi"
)

// Extractor implements codegen.Extractor for canonical OpenAPI documents.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract walks the document into an ir.Spec.
func (e *Extractor) Extract(doc *openapi.CanonicalDocument) (*ir.Spec, error) {
	if doc == nil {
		return nil, errors.Wrap(errors.ErrExtraction, "nil canonical document")
	}

	spec := &ir.Spec{}
	if doc.Info != nil {
		spec.Name = doc.Info.Title
	}
	for _, server := range doc.Servers {
		spec.Servers = append(spec.Servers, server.URL)
	}

	ops, err := extractOperations(doc)
	if err != nil {
		return nil, err
	}
	spec.Operations = ops

	records, err := extractRecords(doc)
	if err != nil {
		return nil, err
	}
	spec.Records = records

	return spec, nil
}

func extractOperations(doc *openapi.CanonicalDocument) ([]ir.Operation, error) {
	if doc.Paths == nil {
		return nil, nil
	}

	pathMap := doc.Paths.Map()
	paths := make([]string, 0, len(pathMap))
	for p := range pathMap {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var ops []ir.Operation
	for _, path := range paths {
		item := pathMap[path]
		if item == nil {
			continue
		}

		byMethod := item.Operations()
		methods := make([]string, 0, len(byMethod))
		for m := range byMethod {
			methods = append(methods, m)
		}
		sort.Strings(methods)

		for _, method := range methods {
			op, err := extractOperation(method, path, item, byMethod[method])
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
	}
	return ops, nil
}

func extractOperation(method, path string, item *openapi3.PathItem, src *openapi3.Operation) (ir.Operation, error) {
	op := ir.Operation{
		Name:    operationName(method, path, src),
		Method:  strings.ToUpper(method),
		Path:    path,
		Summary: src.Summary,
	}

	// Path-level parameters apply to every operation on the path and come
	// first, matching authoring order.
	for _, ref := range append(append(openapi3.Parameters{}, item.Parameters...), src.Parameters...) {
		if ref == nil || ref.Value == nil {
			continue
		}
		p := ref.Value
		typ, err := convertType(p.Schema)
		if err != nil {
			return ir.Operation{}, errors.Wrapf(err, "parameter %q of %s %s", p.Name, op.Method, path)
		}
		param := ir.Param{Name: p.Name, In: p.In, Required: p.Required}
		if typ != nil {
			param.Type = *typ
		} else {
			param.Type = ir.Type{Kind: ir.KindAny}
		}
		op.Params = append(op.Params, param)
	}

	if src.RequestBody != nil && src.RequestBody.Value != nil {
		typ, err := convertType(primarySchema(src.RequestBody.Value.Content))
		if err != nil {
			return ir.Operation{}, errors.Wrapf(err, "request body of %s %s", op.Method, path)
		}
		op.Request = typ
	}

	if schema := successSchema(src.Responses); schema != nil {
		typ, err := convertType(schema)
		if err != nil {
			return ir.Operation{}, errors.Wrapf(err, "response of %s %s", op.Method, path)
		}
		op.Response = typ
	}

	return op, nil
}

// operationName prefers the authored operation id, falling back to a name
// derived from method and path.
func operationName(method, path string, src *openapi3.Operation) string {
	if src.OperationID != "" {
		return util.ToSnakeCase(src.OperationID)
	}
	return util.SanitizeIdent(strings.ToLower(method) + " " + path)
}

// successSchema picks the primary success response body: the lowest 2xx
// status with content, falling back to the default response.
func successSchema(responses *openapi3.Responses) *openapi3.SchemaRef {
	if responses == nil {
		return nil
	}
	byStatus := responses.Map()
	statuses := make([]string, 0, len(byStatus))
	for s := range byStatus {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)

	for _, status := range statuses {
		if !strings.HasPrefix(status, "2") {
			continue
		}
		if ref := byStatus[status]; ref != nil && ref.Value != nil {
			if schema := primarySchema(ref.Value.Content); schema != nil {
				return schema
			}
		}
	}
	if ref := byStatus["default"]; ref != nil && ref.Value != nil {
		return primarySchema(ref.Value.Content)
	}
	return nil
}

// primarySchema picks the schema of the JSON media type when present,
// otherwise the first media type in sorted order.
func primarySchema(content openapi3.Content) *openapi3.SchemaRef {
	if len(content) == 0 {
		return nil
	}
	if mt, ok := content["application/json"]; ok && mt != nil {
		return mt.Schema
	}
	names := make([]string, 0, len(content))
	for name := range content {
		names = append(names, name)
	}
	sort.Strings(names)
	if mt := content[names[0]]; mt != nil {
		return mt.Schema
	}
	return nil
}

func extractRecords(doc *openapi.CanonicalDocument) ([]ir.Record, error) {
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var records []ir.Record
	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			return nil, errors.Wrapf(errors.ErrExtraction, "component schema %q has no value", name)
		}
		record, err := extractRecord(name, ref.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "component schema %q", name)
		}
		records = append(records, record)
	}
	return records, nil
}

func extractRecord(name string, schema *openapi3.Schema) (ir.Record, error) {
	record := ir.Record{Name: name, Description: schema.Description}

	required := make(map[string]bool, len(schema.Required))
	for _, r := range schema.Required {
		required[r] = true
	}

	fieldNames := make([]string, 0, len(schema.Properties))
	for fieldName := range schema.Properties {
		fieldNames = append(fieldNames, fieldName)
	}
	sort.Strings(fieldNames)

	for _, fieldName := range fieldNames {
		typ, err := convertType(schema.Properties[fieldName])
		if err != nil {
			return ir.Record{}, errors.Wrapf(err, "property %q", fieldName)
		}
		field := ir.Field{
			Name:     fieldName,
			Required: required[fieldName],
		}
		if prop := schema.Properties[fieldName].Value; prop != nil {
			field.Description = prop.Description
		}
		if typ != nil {
			field.Type = *typ
		} else {
			field.Type = ir.Type{Kind: ir.KindAny}
		}
		record.Fields = append(record.Fields, field)
	}
	return record, nil
}

// convertType maps a schema reference to an ir.Type. A nil ref converts to
// nil (no shape).
func convertType(ref *openapi3.SchemaRef) (*ir.Type, error) {
	if ref == nil {
		return nil, nil
	}
	if ref.Ref != "" {
		parts := strings.Split(ref.Ref, "/")
		return &ir.Type{Kind: ir.KindRef, Ref: parts[len(parts)-1]}, nil
	}
	schema := ref.Value
	if schema == nil {
		return nil, errors.Wrap(errors.ErrExtraction, "unresolved schema reference")
	}

	typ := &ir.Type{Nullable: schema.Nullable}
	switch {
	case schema.Type.Is(openapi3.TypeString):
		typ.Kind = ir.KindString
	case schema.Type.Is(openapi3.TypeInteger):
		typ.Kind = ir.KindInt
	case schema.Type.Is(openapi3.TypeNumber):
		typ.Kind = ir.KindFloat
	case schema.Type.Is(openapi3.TypeBoolean):
		typ.Kind = ir.KindBool
	case schema.Type.Is(openapi3.TypeArray):
		elem, err := convertType(schema.Items)
		if err != nil {
			return nil, err
		}
		if elem == nil {
			elem = &ir.Type{Kind: ir.KindAny}
		}
		typ.Kind = ir.KindArray
		typ.Elem = elem
	case schema.Type.Is(openapi3.TypeObject):
		if schema.AdditionalProperties.Schema != nil {
			elem, err := convertType(schema.AdditionalProperties.Schema)
			if err != nil {
				return nil, err
			}
			typ.Kind = ir.KindMap
			typ.Elem = elem
			break
		}
		// Inline object shapes are not lifted into named records
		typ.Kind = ir.KindAny
	default:
		typ.Kind = ir.KindAny
	}
	return typ, nil
}
