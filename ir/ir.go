// Package ir holds the generator-facing intermediate representation of an
// API surface.
//
// This is language-agnostic - the extractor produces it from a canonical
// spec document and each backend formats it differently. Nothing in this
// package depends on spec syntax or on any target language.
package ir

// Spec is the complete extracted description of one API.
type Spec struct {
	// Name is the service title taken from the spec's info block
	Name string

	// Servers lists base URLs the API is reachable at, in spec order.
	// The first entry is the default base URL for generated clients.
	Servers []string

	// Operations are the callable endpoints, sorted by path then method
	Operations []Operation

	// Records are the named data shapes, sorted by name
	Records []Record
}

// Operation is one callable endpoint.
type Operation struct {
	// Name is a snake_case identifier, from the operation id when the spec
	// provides one, otherwise derived from method and path
	Name string

	// Method is the upper-case HTTP method
	Method string

	// Path is the URL template as authored, e.g. "/pets/{petId}"
	Path string

	Summary string

	// Params are path/query/header parameters in authoring order
	Params []Param

	// Request is the request body shape, nil when the operation takes none
	Request *Type

	// Response is the primary success response shape, nil when the
	// operation returns no body
	Response *Type
}

// Param is a single operation parameter.
type Param struct {
	Name     string
	In       string // "path", "query", "header" or "cookie"
	Required bool
	Type     Type
}

// Record is a named data shape (an object schema).
type Record struct {
	Name        string
	Description string
	Fields      []Field
}

// Field is one member of a Record. Name is the wire name exactly as it
// appears in the spec; backends apply their own casing.
type Field struct {
	Name        string
	Type        Type
	Required    bool
	Description string
}

// Kind classifies a Type.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindArray  Kind = "array"
	KindMap    Kind = "map"
	KindRef    Kind = "ref"
	KindAny    Kind = "any"
)

// Type describes a value shape structurally.
type Type struct {
	Kind Kind

	// Ref names the target Record when Kind is KindRef
	Ref string

	// Elem is the element type when Kind is KindArray or KindMap
	Elem *Type

	// Nullable marks a value the API may return as null
	Nullable bool
}

// Record returns the named record and whether it exists.
func (s *Spec) Record(name string) (Record, bool) {
	for _, r := range s.Records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}
