package llm

// SchemaType names the value types accepted in a response schema.
type SchemaType string

const (
	TypeString  SchemaType = "STRING"
	TypeNumber  SchemaType = "NUMBER"
	TypeInteger SchemaType = "INTEGER"
	TypeBoolean SchemaType = "BOOLEAN"
	TypeArray   SchemaType = "ARRAY"
	TypeObject  SchemaType = "OBJECT"
)

// Schema is the subset of the OpenAPI schema object the generateContent API
// accepts as responseSchema.
type Schema struct {
	Type             SchemaType         `json:"type"`
	Description      string             `json:"description,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
	Required         []string           `json:"required,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
}

func String(desc string) *Schema  { return &Schema{Type: TypeString, Description: desc} }
func Number(desc string) *Schema  { return &Schema{Type: TypeNumber, Description: desc} }
func Integer(desc string) *Schema { return &Schema{Type: TypeInteger, Description: desc} }

func ArrayOf(items *Schema, desc string) *Schema {
	return &Schema{Type: TypeArray, Items: items, Description: desc}
}

// Field is one named property of an object schema.
type Field struct {
	Name   string
	Schema *Schema
}

// Object builds an object schema whose fields are all required, in order.
func Object(fields ...Field) *Schema {
	s := &Schema{Type: TypeObject, Properties: make(map[string]*Schema, len(fields))}
	for _, f := range fields {
		s.Properties[f.Name] = f.Schema
		s.Required = append(s.Required, f.Name)
		s.PropertyOrdering = append(s.PropertyOrdering, f.Name)
	}
	return s
}
