package exhibit

import "time"

// Field types determine what a dynamic field holds.
const (
	FieldTypeText      = "text"
	FieldTypeInteger   = "integer"
	FieldTypeFloat     = "float"
	FieldTypeBoolean   = "boolean"
	FieldTypeTimestamp = "timestamp"
	FieldTypeList      = "list"
)

// validFieldTypes is the set of recognized field types.
var validFieldTypes = map[string]bool{
	FieldTypeText:      true,
	FieldTypeInteger:   true,
	FieldTypeFloat:     true,
	FieldTypeBoolean:   true,
	FieldTypeTimestamp: true,
	FieldTypeList:      true,
}

// FieldValue is a type-tagged value for a dynamic field.
type FieldValue struct {
	Type  string // One of the FieldType constants.
	Value any
}

// Text wraps a string as a FieldValue.
func Text(s string) FieldValue { return FieldValue{Type: FieldTypeText, Value: s} }

// Integer wraps an int64 as a FieldValue.
func Integer(i int64) FieldValue { return FieldValue{Type: FieldTypeInteger, Value: i} }

// Float wraps a float64 as a FieldValue.
func Float(f float64) FieldValue { return FieldValue{Type: FieldTypeFloat, Value: f} }

// Boolean wraps a bool as a FieldValue.
func Boolean(b bool) FieldValue { return FieldValue{Type: FieldTypeBoolean, Value: b} }

// Timestamp wraps a time.Time as a FieldValue.
func Timestamp(t time.Time) FieldValue { return FieldValue{Type: FieldTypeTimestamp, Value: t} }

// List wraps a string slice as a FieldValue.
func List(items []string) FieldValue { return FieldValue{Type: FieldTypeList, Value: items} }

// IsValidFieldType reports whether the given string is a recognized
// field type.
func IsValidFieldType(ft string) bool {
	return validFieldTypes[ft]
}

// DefaultFieldValue returns the type-based default for a field type:
// "" for text, 0 for integer and float, false for boolean, the zero
// time for timestamp, and an empty string slice for list.
// Returns ErrFieldTypeUnknown if the type is not recognized.
func DefaultFieldValue(fieldType string) (FieldValue, error) {
	switch fieldType {
	case FieldTypeText:
		return Text(""), nil
	case FieldTypeInteger:
		return Integer(0), nil
	case FieldTypeFloat:
		return Float(0), nil
	case FieldTypeBoolean:
		return Boolean(false), nil
	case FieldTypeTimestamp:
		return Timestamp(time.Time{}), nil
	case FieldTypeList:
		return List([]string{}), nil
	default:
		return FieldValue{}, ErrFieldTypeUnknown
	}
}

// Container maps arbitrary field names to tagged values. Fields are
// assigned at runtime with no fixed schema and no validation of names
// or values.
type Container struct {
	fields map[string]FieldValue
}

// NewContainer creates an empty Container.
func NewContainer() *Container {
	return &Container{fields: make(map[string]FieldValue)}
}

// Set assigns the named field. Existing fields are overwritten,
// regardless of their previous type.
func (c *Container) Set(name string, value FieldValue) {
	if c.fields == nil {
		c.fields = make(map[string]FieldValue)
	}
	c.fields[name] = value
}

// Get returns the named field.
// Returns ErrFieldNotFound if the field was never assigned.
func (c *Container) Get(name string) (FieldValue, error) {
	v, ok := c.fields[name]
	if !ok {
		return FieldValue{}, ErrFieldNotFound
	}
	return v, nil
}

// Fields returns a copy of all assigned fields.
func (c *Container) Fields() map[string]FieldValue {
	result := make(map[string]FieldValue, len(c.fields))
	for k, v := range c.fields {
		result[k] = v
	}
	return result
}

// Clear resets the named field to its type-based default. The field
// stays assigned. Idempotent.
// Returns ErrFieldNotFound if the field was never assigned.
func (c *Container) Clear(name string) error {
	v, ok := c.fields[name]
	if !ok {
		return ErrFieldNotFound
	}
	def, err := DefaultFieldValue(v.Type)
	if err != nil {
		return err
	}
	c.fields[name] = def
	return nil
}

// Len returns the number of assigned fields.
func (c *Container) Len() int { return len(c.fields) }
