package core

// TypeTag identifies the stored type of an entry. A name within a section
// carries exactly one tag at a time; the engine reports the tag without ever
// coercing between types.
type TypeTag int32

const (
	// TypeInt is a 4-byte signed integer.
	TypeInt TypeTag = iota
	// TypeDouble is a double-precision float.
	TypeDouble
	// TypeComplex is a double-precision complex number.
	TypeComplex
	// TypeString is text.
	TypeString
	// TypeIntArray is a one-dimensional array of 4-byte signed integers.
	TypeIntArray
	// TypeDoubleArray is a one-dimensional array of double-precision floats.
	TypeDoubleArray
	// TypeComplexArray is a one-dimensional array of double-precision complex
	// numbers.
	TypeComplexArray
	// TypeBool is a boolean.
	TypeBool
	// TypeUnknown reports an unrecognized or uninitialized tag.
	TypeUnknown
)

var typeTagNames = map[TypeTag]string{
	TypeInt:          "int",
	TypeDouble:       "double",
	TypeComplex:      "complex",
	TypeString:       "string",
	TypeIntArray:     "int array",
	TypeDoubleArray:  "double array",
	TypeComplexArray: "complex array",
	TypeBool:         "bool",
	TypeUnknown:      "unknown",
}

// String returns the tag's name.
func (t TypeTag) String() string {
	if name, ok := typeTagNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsArray reports whether the tag identifies a one-dimensional array type.
func (t TypeTag) IsArray() bool {
	switch t {
	case TypeIntArray, TypeDoubleArray, TypeComplexArray:
		return true
	}
	return false
}
