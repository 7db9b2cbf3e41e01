package ir

// TypeQualifier marks how a declared variable or argument is used.
type TypeQualifier string

const (
	QualifierInput  TypeQualifier = "input"
	QualifierOutput TypeQualifier = "output"
	QualifierState  TypeQualifier = "state"
	QualifierParam  TypeQualifier = "param"
	QualifierTemp   TypeQualifier = "temp"
)

// CoreDataType is a primitive numerical element type.
type CoreDataType string

const (
	Int8       CoreDataType = "int8"
	Int16      CoreDataType = "int16"
	Int32      CoreDataType = "int32"
	Int64      CoreDataType = "int64"
	Uint8      CoreDataType = "uint8"
	Uint16     CoreDataType = "uint16"
	Uint32     CoreDataType = "uint32"
	Uint64     CoreDataType = "uint64"
	Float16    CoreDataType = "float16"
	Float32    CoreDataType = "float32"
	Float64    CoreDataType = "float64"
	Complex64  CoreDataType = "complex64"
	Complex128 CoreDataType = "complex128"
)

var coreDataTypes = map[string]CoreDataType{
	"int8":       Int8,
	"int16":      Int16,
	"int32":      Int32,
	"int64":      Int64,
	"uint8":      Uint8,
	"uint16":     Uint16,
	"uint32":     Uint32,
	"uint64":     Uint64,
	"float16":    Float16,
	"float32":    Float32,
	"float64":    Float64,
	"complex64":  Complex64,
	"complex128": Complex128,
}

// LookupCoreDataType resolves a type spelling to a core data type.
func LookupCoreDataType(name string) (CoreDataType, bool) {
	t, ok := coreDataTypes[name]
	return t, ok
}

// LookupQualifier resolves a qualifier spelling.
func LookupQualifier(name string) (TypeQualifier, bool) {
	switch TypeQualifier(name) {
	case QualifierInput, QualifierOutput, QualifierState, QualifierParam, QualifierTemp:
		return TypeQualifier(name), true
	default:
		return "", false
	}
}
