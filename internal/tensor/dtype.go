// Package tensor provides the element types, shapes and owned, SIMD-aligned
// buffers that tensorbuf's higher layers compute on.
package tensor

// Element is the closed set of types a Buffer may hold.
//
// The union lists exact types (no ~ approximation), so named types such as
// time.Duration do not qualify even though their underlying type does. Every
// member supports +, -, * and their assigning forms and copies by value.
type Element interface {
	float32 | float64 |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64
}

// DataType represents runtime type information for buffers.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Float32, Int32, Uint32:
		return 4
	case Float64, Int64, Uint64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	default:
		return "unknown"
	}
}

// IsFloat reports whether dt is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsSigned reports whether dt can hold negative values.
func (dt DataType) IsSigned() bool {
	switch dt {
	case Float32, Float64, Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// DataTypeOf returns the DataType for T.
func DataTypeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	default:
		panic("unsupported type")
	}
}
