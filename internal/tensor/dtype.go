// Package tensor provides the strided N-dimensional array types used by the reduction backends.
package tensor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Char is a UTF-16 code unit stored as an unsigned 16-bit integer.
type Char uint16

// Number is a constraint for every fixed-width numeric element type.
// It drives the generic folds and conversions.
type Number interface {
	constraints.Integer | constraints.Float
}

// Element is a constraint for every type a tensor can store.
type Element interface {
	Number | ~bool | decimal.Decimal
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Bool DataType = iota
	Int8
	Uint8
	Int16
	Uint16
	Char16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	Decimal
)

// DataTypes lists every data type in declaration order.
var DataTypes = []DataType{
	Bool, Int8, Uint8, Int16, Uint16, Char16, Int32, Uint32, Int64, Uint64, Float32, Float64, Decimal,
}

// Size returns the byte size of the data type.
// Decimal values live outside the byte buffer and report 0.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16, Char16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	case Decimal:
		return 0
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Char16:
		return "char"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Decimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// ParseDataType resolves a data type from its name.
// A few common aliases (byte, float, double, ...) are accepted.
func ParseDataType(name string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bool", "boolean":
		return Bool, nil
	case "int8", "sbyte":
		return Int8, nil
	case "uint8", "byte":
		return Uint8, nil
	case "int16", "short":
		return Int16, nil
	case "uint16", "ushort":
		return Uint16, nil
	case "char":
		return Char16, nil
	case "int32", "int":
		return Int32, nil
	case "uint32", "uint":
		return Uint32, nil
	case "int64", "long":
		return Int64, nil
	case "uint64", "ulong":
		return Uint64, nil
	case "float32", "single", "float":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	case "decimal":
		return Decimal, nil
	}
	return 0, fmt.Errorf("%w: unknown data type %q", ErrUnsupportedType, name)
}

// Valid reports whether dt is one of the declared data types.
func (dt DataType) Valid() bool {
	return dt >= Bool && dt <= Decimal
}

// IsInteger reports whether dt is a signed, unsigned or character integer type.
func (dt DataType) IsInteger() bool {
	return dt >= Int8 && dt <= Uint64
}

// IsFloat reports whether dt is a binary floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsNumeric reports whether reductions accept dt as source or result.
func (dt DataType) IsNumeric() bool {
	return dt.IsInteger() || dt.IsFloat() || dt == Decimal
}

// AccumulatingType returns the widened type Sum and Prod fold in.
func (dt DataType) AccumulatingType() DataType {
	switch dt {
	case Int8, Uint8, Int16:
		return Int32
	case Uint16, Char16:
		return Uint32
	case Int32, Int64:
		return Int64
	case Uint32, Uint64:
		return Uint64
	case Float32, Float64:
		return Float64
	default:
		return dt
	}
}

// ComputingType returns the type statistics such as mean and variance are reported in.
func (dt DataType) ComputingType() DataType {
	if dt.IsInteger() {
		return Float64
	}
	return dt
}

// DataTypeOf returns the DataType stored for the Go type T.
func DataTypeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case Char:
		return Char16
	case int32:
		return Int32
	case uint32:
		return Uint32
	case int64:
		return Int64
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case decimal.Decimal:
		return Decimal
	default:
		panic(fmt.Sprintf("unsupported element type %T", zero))
	}
}
