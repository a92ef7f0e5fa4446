package ir

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Type is the common interface for every type in the IR's type system.
//
// Types are immutable and value-equal by structural name: two Type values
// constructed with the same shape always report the same Name, and
// IsCompatibleWith reduces to a name comparison. This mirrors a
// "newtype"-free interning scheme where the name itself is the canonical
// form, so equality never has to walk composite structure at compare time.
type Type interface {
	// Name is the canonical structural name, e.g. "i32", "f64", "i32*",
	// "i32[4]", or "i32 (i32, i32)".
	Name() string
	// Size reports the type's size in bits, if known.
	Size() (bits int, ok bool)
	// IsCompatibleWith reports structural compatibility, which for this
	// type system is strict name equality.
	IsCompatibleWith(other Type) bool
}

// canonicalName runs NFC normalization over an identifier before it is
// used as a type or symbol name. The IR is fed by frontends for many
// source languages with differing Unicode normalization conventions;
// normalizing on intern keeps two textually-identical-but-differently-
// encoded identifiers from being treated as distinct types or symbols.
func canonicalName(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

type baseType struct {
	name string
	size int
	sized bool
}

func (t baseType) Name() string { return t.name }
func (t baseType) Size() (int, bool) { return t.size, t.sized }
func (t baseType) IsCompatibleWith(other Type) bool {
	return other != nil && t.Name() == other.Name()
}

// VoidType represents the absence of a value.
type VoidType struct{ baseType }

// NewVoidType constructs the singleton-shaped void type.
func NewVoidType() VoidType {
	return VoidType{baseType{name: "void"}}
}

// IntegerType represents a fixed-width signed or unsigned integer type,
// named "i<n>" (signed) or "u<n>" (unsigned).
type IntegerType struct {
	baseType
	Signed bool
}

// NewIntegerType constructs an integer type of the given bit width.
func NewIntegerType(bits int, signed bool) IntegerType {
	prefix := "i"
	if !signed {
		prefix = "u"
	}
	name := fmt.Sprintf("%s%d", prefix, bits)
	return IntegerType{baseType{name: name, size: bits, sized: true}, signed}
}

// FloatType represents a fixed-width floating-point type, named "f<n>".
type FloatType struct {
	baseType
}

// NewFloatType constructs a float type of the given bit width.
func NewFloatType(bits int) FloatType {
	return FloatType{baseType{name: fmt.Sprintf("f%d", bits), size: bits, sized: true}}
}

// PointerType represents a pointer to another type. Pointers are always
// 64 bits, matching a single target architecture assumption the IR makes
// for simplicity (see spec §3).
type PointerType struct {
	baseType
	Pointee Type
}

func newPointerType(pointee Type) PointerType {
	return PointerType{baseType{name: pointee.Name() + "*", size: 64, sized: true}, pointee}
}

// ArrayType represents an array of a fixed or unknown length.
//
// Length is nil for a variable-length array. Size is known only when both
// the element size and the length are known.
type ArrayType struct {
	baseType
	Element Type
	Length  *int
}

func newArrayType(element Type, length *int) ArrayType {
	lengthPart := ""
	if length != nil {
		lengthPart = fmt.Sprintf("%d", *length)
	}
	name := fmt.Sprintf("%s[%s]", element.Name(), lengthPart)

	size, sized := 0, false
	if elemSize, ok := element.Size(); ok && length != nil {
		size, sized = elemSize*(*length), true
	}
	return ArrayType{baseType{name: name, size: size, sized: sized}, element, length}
}

// StructField is one named, ordered field of a StructType.
type StructField struct {
	Name string
	Type Type
}

// StructType represents an aggregate of named, ordered fields. Size is
// known only when every field's size is known.
type StructType struct {
	baseType
	Fields []StructField
}

func newStructType(name string, fields []StructField) StructType {
	size, sized := 0, true
	for _, f := range fields {
		fieldSize, ok := f.Type.Size()
		if !ok {
			size, sized = 0, false
			break
		}
		size += fieldSize
	}
	return StructType{baseType{name: name, size: size, sized: sized}, fields}
}

// FieldType looks up a struct field's type by name.
func (t StructType) FieldType(name string) (Type, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// FunctionType represents the signature of a function value, named
// "<ret> (<p1>, <p2>, ...)".
type FunctionType struct {
	baseType
	Return     Type
	Parameters []Type
}

func newFunctionType(ret Type, params []Type) FunctionType {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name()
	}
	name := fmt.Sprintf("%s (%s)", ret.Name(), strings.Join(parts, ", "))
	return FunctionType{baseType{name: name}, ret, params}
}

// TypeSystem is a mapping from canonical type name to Type, seeded with
// the built-in primitive types and extended via factory methods that
// intern composite types by their constructed name.
type TypeSystem struct {
	types map[string]Type
}

// NewTypeSystem returns a TypeSystem seeded with void, signed/unsigned
// integers at widths {8,16,32,64}, and floats at {32,64}.
func NewTypeSystem() *TypeSystem {
	ts := &TypeSystem{types: make(map[string]Type)}
	ts.RegisterType(NewVoidType())
	for _, bits := range []int{8, 16, 32, 64} {
		ts.RegisterType(NewIntegerType(bits, true))
		ts.RegisterType(NewIntegerType(bits, false))
	}
	for _, bits := range []int{32, 64} {
		ts.RegisterType(NewFloatType(bits))
	}
	return ts
}

// RegisterType interns t under its canonical name, overwriting any prior
// type registered under that name (last-write-wins, per spec §4.1).
func (ts *TypeSystem) RegisterType(t Type) {
	ts.types[canonicalName(t.Name())] = t
}

// GetType looks up a type by name. It never fails; a miss returns
// (nil, false).
func (ts *TypeSystem) GetType(name string) (Type, bool) {
	t, ok := ts.types[canonicalName(name)]
	return t, ok
}

// CreatePointerType interns and returns a pointer to pointee.
func (ts *TypeSystem) CreatePointerType(pointee Type) PointerType {
	t := newPointerType(pointee)
	ts.RegisterType(t)
	return t
}

// CreateArrayType interns and returns an array of element, of the given
// length (nil for unknown/variable length).
func (ts *TypeSystem) CreateArrayType(element Type, length *int) ArrayType {
	t := newArrayType(element, length)
	ts.RegisterType(t)
	return t
}

// CreateStructType interns and returns a struct type with the given
// ordered fields.
func (ts *TypeSystem) CreateStructType(name string, fields []StructField) StructType {
	t := newStructType(canonicalName(name), fields)
	ts.RegisterType(t)
	return t
}

// CreateFunctionType interns and returns a function type.
func (ts *TypeSystem) CreateFunctionType(ret Type, params []Type) FunctionType {
	t := newFunctionType(ret, params)
	ts.RegisterType(t)
	return t
}
