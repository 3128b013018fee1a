package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chazu/patchwork/lib/runtime"
	"github.com/chazu/patchwork/typeenc"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueInt
	ValueUint
	ValueFloat
	ValueString
	ValueArray
	ValueObject
)

var valueKindNames = [...]string{
	ValueNull:   "null",
	ValueBool:   "bool",
	ValueInt:    "int",
	ValueUint:   "uint",
	ValueFloat:  "float",
	ValueString: "string",
	ValueArray:  "array",
	ValueObject: "object",
}

func (k ValueKind) String() string {
	if k >= 0 && int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is an override value as supplied by a caller or a document. It is
// matched against a slot descriptor by Coerce before it is ever installed.
// Object values reference live instances and cannot be persisted.
type Value struct {
	Kind      ValueKind
	BoolVal   bool
	IntVal    int64
	UintVal   uint64
	FloatVal  float64
	StringVal string
	ArrayVal  []Value
	ObjectVal *runtime.Instance
}

func Null() Value                         { return Value{} }
func Bool(b bool) Value                   { return Value{Kind: ValueBool, BoolVal: b} }
func Int(n int64) Value                   { return Value{Kind: ValueInt, IntVal: n} }
func Uint(n uint64) Value                 { return Value{Kind: ValueUint, UintVal: n} }
func Float(f float64) Value               { return Value{Kind: ValueFloat, FloatVal: f} }
func String(s string) Value               { return Value{Kind: ValueString, StringVal: s} }
func Array(elems ...Value) Value          { return Value{Kind: ValueArray, ArrayVal: elems} }
func Object(inst *runtime.Instance) Value { return Value{Kind: ValueObject, ObjectVal: inst} }

// Equal compares two values structurally. Objects compare by identity.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueNull:
		return true
	case ValueBool:
		return v.BoolVal == o.BoolVal
	case ValueInt:
		return v.IntVal == o.IntVal
	case ValueUint:
		return v.UintVal == o.UintVal
	case ValueFloat:
		return v.FloatVal == o.FloatVal
	case ValueString:
		return v.StringVal == o.StringVal
	case ValueArray:
		if len(v.ArrayVal) != len(o.ArrayVal) {
			return false
		}
		for i := range v.ArrayVal {
			if !v.ArrayVal[i].Equal(o.ArrayVal[i]) {
				return false
			}
		}
		return true
	case ValueObject:
		return v.ObjectVal == o.ObjectVal
	}
	return false
}

// Serializable reports whether the value can be written to a document.
func (v Value) Serializable() bool {
	switch v.Kind {
	case ValueObject:
		return false
	case ValueFloat:
		return !math.IsNaN(v.FloatVal) && !math.IsInf(v.FloatVal, 0)
	case ValueArray:
		for _, e := range v.ArrayVal {
			if !e.Serializable() {
				return false
			}
		}
	}
	return true
}

func (v Value) String() string {
	switch v.Kind {
	case ValueObject:
		if v.ObjectVal == nil {
			return "<object nil>"
		}
		return "<" + v.ObjectVal.ClassName + " " + v.ObjectVal.ID + ">"
	case ValueFloat:
		if !v.Serializable() {
			return strconv.FormatFloat(v.FloatVal, 'g', -1, 64)
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return v.Kind.String()
	}
	return string(data)
}

// MarshalJSON encodes the value. Floats always carry a fraction or
// exponent so they decode back as floats.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNull:
		return []byte("null"), nil
	case ValueBool:
		return strconv.AppendBool(nil, v.BoolVal), nil
	case ValueInt:
		return strconv.AppendInt(nil, v.IntVal, 10), nil
	case ValueUint:
		return strconv.AppendUint(nil, v.UintVal, 10), nil
	case ValueFloat:
		if math.IsNaN(v.FloatVal) || math.IsInf(v.FloatVal, 0) {
			return nil, newError(CodeSerialization, "float %v is not representable in JSON", v.FloatVal)
		}
		s := strconv.FormatFloat(v.FloatVal, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return []byte(s), nil
	case ValueString:
		return json.Marshal(v.StringVal)
	case ValueArray:
		elems := v.ArrayVal
		if elems == nil {
			elems = []Value{}
		}
		return json.Marshal(elems)
	case ValueObject:
		return nil, newError(CodeSerialization, "object values cannot be serialized")
	}
	return nil, newError(CodeSerialization, "unknown value kind %d", v.Kind)
}

// UnmarshalJSON decodes null, booleans, numbers, strings and arrays.
// JSON objects are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	out, err := valueFromJSON(raw)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func valueFromJSON(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		return numberValue(x)
	case []any:
		elems := make([]Value, 0, len(x))
		for i, e := range x {
			ev, err := valueFromJSON(e)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			elems = append(elems, ev)
		}
		return Array(elems...), nil
	case map[string]any:
		return Value{}, fmt.Errorf("JSON objects are not supported as override values")
	}
	return Value{}, fmt.Errorf("unsupported JSON value %T", raw)
}

func numberValue(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint(u), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("number %s out of range", s)
	}
	return Float(f), nil
}

// toRuntime converts without a declared type, for object slots.
func (v Value) toRuntime() runtime.Value {
	switch v.Kind {
	case ValueBool:
		return runtime.BoolValue(v.BoolVal)
	case ValueInt:
		return runtime.IntValue(v.IntVal)
	case ValueUint:
		return runtime.UintValue(v.UintVal)
	case ValueFloat:
		return runtime.FloatValue(v.FloatVal)
	case ValueString:
		return runtime.StringValue(v.StringVal)
	case ValueArray:
		arr := runtime.NewArray()
		for _, e := range v.ArrayVal {
			arr.Push(e.toRuntime())
		}
		return runtime.ArrayValue(arr)
	case ValueObject:
		return runtime.InstanceValue(v.ObjectVal)
	}
	return runtime.NilValue()
}

// Coerce converts v to the runtime value a slot of type d holds. A value
// that does not fit is a TYPE_COERCION_FAILURE; nothing is truncated.
func Coerce(v Value, d typeenc.Descriptor) (runtime.Value, error) {
	fail := func(why string) (runtime.Value, error) {
		return runtime.Value{}, newError(CodeTypeCoercion, "cannot use %s value %s for %s slot: %s", v.Kind, v, d, why).
			with("encoding", d.Raw)
	}

	switch d.Kind {
	case typeenc.Void:
		if v.Kind == ValueNull {
			return runtime.NilValue(), nil
		}
		return fail("void slots only accept null")

	case typeenc.Bool:
		switch {
		case v.Kind == ValueBool:
			return runtime.BoolValue(v.BoolVal), nil
		case v.Kind == ValueInt && (v.IntVal == 0 || v.IntVal == 1):
			return runtime.BoolValue(v.IntVal == 1), nil
		case v.Kind == ValueUint && (v.UintVal == 0 || v.UintVal == 1):
			return runtime.BoolValue(v.UintVal == 1), nil
		}
		return fail("expected a boolean or 0/1")

	case typeenc.Int:
		return coerceInteger(v, d, fail)

	case typeenc.Float, typeenc.Double:
		var f float64
		switch v.Kind {
		case ValueInt:
			f = float64(v.IntVal)
		case ValueUint:
			f = float64(v.UintVal)
		case ValueFloat:
			f = v.FloatVal
		default:
			return fail("expected a number")
		}
		if d.Kind == typeenc.Float {
			if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32 {
				return fail("out of range for float")
			}
			f = float64(float32(f))
		}
		return runtime.FloatValue(f), nil

	case typeenc.Object:
		return v.toRuntime(), nil

	case typeenc.Class:
		switch v.Kind {
		case ValueNull:
			return runtime.NilValue(), nil
		case ValueString:
			return runtime.ClassValue(v.StringVal), nil
		}
		return fail("expected a class name or null")

	case typeenc.Selector:
		switch v.Kind {
		case ValueNull:
			return runtime.NilValue(), nil
		case ValueString:
			return runtime.SelectorValue(v.StringVal), nil
		}
		return fail("expected a selector name or null")

	case typeenc.CString:
		switch v.Kind {
		case ValueNull:
			return runtime.NilValue(), nil
		case ValueString:
			return runtime.StringValue(v.StringVal), nil
		}
		return fail("expected a string or null")

	case typeenc.Struct, typeenc.Pointer:
		if v.Kind == ValueNull {
			return runtime.NilValue(), nil
		}
		return fail("only null can be substituted")
	}
	return fail("slot type cannot be decoded")
}

// slotValue re-types a scalar v to the kind its slot holds, so an
// override reads back the same however its number was written.
func slotValue(v Value, rv runtime.Value) Value {
	switch v.Kind {
	case ValueBool, ValueInt, ValueUint, ValueFloat:
	default:
		return v
	}
	switch rv.Type {
	case runtime.TypeBool:
		return Bool(rv.AsBool())
	case runtime.TypeInt:
		return Int(rv.AsInt())
	case runtime.TypeUint:
		return Uint(rv.UintVal)
	case runtime.TypeFloat:
		return Float(rv.AsFloat())
	}
	return v
}

const two63 = float64(1 << 63)

func coerceInteger(v Value, d typeenc.Descriptor, fail func(string) (runtime.Value, error)) (runtime.Value, error) {
	var (
		n     int64
		big   uint64
		isBig bool // above MaxInt64
	)
	switch v.Kind {
	case ValueBool:
		if v.BoolVal {
			n = 1
		}
	case ValueInt:
		n = v.IntVal
	case ValueUint:
		if v.UintVal > math.MaxInt64 {
			isBig, big = true, v.UintVal
		} else {
			n = int64(v.UintVal)
		}
	case ValueFloat:
		f := v.FloatVal
		switch {
		case math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f):
			return fail("not an integral number")
		case f >= 2*two63 || f < -two63:
			return fail("out of range")
		case f >= two63:
			isBig, big = true, uint64(f)
		default:
			n = int64(f)
		}
	default:
		return fail("expected an integer")
	}

	bits := d.Bits
	if bits <= 0 || bits > 64 {
		bits = 64
	}

	if d.Signed {
		if isBig {
			return fail("out of range")
		}
		if bits < 64 {
			lo, hi := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1
			if n < lo || n > hi {
				return fail(fmt.Sprintf("out of range for %d-bit signed", bits))
			}
		}
		return runtime.IntValue(n), nil
	}

	if isBig {
		if bits < 64 {
			return fail(fmt.Sprintf("out of range for %d-bit unsigned", bits))
		}
		return runtime.UintValue(big), nil
	}
	if n < 0 {
		return fail("negative value for unsigned slot")
	}
	if bits < 64 && uint64(n) > uint64(1)<<bits-1 {
		return fail(fmt.Sprintf("out of range for %d-bit unsigned", bits))
	}
	return runtime.UintValue(uint64(n)), nil
}
