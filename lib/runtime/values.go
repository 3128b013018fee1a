// Package runtime provides the live object system that patches apply to.
// Classes own instance and class method tables; every call goes through
// the method entry's current implementation, which can be swapped at any
// time without stopping callers.
package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType represents the type of a runtime value
type ValueType int

const (
	TypeNil ValueType = iota
	TypeInt
	TypeUint
	TypeFloat
	TypeString
	TypeBool
	TypeInstance
	TypeClass
	TypeSelector
	TypeArray
	TypeError
)

var valueTypeNames = [...]string{
	TypeNil:      "nil",
	TypeInt:      "int",
	TypeUint:     "uint",
	TypeFloat:    "float",
	TypeString:   "string",
	TypeBool:     "bool",
	TypeInstance: "instance",
	TypeClass:    "class",
	TypeSelector: "selector",
	TypeArray:    "array",
	TypeError:    "error",
}

func (t ValueType) String() string {
	if t >= 0 && int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// Value is the Go representation of a runtime value.
// Class and selector references carry their name in StringVal.
type Value struct {
	Type        ValueType
	IntVal      int64
	UintVal     uint64
	FloatVal    float64
	StringVal   string
	InstanceVal *Instance
	ArrayVal    *Array
	ErrorMsg    string
}

// NilValue returns a nil value
func NilValue() Value {
	return Value{Type: TypeNil}
}

// IntValue creates a signed integer value
func IntValue(n int64) Value {
	return Value{Type: TypeInt, IntVal: n}
}

// UintValue creates an unsigned integer value
func UintValue(n uint64) Value {
	return Value{Type: TypeUint, UintVal: n}
}

// FloatValue creates a float value
func FloatValue(f float64) Value {
	return Value{Type: TypeFloat, FloatVal: f}
}

// StringValue creates a string value
func StringValue(s string) Value {
	return Value{Type: TypeString, StringVal: s}
}

// BoolValue creates a boolean value
func BoolValue(b bool) Value {
	if b {
		return Value{Type: TypeBool, IntVal: 1}
	}
	return Value{Type: TypeBool, IntVal: 0}
}

// InstanceValue creates an instance reference value
func InstanceValue(inst *Instance) Value {
	if inst == nil {
		return NilValue()
	}
	return Value{Type: TypeInstance, InstanceVal: inst}
}

// ClassValue creates a class reference value
func ClassValue(name string) Value {
	return Value{Type: TypeClass, StringVal: name}
}

// SelectorValue creates a selector reference value
func SelectorValue(name string) Value {
	return Value{Type: TypeSelector, StringVal: name}
}

// ArrayValue creates an array value
func ArrayValue(arr *Array) Value {
	return Value{Type: TypeArray, ArrayVal: arr}
}

// ErrorValue creates an error value
func ErrorValue(msg string) Value {
	return Value{Type: TypeError, ErrorMsg: msg}
}

// IsNil returns true if the value is nil
func (v Value) IsNil() bool {
	return v.Type == TypeNil
}

// IsError returns true if the value is an error
func (v Value) IsError() bool {
	return v.Type == TypeError
}

// AsBool reports the boolean a BOOL slot would hold. Strings are false
// when empty, "false" or "nil".
func (v Value) AsBool() bool {
	switch v.Type {
	case TypeNil:
		return false
	case TypeBool, TypeInt:
		return v.IntVal != 0
	case TypeUint:
		return v.UintVal != 0
	case TypeFloat:
		return v.FloatVal != 0
	case TypeString:
		return v.StringVal != "" && v.StringVal != "false" && v.StringVal != "nil"
	case TypeError:
		return false
	default:
		return true
	}
}

// AsString converts the value to a string representation
func (v Value) AsString() string {
	switch v.Type {
	case TypeNil:
		return ""
	case TypeInt:
		return strconv.FormatInt(v.IntVal, 10)
	case TypeUint:
		return strconv.FormatUint(v.UintVal, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.FloatVal, 'f', -1, 64)
	case TypeString, TypeClass, TypeSelector:
		return v.StringVal
	case TypeBool:
		if v.IntVal != 0 {
			return "true"
		}
		return "false"
	case TypeInstance:
		if v.InstanceVal != nil {
			return v.InstanceVal.ID
		}
		return ""
	case TypeArray:
		parts := make([]string, v.ArrayVal.Len())
		for i := range parts {
			parts[i] = v.ArrayVal.At(i).String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeError:
		return "Error: " + v.ErrorMsg
	default:
		return ""
	}
}

// AsInt converts the value to an integer
func (v Value) AsInt() int64 {
	switch v.Type {
	case TypeInt, TypeBool:
		return v.IntVal
	case TypeUint:
		return int64(v.UintVal)
	case TypeFloat:
		return int64(v.FloatVal)
	case TypeString:
		n, _ := strconv.ParseInt(v.StringVal, 10, 64)
		return n
	default:
		return 0
	}
}

// AsFloat converts the value to a float
func (v Value) AsFloat() float64 {
	switch v.Type {
	case TypeFloat:
		return v.FloatVal
	case TypeInt, TypeBool:
		return float64(v.IntVal)
	case TypeUint:
		return float64(v.UintVal)
	case TypeString:
		f, _ := strconv.ParseFloat(v.StringVal, 64)
		return f
	default:
		return 0
	}
}

// Equal compares two values. Instances compare by identity, arrays
// element-wise.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case TypeNil:
		return true
	case TypeInt, TypeBool:
		return v.IntVal == o.IntVal
	case TypeUint:
		return v.UintVal == o.UintVal
	case TypeFloat:
		return v.FloatVal == o.FloatVal
	case TypeString, TypeClass, TypeSelector:
		return v.StringVal == o.StringVal
	case TypeInstance:
		return v.InstanceVal == o.InstanceVal
	case TypeArray:
		if v.ArrayVal.Len() != o.ArrayVal.Len() {
			return false
		}
		for i := 0; i < v.ArrayVal.Len(); i++ {
			if !v.ArrayVal.At(i).Equal(o.ArrayVal.At(i)) {
				return false
			}
		}
		return true
	case TypeError:
		return v.ErrorMsg == o.ErrorMsg
	}
	return false
}

func (v Value) String() string {
	switch v.Type {
	case TypeNil:
		return "nil"
	case TypeString:
		return strconv.Quote(v.StringVal)
	case TypeClass:
		return "Class(" + v.StringVal + ")"
	case TypeSelector:
		return "@selector(" + v.StringVal + ")"
	case TypeInstance:
		if v.InstanceVal != nil {
			return "<" + v.InstanceVal.ClassName + " " + v.InstanceVal.ID + ">"
		}
		return "nil"
	}
	return v.AsString()
}

// Array represents a runtime array
type Array struct {
	Elements []Value
}

// NewArray creates a new array holding elems
func NewArray(elems ...Value) *Array {
	a := &Array{Elements: make([]Value, 0, len(elems))}
	a.Elements = append(a.Elements, elems...)
	return a
}

// Push adds an element to the array
func (a *Array) Push(v Value) {
	a.Elements = append(a.Elements, v)
}

// At returns the element at the given index
func (a *Array) At(idx int) Value {
	if a == nil || idx < 0 || idx >= len(a.Elements) {
		return NilValue()
	}
	return a.Elements[idx]
}

// Len returns the length of the array
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Elements)
}
