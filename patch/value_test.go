package patch

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/chazu/patchwork/lib/runtime"
	"github.com/chazu/patchwork/typeenc"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		enc  string
		in   Value
		want runtime.Value
		ok   bool
	}{
		// bool
		{"B", Bool(true), runtime.BoolValue(true), true},
		{"B", Int(0), runtime.BoolValue(false), true},
		{"B", Uint(1), runtime.BoolValue(true), true},
		{"B", Int(2), runtime.Value{}, false},
		{"B", String("true"), runtime.Value{}, false},
		{"B", Null(), runtime.Value{}, false},

		// integers
		{"c", Int(-128), runtime.IntValue(-128), true},
		{"c", Int(128), runtime.Value{}, false},
		{"C", Int(255), runtime.UintValue(255), true},
		{"C", Int(256), runtime.Value{}, false},
		{"C", Int(-1), runtime.Value{}, false},
		{"s", Int(-32768), runtime.IntValue(-32768), true},
		{"S", Int(65536), runtime.Value{}, false},
		{"i", Bool(true), runtime.IntValue(1), true},
		{"i", Float(3), runtime.IntValue(3), true},
		{"i", Float(3.5), runtime.Value{}, false},
		{"i", Int(math.MaxInt32 + 1), runtime.Value{}, false},
		{"I", Uint(math.MaxUint32), runtime.UintValue(math.MaxUint32), true},
		{"q", Int(math.MinInt64), runtime.IntValue(math.MinInt64), true},
		{"q", Uint(math.MaxUint64), runtime.Value{}, false},
		{"Q", Uint(math.MaxUint64), runtime.UintValue(math.MaxUint64), true},
		{"Q", Float(1e19), runtime.UintValue(1e19), true},
		{"Q", Float(1e20), runtime.Value{}, false},
		{"q", String("1"), runtime.Value{}, false},
		{"q", Null(), runtime.Value{}, false},
		{"q", Array(), runtime.Value{}, false},

		// floating point
		{"d", Float(2.5), runtime.FloatValue(2.5), true},
		{"d", Int(-2), runtime.FloatValue(-2), true},
		{"f", Float(0.5), runtime.FloatValue(0.5), true},
		{"f", Float(1e39), runtime.Value{}, false},
		{"d", Float(1e39), runtime.FloatValue(1e39), true},
		{"d", Bool(true), runtime.Value{}, false},
		{"d", String("1.0"), runtime.Value{}, false},

		// references
		{"@", String("s"), runtime.StringValue("s"), true},
		{"@", Null(), runtime.NilValue(), true},
		{"@", Int(5), runtime.IntValue(5), true},
		{`@"NSString"`, String("s"), runtime.StringValue("s"), true},
		{"#", String("Foo"), runtime.ClassValue("Foo"), true},
		{"#", Int(1), runtime.Value{}, false},
		{":", String("bar"), runtime.SelectorValue("bar"), true},
		{":", Null(), runtime.NilValue(), true},
		{"*", String("c"), runtime.StringValue("c"), true},
		{"r*", Bool(false), runtime.Value{}, false},

		// opaque slots
		{"{CGPoint=dd}", Null(), runtime.NilValue(), true},
		{"{CGPoint=dd}", Int(0), runtime.Value{}, false},
		{"^v", Null(), runtime.NilValue(), true},
		{"^v", Int(0), runtime.Value{}, false},
		{"v", Null(), runtime.NilValue(), true},
		{"v", Int(0), runtime.Value{}, false},
		{"D", Float(1), runtime.Value{}, false},
		{"b4", Int(1), runtime.Value{}, false},
	}

	for _, tt := range tests {
		d := typeenc.Decode(tt.enc)
		got, err := Coerce(tt.in, d)
		if !tt.ok {
			if !IsCode(err, CodeTypeCoercion) {
				t.Errorf("Coerce(%s, %q) = %v, %v; want %s", tt.in, tt.enc, got, err, CodeTypeCoercion)
			}
			continue
		}
		if err != nil {
			t.Errorf("Coerce(%s, %q): %v", tt.in, tt.enc, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Coerce(%s, %q) = %v (%s), want %v (%s)", tt.in, tt.enc, got, got.Type, tt.want, tt.want.Type)
		}
	}
}

func TestCoerceArrayToObject(t *testing.T) {
	got, err := Coerce(Array(Int(1), String("a")), typeenc.Decode("@"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != runtime.TypeArray || got.ArrayVal.Len() != 2 || got.ArrayVal.At(1).AsString() != "a" {
		t.Errorf("got %v", got)
	}
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		json string
		want Value
	}{
		{"null", Null()},
		{"true", Bool(true)},
		{"-12", Int(-12)},
		{"18446744073709551615", Uint(math.MaxUint64)},
		{"1.0", Float(1)},
		{"2.5e3", Float(2500)},
		{`"hi"`, String("hi")},
		{`[1, "a", null, [false]]`, Array(Int(1), String("a"), Null(), Array(Bool(false)))},
	}
	for _, tt := range tests {
		var v Value
		if err := json.Unmarshal([]byte(tt.json), &v); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.json, err)
			continue
		}
		if !v.Equal(tt.want) {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.json, v, tt.want)
		}
	}

	// floats keep their kind through a round trip
	data, err := json.Marshal(Float(3))
	if err != nil || string(data) != "3.0" {
		t.Errorf("Marshal(Float(3)) = %s, %v", data, err)
	}

	var v Value
	if err := json.Unmarshal([]byte(`{"a": 1}`), &v); err == nil {
		t.Errorf("objects should be rejected")
	}
	if _, err := json.Marshal(Object(nil)); err == nil {
		t.Errorf("object values should not marshal")
	}
	if _, err := json.Marshal(Float(math.Inf(1))); err == nil {
		t.Errorf("infinity should not marshal")
	}
	if Array(Int(1), Object(nil)).Serializable() {
		t.Errorf("array holding an object reported serializable")
	}
}
