package server

import (
	"fmt"
	"math"
	"sort"

	"google.golang.org/protobuf/types/known/structpb"

	patchworkv1 "github.com/chazu/patchwork/gen/patchwork/v1"
	"github.com/chazu/patchwork/patch"
)

// WatchStarted names the first event of every watch stream.
const WatchStarted = "patchwork.watchStarted"

// maxExactInt is the largest integer a protobuf double holds exactly.
const maxExactInt = 1 << 53

// ValueToProto converts v for the wire. Live objects have no wire form,
// and integers beyond 2^53 would be rounded by the double that carries
// them; both fail with a coded error. Exact 64-bit values travel in
// exported documents instead.
func ValueToProto(v patch.Value) (*structpb.Value, error) {
	switch v.Kind {
	case patch.ValueNull:
		return structpb.NewNullValue(), nil
	case patch.ValueBool:
		return structpb.NewBoolValue(v.BoolVal), nil
	case patch.ValueInt:
		if v.IntVal > maxExactInt || v.IntVal < -maxExactInt {
			return nil, inexactInteger(v)
		}
		return structpb.NewNumberValue(float64(v.IntVal)), nil
	case patch.ValueUint:
		if v.UintVal > maxExactInt {
			return nil, inexactInteger(v)
		}
		return structpb.NewNumberValue(float64(v.UintVal)), nil
	case patch.ValueFloat:
		return structpb.NewNumberValue(v.FloatVal), nil
	case patch.ValueString:
		return structpb.NewStringValue(v.StringVal), nil
	case patch.ValueArray:
		list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(v.ArrayVal))}
		for _, elem := range v.ArrayVal {
			pv, err := ValueToProto(elem)
			if err != nil {
				return nil, err
			}
			list.Values = append(list.Values, pv)
		}
		return structpb.NewListValue(list), nil
	}
	return nil, &patch.Error{
		Code:    patch.CodeSerialization,
		Message: fmt.Sprintf("%s value cannot be sent", v.Kind),
	}
}

func inexactInteger(v patch.Value) error {
	return &patch.Error{
		Code:    patch.CodeTypeCoercion,
		Message: fmt.Sprintf("integer %s is too large to send exactly; apply it from a document", v),
	}
}

// ValueFromProto converts a wire value. A missing value is null. Integral
// numbers come back as integers; the slot they land in decides their
// final kind.
func ValueFromProto(pv *structpb.Value) (patch.Value, error) {
	if pv == nil {
		return patch.Null(), nil
	}
	switch k := pv.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return patch.Null(), nil
	case *structpb.Value_BoolValue:
		return patch.Bool(k.BoolValue), nil
	case *structpb.Value_NumberValue:
		return numberValue(k.NumberValue), nil
	case *structpb.Value_StringValue:
		return patch.String(k.StringValue), nil
	case *structpb.Value_ListValue:
		elems := make([]patch.Value, 0, len(k.ListValue.GetValues()))
		for _, e := range k.ListValue.GetValues() {
			v, err := ValueFromProto(e)
			if err != nil {
				return patch.Value{}, err
			}
			elems = append(elems, v)
		}
		return patch.Array(elems...), nil
	}
	return patch.Value{}, &patch.Error{
		Code:    patch.CodeTypeCoercion,
		Message: "struct values cannot be patched in",
	}
}

const two63 = float64(1 << 63)

func numberValue(f float64) patch.Value {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f):
		return patch.Float(f)
	case f >= -two63 && f < two63:
		return patch.Int(int64(f))
	case f >= two63 && f < 2*two63:
		return patch.Uint(uint64(f))
	}
	return patch.Float(f)
}

// ArgumentsToProto converts overrides, sorted by index.
func ArgumentsToProto(args map[int]patch.Value) ([]*patchworkv1.ArgumentOverride, error) {
	out := make([]*patchworkv1.ArgumentOverride, 0, len(args))
	for _, i := range sortedIndexes(args) {
		pv, err := ValueToProto(args[i])
		if err != nil {
			return nil, err
		}
		out = append(out, &patchworkv1.ArgumentOverride{Index: int32(i), Value: pv})
	}
	return out, nil
}

func argumentsFromProto(args []*patchworkv1.ArgumentOverride) (map[int]patch.Value, error) {
	out := make(map[int]patch.Value, len(args))
	for _, a := range args {
		if a.GetIndex() < 0 {
			return nil, &patch.Error{
				Code:    patch.CodeIndexOutOfRange,
				Message: fmt.Sprintf("argument index %d is negative", a.GetIndex()),
			}
		}
		if _, dup := out[int(a.GetIndex())]; dup {
			return nil, &patch.Error{
				Code:    patch.CodeIndexOutOfRange,
				Message: fmt.Sprintf("argument %d is overridden twice", a.GetIndex()),
			}
		}
		v, err := ValueFromProto(a.GetValue())
		if err != nil {
			return nil, err
		}
		out[int(a.GetIndex())] = v
	}
	return out, nil
}

func sortedIndexes[V any](m map[int]V) []int {
	out := make([]int, 0, len(m))
	for i := range m {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func patchTypeToProto(k patch.Kind) patchworkv1.PatchType {
	switch k {
	case patch.KindReturnValue:
		return patchworkv1.PatchType_PATCH_TYPE_RETURN_VALUE
	case patch.KindArguments:
		return patchworkv1.PatchType_PATCH_TYPE_ARGUMENTS
	}
	return patchworkv1.PatchType_PATCH_TYPE_UNSPECIFIED
}

// patchInfoToProto describes info on the wire. Values that cannot be sent
// are left out and the patch is marked opaque.
func patchInfoToProto(info patch.PatchInfo) *patchworkv1.Patch {
	out := &patchworkv1.Patch{
		MethodKey:   info.Key,
		ClassName:   info.Identity.Owner,
		Selector:    info.Identity.Selector,
		ClassMethod: info.Identity.ClassMethod,
		Bundle:      info.Bundle,
		PatchType:   patchTypeToProto(info.Kind),
		Enabled:     info.Enabled,
		ReturnType:  info.ReturnType,
	}
	switch info.Kind {
	case patch.KindReturnValue:
		if pv, err := ValueToProto(info.ReturnValue); err == nil {
			out.ReturnValue = pv
		} else {
			out.Opaque = true
		}
	case patch.KindArguments:
		for _, i := range sortedIndexes(info.Arguments) {
			arg := &patchworkv1.ArgumentOverride{Index: int32(i), TypeEncoding: info.ArgumentTypes[i]}
			if pv, err := ValueToProto(info.Arguments[i]); err == nil {
				arg.Value = pv
			} else {
				arg.Opaque = true
				out.Opaque = true
			}
			out.Arguments = append(out.Arguments, arg)
		}
	}
	return out
}
