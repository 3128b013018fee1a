package patch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/chazu/patchwork/lib/runtime"
	"github.com/chazu/patchwork/typeenc"
)

// Kind is the type of a patch.
type Kind int

const (
	KindReturnValue Kind = iota + 1
	KindArguments
)

// String returns the persisted patchType name.
func (k Kind) String() string {
	switch k {
	case KindReturnValue:
		return "returnValue"
	case KindArguments:
		return "arguments"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses a persisted patchType name.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "returnValue":
		return KindReturnValue, true
	case "arguments":
		return KindArguments, true
	}
	return 0, false
}

// aliasPrefix marks selectors that forward to a saved original.
const aliasPrefix = "__patchwork_"

// record is one installed patch. Once activated only the Manager touches
// it, and only under its lock; stubs read the immutable fields.
type record struct {
	kind     Kind
	id       MethodIdentity
	bundle   string
	handle   *Handle
	original *runtime.Implementation
	stub     *runtime.Implementation

	returnDesc    typeenc.Descriptor
	returnValue   Value
	returnCoerced runtime.Value

	args        map[int]Value
	argsCoerced map[int]runtime.Value
	alias       string
}

func (r *record) key() string {
	return r.id.Key()
}

// Substitution is what a patched call gets: a return value that replaces
// the call, or argument slots rewritten before forwarding.
type Substitution struct {
	Kind      Kind
	Return    runtime.Value
	Arguments map[int]runtime.Value
}

func (r *record) substitution() Substitution {
	s := Substitution{Kind: r.kind}
	switch r.kind {
	case KindReturnValue:
		s.Return = r.returnCoerced
	case KindArguments:
		s.Arguments = make(map[int]runtime.Value, len(r.argsCoerced))
		for i, v := range r.argsCoerced {
			s.Arguments[i] = v
		}
	}
	return s
}

// Engine installs and removes redirections. Policy lives in the record;
// the stubs ask the engine's lookup whether a record is current and enabled
// on every call.
type Engine struct {
	target Target
	active func(*runtime.MethodEntry) *record
	log    commonlog.Logger
}

func newEngine(target Target, active func(*runtime.MethodEntry) *record) *Engine {
	return &Engine{
		target: target,
		active: active,
		log:    commonlog.GetLogger("patchwork.patch"),
	}
}

// prepareReturn validates a return patch. Nothing is installed yet.
func (e *Engine) prepareReturn(h *Handle, v Value) (*record, error) {
	desc := h.Return()
	coerced, err := Coerce(v, desc)
	if err != nil {
		return nil, withKey(err, h.Identity)
	}
	return &record{
		kind:          KindReturnValue,
		id:            h.Identity,
		bundle:        h.Bundle,
		handle:        h,
		returnDesc:    desc,
		returnValue:   slotValue(v, coerced),
		returnCoerced: coerced,
	}, nil
}

// prepareArguments validates an argument patch. Indexes count explicit
// parameters only.
func (e *Engine) prepareArguments(h *Handle, overrides map[int]Value) (*record, error) {
	if len(overrides) == 0 {
		return nil, newError(CodeIndexOutOfRange, "no argument overrides for %s", h.Identity.Key()).
			with("key", h.Identity.Key())
	}

	args := make(map[int]Value, len(overrides))
	coerced := make(map[int]runtime.Value, len(overrides))
	for _, idx := range sortedIndexes(overrides) {
		slot, ok := h.Signature.Arg(idx)
		if !ok {
			return nil, newError(CodeIndexOutOfRange, "argument %d out of range for %s (%d arguments)",
				idx, h.Identity.Key(), h.Signature.NumArgs()).
				with("key", h.Identity.Key()).with("index", fmt.Sprint(idx))
		}
		cv, err := Coerce(overrides[idx], slot)
		if err != nil {
			return nil, withKey(err, h.Identity)
		}
		args[idx] = slotValue(overrides[idx], cv)
		coerced[idx] = cv
	}

	return &record{
		kind:        KindArguments,
		id:          h.Identity,
		bundle:      h.Bundle,
		handle:      h,
		returnDesc:  h.Return(),
		args:        args,
		argsCoerced: coerced,
	}, nil
}

// activate captures the original and makes rec visible to callers. The
// swap only succeeds if the captured original is still the installed body.
func (e *Engine) activate(rec *record) error {
	h := rec.handle
	rec.original = e.target.Original(h)
	if rec.kind == KindArguments {
		rec.alias = aliasSelector(h.Identity.Selector)
		if err := e.target.AddAlias(h, rec.alias, rec.original); err != nil {
			return wrapError(CodeInvalidTarget, err, "cannot install %s", rec.key()).with("key", rec.key())
		}
	}

	rec.stub = e.newStub(rec)
	if !e.target.SetActive(h, rec.original, rec.stub) {
		if rec.alias != "" {
			e.target.RemoveAlias(h, rec.alias)
		}
		return newError(CodeInvalidTarget, "implementation of %s changed during install", rec.key()).
			with("key", rec.key())
	}
	e.log.Debugf("installed %s patch on %s", rec.kind, rec.key())
	return nil
}

// deactivate restores the original. Calling it twice is harmless.
func (e *Engine) deactivate(rec *record) {
	h := rec.handle
	if !e.target.SetActive(h, rec.stub, rec.original) && h.Entry.Implementation() != rec.original {
		e.log.Warningf("implementation of %s was replaced while patched, leaving it", rec.key())
	}
	if rec.alias != "" {
		e.target.RemoveAlias(h, rec.alias)
	}
	e.log.Debugf("removed %s patch from %s", rec.kind, rec.key())
}

func (e *Engine) newStub(rec *record) *runtime.Implementation {
	return runtime.NewImplementation("patch "+rec.key(), func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		call := &CallContext{Method: rec.handle, Receiver: self, Args: args}
		if e.active(rec.handle.Entry) != rec {
			// disabled, or removed while this stub was still reachable
			return e.Forward(call, rec.original)
		}
		if rec.kind == KindReturnValue {
			return rec.returnCoerced
		}
		return e.forwardAlias(call.withArguments(rec.argsCoerced), rec)
	})
}

// Forward invokes original with call and relays its result unchanged. If
// the method is no longer live it fails closed with an error value.
func (e *Engine) Forward(call *CallContext, original *runtime.Implementation) runtime.Value {
	if original == nil || !call.Method.Live() {
		return runtime.ErrorValue(fmt.Sprintf("original implementation of %s is no longer valid", call.Method.Identity.Key()))
	}
	return e.target.Invoke(original, call)
}

// forwardAlias runs the rewritten call through rec's alias. The alias is
// removed when rec is, so a call already past the stub's check falls back
// to the captured original.
func (e *Engine) forwardAlias(call *CallContext, rec *record) runtime.Value {
	if !call.Method.Live() {
		return runtime.ErrorValue(fmt.Sprintf("original implementation of %s is no longer valid", call.Method.Identity.Key()))
	}
	if res, ok := e.target.InvokeAlias(rec.alias, call); ok {
		return res
	}
	e.log.Debugf("alias of %s removed during a call, forwarding to the original", rec.key())
	return e.Forward(call, rec.original)
}

func aliasSelector(selector string) string {
	return aliasPrefix + strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + selector
}

func withKey(err error, id MethodIdentity) error {
	if pe, ok := err.(*Error); ok {
		return pe.with("key", id.Key())
	}
	return err
}

func sortedIndexes[V any](m map[int]V) []int {
	out := make([]int, 0, len(m))
	for i := range m {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
