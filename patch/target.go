package patch

import (
	"fmt"

	"github.com/chazu/patchwork/lib/runtime"
	"github.com/chazu/patchwork/typeenc"
)

// Handle is a resolved, live method: the entry whose implementation gets
// swapped and the class whose method table holds it.
type Handle struct {
	Identity  MethodIdentity
	Bundle    string
	Class     *runtime.Class // class defining the entry; may be a superclass of Identity.Owner
	Entry     *runtime.MethodEntry
	Signature typeenc.Signature

	live func() bool
}

// Live reports whether the method can still be called safely. It turns
// false once the owning class is unloaded or the entry is removed.
func (h *Handle) Live() bool {
	if h == nil || h.Entry == nil {
		return false
	}
	if h.live == nil {
		return true
	}
	return h.live()
}

// Return is the descriptor of the return slot.
func (h *Handle) Return() typeenc.Descriptor {
	return h.Signature.Return
}

// Target is the reflective surface the engine patches. It resolves
// identities to handles, swaps implementations, and manages the alias
// selectors argument patches forward through.
type Target interface {
	Resolve(id MethodIdentity, bundleHint string) (*Handle, error)
	Original(h *Handle) *runtime.Implementation
	SetActive(h *Handle, prev, next *runtime.Implementation) bool
	AddAlias(h *Handle, selector string, impl *runtime.Implementation) error
	RemoveAlias(h *Handle, selector string) bool
	Invoke(impl *runtime.Implementation, call *CallContext) runtime.Value
	InvokeAlias(selector string, call *CallContext) (runtime.Value, bool)
	LookupEntry(className, selector string, classMethod bool) *runtime.MethodEntry
	BundleName(bundle string) (string, bool)
}

// SpaceTarget patches methods of a runtime object space.
type SpaceTarget struct {
	os *runtime.ObjectSpace
}

// NewSpaceTarget creates a target over os.
func NewSpaceTarget(os *runtime.ObjectSpace) *SpaceTarget {
	return &SpaceTarget{os: os}
}

// Resolve finds the live method for id, searching superclasses. A
// non-empty bundleHint must match the owner's bundle.
func (t *SpaceTarget) Resolve(id MethodIdentity, bundleHint string) (*Handle, error) {
	if !id.Valid() {
		return nil, newError(CodeInvalidTarget, "invalid method identity %q", id.Key()).with("key", id.Key())
	}
	class := t.os.GetClass(id.Owner)
	if class == nil {
		return nil, newError(CodeInvalidTarget, "class %s not found", id.Owner).with("key", id.Key())
	}
	bundle := t.os.BundleOf(class)
	if bundleHint != "" && bundleHint != bundle {
		return nil, newError(CodeInvalidTarget, "%s belongs to bundle %s, not %s", id.Owner, bundle, bundleHint).
			with("key", id.Key())
	}

	owner, entry := t.os.LookupMethodOwner(id.Owner, id.Selector, id.ClassMethod)
	if entry == nil || entry.Flags&runtime.MethodAlias != 0 {
		return nil, newError(CodeInvalidTarget, "method %s not found", id.Key()).with("key", id.Key())
	}
	if entry.SignatureErr != nil {
		return nil, wrapError(CodeInvalidTarget, entry.SignatureErr, "method %s has an undecodable signature", id.Key()).
			with("key", id.Key())
	}

	h := &Handle{
		Identity:  id,
		Bundle:    bundle,
		Class:     owner,
		Entry:     entry,
		Signature: entry.Signature,
	}
	h.live = func() bool {
		return t.os.IsRegistered(owner) && owner.Methods.Lookup(id.Selector, id.ClassMethod) == entry
	}
	return h, nil
}

// Original returns the implementation currently installed.
func (t *SpaceTarget) Original(h *Handle) *runtime.Implementation {
	return h.Entry.Implementation()
}

// SetActive installs next if prev is still current.
func (t *SpaceTarget) SetActive(h *Handle, prev, next *runtime.Implementation) bool {
	return h.Entry.CompareAndSwapImplementation(prev, next)
}

// AddAlias registers impl under selector on the class defining h.
func (t *SpaceTarget) AddAlias(h *Handle, selector string, impl *runtime.Implementation) error {
	_, err := h.Class.Methods.AddAlias(selector, h.Entry.Types, h.Identity.ClassMethod, impl)
	if err != nil {
		return fmt.Errorf("adding alias for %s: %w", h.Identity.Key(), err)
	}
	return nil
}

// RemoveAlias drops an alias added by AddAlias.
func (t *SpaceTarget) RemoveAlias(h *Handle, selector string) bool {
	return h.Class.Methods.Remove(selector, h.Identity.ClassMethod)
}

// Invoke calls impl with the call's receiver and arguments.
func (t *SpaceTarget) Invoke(impl *runtime.Implementation, call *CallContext) runtime.Value {
	return impl.Call(call.Receiver, call.Args)
}

// InvokeAlias calls the method registered under an alias selector. It
// reports false when the alias is gone.
func (t *SpaceTarget) InvokeAlias(selector string, call *CallContext) (runtime.Value, bool) {
	h := call.Method
	entry := h.Class.Methods.Lookup(selector, h.Identity.ClassMethod)
	if entry == nil {
		return runtime.Value{}, false
	}
	return entry.Invoke(call.Receiver, call.Args), true
}

// LookupEntry finds the entry a send of selector to className would run.
func (t *SpaceTarget) LookupEntry(className, selector string, classMethod bool) *runtime.MethodEntry {
	return t.os.LookupMethod(className, selector, classMethod)
}

// BundleName returns the display name registered for bundle.
func (t *SpaceTarget) BundleName(bundle string) (string, bool) {
	b, ok := t.os.Bundle(bundle)
	if !ok || b.DisplayName == "" {
		return "", false
	}
	return b.DisplayName, true
}

// CallContext is one invocation in flight. Args holds the explicit
// parameters only.
type CallContext struct {
	Method   *Handle
	Receiver *runtime.Instance
	Args     []runtime.Value
}

// withArguments returns a copy of the call whose arguments have the given
// slots replaced. Missing trailing arguments are padded with nil.
func (c *CallContext) withArguments(overrides map[int]runtime.Value) *CallContext {
	n := len(c.Args)
	for idx := range overrides {
		if idx >= n {
			n = idx + 1
		}
	}
	args := make([]runtime.Value, n)
	copy(args, c.Args)
	for i := len(c.Args); i < n; i++ {
		args[i] = runtime.NilValue()
	}
	for idx, v := range overrides {
		args[idx] = v
	}
	return &CallContext{Method: c.Method, Receiver: c.Receiver, Args: args}
}
