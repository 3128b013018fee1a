package patch

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/chazu/patchwork/lib/runtime"
)

const fooBundle = "com.example.foo"

type fixture struct {
	rt  *runtime.Runtime
	m   *Manager
	foo *runtime.Instance

	events atomic.Int32
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rt := runtime.New(nil)
	rt.OS.RegisterBundle(fooBundle, "Foo App")

	methods := runtime.NewMethodTable()
	methods.AddInstanceMethod("bar", "B16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.BoolValue(self.GetVar("flag").AsBool())
	})
	methods.AddInstanceMethod("setValue:forKey:", "v32@0:8@16@24", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		self.SetVar(args[1].AsString(), args[0])
		return runtime.NilValue()
	})
	methods.AddInstanceMethod("count", "q16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.IntValue(7)
	})
	methods.AddInstanceMethod("width", "s16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.IntValue(3)
	})
	methods.AddInstanceMethod("scale:by:", "d32@0:8d16i24", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.FloatValue(args[0].AsFloat() * float64(args[1].AsInt()))
	})
	methods.AddInstanceMethod("echo:", "@24@0:8@16", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return args[0]
	})
	methods.AddInstanceMethod("frame", "{CGRect={CGPoint=dd}{CGSize=dd}}16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.NilValue()
	})
	methods.AddClassMethod("shared", "@16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.StringValue("shared")
	})
	rt.RegisterBundleClass(fooBundle, "Foo", "Object", []string{"flag"}, methods)

	foo, err := rt.NewInstance("Foo")
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	f := &fixture{rt: rt, foo: foo}
	f.m = NewSpaceManager(rt.OS)
	f.m.Subscribe(func(Event) { f.events.Add(1) })
	return f
}

func (f *fixture) send(selector string, args ...runtime.Value) runtime.Value {
	return f.rt.SendDirect(f.foo, selector, args)
}

func fooID(selector string) MethodIdentity {
	return NewIdentity("Foo", selector, false)
}

func TestReturnValuePatchAndUnpatch(t *testing.T) {
	f := newFixture(t)

	if got := f.send("bar"); got.AsBool() {
		t.Fatalf("unpatched bar = %v, want false", got)
	}

	if err := f.m.PatchReturnValue(fooID("bar"), Bool(true)); err != nil {
		t.Fatalf("PatchReturnValue: %v", err)
	}
	got := f.send("bar")
	if got.Type != runtime.TypeBool || !got.AsBool() {
		t.Fatalf("patched bar = %v, want true", got)
	}
	if !f.m.IsPatched(fooID("bar")) {
		t.Errorf("IsPatched = false after patching")
	}

	if !f.m.UnpatchKey("-[Foo bar]", fooBundle) {
		t.Fatalf("UnpatchKey reported nothing removed")
	}
	if got := f.send("bar"); got.AsBool() {
		t.Errorf("bar after unpatch = %v, want false", got)
	}

	// the real computation still runs
	f.foo.SetVar("flag", runtime.BoolValue(true))
	if got := f.send("bar"); !got.AsBool() {
		t.Errorf("bar after unpatch with flag set = %v, want true", got)
	}

	if n := f.events.Load(); n != 2 {
		t.Errorf("events = %d, want 2", n)
	}
}

func TestArgumentPatch(t *testing.T) {
	f := newFixture(t)
	id := fooID("setValue:forKey:")

	if err := f.m.PatchArgument(id, 0, String("X")); err != nil {
		t.Fatalf("PatchArgument: %v", err)
	}

	res := f.send("setValue:forKey:", runtime.StringValue("ignored"), runtime.StringValue("k"))
	if !res.IsNil() {
		t.Errorf("return value = %v, want nil passed through", res)
	}
	if got := f.foo.GetVar("k").AsString(); got != "X" {
		t.Errorf("stored value = %q, want X", got)
	}

	info, ok := f.m.PatchInfo(id)
	if !ok {
		t.Fatalf("PatchInfo missing")
	}
	if info.Kind != KindArguments || !info.Arguments[0].Equal(String("X")) {
		t.Errorf("unexpected info %+v", info)
	}
	if !strings.HasPrefix(info.Alias, aliasPrefix) || !strings.HasSuffix(info.Alias, "_setValue:forKey:") {
		t.Errorf("alias = %q", info.Alias)
	}
	foo := f.rt.OS.GetClass("Foo")
	if foo.Methods.LookupInstanceMethod(info.Alias) == nil {
		t.Errorf("alias not registered on Foo")
	}
	for _, sel := range foo.Methods.Selectors(false) {
		if sel == info.Alias {
			t.Errorf("alias should not be listed as a selector")
		}
	}

	f.m.Unpatch(id)
	if foo.Methods.LookupInstanceMethod(info.Alias) != nil {
		t.Errorf("alias still registered after unpatch")
	}
	f.send("setValue:forKey:", runtime.StringValue("real"), runtime.StringValue("k"))
	if got := f.foo.GetVar("k").AsString(); got != "real" {
		t.Errorf("stored value after unpatch = %q, want real", got)
	}
}

func TestArgumentPatchKeepsOtherArguments(t *testing.T) {
	f := newFixture(t)
	if err := f.m.PatchArguments(fooID("scale:by:"), map[int]Value{1: Int(10)}); err != nil {
		t.Fatalf("PatchArguments: %v", err)
	}
	if got := f.send("scale:by:", runtime.FloatValue(1.5), runtime.IntValue(2)).AsFloat(); got != 15 {
		t.Errorf("scale:by: = %v, want 15", got)
	}
	if got := f.send("scale:by:", runtime.FloatValue(2), runtime.IntValue(99)).AsFloat(); got != 20 {
		t.Errorf("scale:by: = %v, want 20", got)
	}
}

// unpatchingTarget removes a patch right before its alias is invoked.
type unpatchingTarget struct {
	*SpaceTarget
	m  *Manager
	id MethodIdentity
}

func (t *unpatchingTarget) InvokeAlias(selector string, call *CallContext) (runtime.Value, bool) {
	t.m.Unpatch(t.id)
	return t.SpaceTarget.InvokeAlias(selector, call)
}

func TestUnpatchDuringForwardingFallsBackToOriginal(t *testing.T) {
	f := newFixture(t)
	id := fooID("echo:")
	target := &unpatchingTarget{SpaceTarget: NewSpaceTarget(f.rt.OS), id: id}
	m := NewManager(target)
	target.m = m

	if err := m.PatchArgument(id, 0, String("X")); err != nil {
		t.Fatalf("PatchArgument: %v", err)
	}
	res := f.send("echo:", runtime.StringValue("orig"))
	if res.IsError() {
		t.Fatalf("echo: failed after concurrent unpatch: %v", res)
	}
	if got := res.AsString(); got != "X" {
		t.Errorf("echo: = %q, want X", got)
	}
	if m.IsPatched(id) {
		t.Errorf("patch still installed")
	}
	if got := f.send("echo:", runtime.StringValue("orig")).AsString(); got != "orig" {
		t.Errorf("echo: after unpatch = %q, want orig", got)
	}
}

func TestStoredValueTakesSlotKind(t *testing.T) {
	f := newFixture(t)
	if err := f.m.PatchReturnValue(fooID("bar"), Int(1)); err != nil {
		t.Fatal(err)
	}
	if err := f.m.PatchArguments(fooID("scale:by:"), map[int]Value{0: Int(2), 1: Uint(3)}); err != nil {
		t.Fatal(err)
	}
	if info, _ := f.m.PatchInfo(fooID("bar")); !info.ReturnValue.Equal(Bool(true)) {
		t.Errorf("bar value = %v, want true", info.ReturnValue)
	}
	info, _ := f.m.PatchInfo(fooID("scale:by:"))
	if a := info.Arguments[0]; a.Kind != ValueFloat || a.FloatVal != 2 {
		t.Errorf("argument 0 = %+v, want float 2", a)
	}
	if a := info.Arguments[1]; a.Kind != ValueInt || a.IntVal != 3 {
		t.Errorf("argument 1 = %+v, want int 3", a)
	}
}

func TestSecondPatchFails(t *testing.T) {
	f := newFixture(t)
	id := fooID("count")
	if err := f.m.PatchReturnValue(id, Int(42)); err != nil {
		t.Fatalf("PatchReturnValue: %v", err)
	}

	err := f.m.PatchReturnValue(id, Int(1))
	if !IsCode(err, CodeAlreadyPatched) {
		t.Fatalf("second patch error = %v, want %s", err, CodeAlreadyPatched)
	}
	if err := f.m.PatchArgument(fooID("count"), 0, Int(1)); !IsCode(err, CodeAlreadyPatched) {
		t.Errorf("argument patch over return patch = %v, want %s", err, CodeAlreadyPatched)
	}
	if got := f.send("count").AsInt(); got != 42 {
		t.Errorf("count = %d, want the first patch's 42", got)
	}
	if n := f.events.Load(); n != 1 {
		t.Errorf("events = %d, want 1", n)
	}
}

func TestSubclassSharesEntry(t *testing.T) {
	f := newFixture(t)
	f.rt.RegisterBundleClass(fooBundle, "SubFoo", "Foo", nil, nil)
	sub, _ := f.rt.NewInstance("SubFoo")

	if err := f.m.PatchReturnValue(NewIdentity("SubFoo", "count", false), Int(5)); err != nil {
		t.Fatalf("PatchReturnValue: %v", err)
	}
	if got := f.rt.SendDirect(sub, "count", nil).AsInt(); got != 5 {
		t.Errorf("SubFoo count = %d, want 5", got)
	}
	if err := f.m.PatchReturnValue(fooID("count"), Int(6)); !IsCode(err, CodeAlreadyPatched) {
		t.Errorf("patching the defining class = %v, want %s", err, CodeAlreadyPatched)
	}
}

func TestInstallErrorsLeaveNoState(t *testing.T) {
	tests := []struct {
		name string
		do   func(m *Manager) error
		code Code
	}{
		{"unknown class", func(m *Manager) error {
			return m.PatchReturnValue(NewIdentity("Nope", "bar", false), Bool(true))
		}, CodeInvalidTarget},
		{"unknown selector", func(m *Manager) error {
			return m.PatchReturnValue(fooID("nope"), Bool(true))
		}, CodeInvalidTarget},
		{"class side mismatch", func(m *Manager) error {
			return m.PatchReturnValue(NewIdentity("Foo", "bar", true), Bool(true))
		}, CodeInvalidTarget},
		{"index out of range", func(m *Manager) error {
			return m.PatchArgument(fooID("setValue:forKey:"), 2, String("x"))
		}, CodeIndexOutOfRange},
		{"negative index", func(m *Manager) error {
			return m.PatchArgument(fooID("setValue:forKey:"), -1, String("x"))
		}, CodeIndexOutOfRange},
		{"no arguments", func(m *Manager) error {
			return m.PatchArguments(fooID("setValue:forKey:"), nil)
		}, CodeIndexOutOfRange},
		{"string for bool", func(m *Manager) error {
			return m.PatchReturnValue(fooID("bar"), String("yes"))
		}, CodeTypeCoercion},
		{"overflow short", func(m *Manager) error {
			return m.PatchReturnValue(fooID("width"), Int(70000))
		}, CodeTypeCoercion},
		{"struct return", func(m *Manager) error {
			return m.PatchReturnValue(fooID("frame"), Int(1))
		}, CodeTypeCoercion},
		{"string for double argument", func(m *Manager) error {
			return m.PatchArgument(fooID("scale:by:"), 0, String("big"))
		}, CodeTypeCoercion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			before := f.rt.OS.GetClass("Foo").Methods.Selectors(false)

			err := tt.do(f.m)
			if !IsCode(err, tt.code) {
				t.Fatalf("error = %v, want %s", err, tt.code)
			}
			if len(f.m.Bundles()) != 0 {
				t.Errorf("bundles = %v after failed install", f.m.Bundles())
			}
			if n := f.events.Load(); n != 0 {
				t.Errorf("events = %d after failed install", n)
			}
			after := f.rt.OS.GetClass("Foo").Methods.Selectors(false)
			if strings.Join(before, ",") != strings.Join(after, ",") {
				t.Errorf("method table changed: %v -> %v", before, after)
			}
			if got := f.send("count").AsInt(); got != 7 {
				t.Errorf("count = %d, want 7", got)
			}
		})
	}
}

func TestUnpatchIsIdempotent(t *testing.T) {
	f := newFixture(t)
	if f.m.Unpatch(fooID("bar")) {
		t.Errorf("Unpatch of an unpatched method reported a removal")
	}
	if f.m.UnpatchKey("-[Foo bar]", fooBundle) {
		t.Errorf("UnpatchKey of an unpatched method reported a removal")
	}
	if err := f.m.PatchReturnValue(fooID("bar"), Bool(true)); err != nil {
		t.Fatal(err)
	}
	if !f.m.Unpatch(fooID("bar")) || f.m.Unpatch(fooID("bar")) {
		t.Errorf("Unpatch should remove once")
	}
	if n := f.events.Load(); n != 2 {
		t.Errorf("events = %d, want 2", n)
	}
}

func TestDisableAndEnableBundle(t *testing.T) {
	f := newFixture(t)
	if err := f.m.PatchReturnValue(fooID("count"), Int(42)); err != nil {
		t.Fatal(err)
	}
	if err := f.m.PatchArgument(fooID("echo:"), 0, String("patched")); err != nil {
		t.Fatal(err)
	}

	f.m.SetEnabled(fooBundle, false)
	if f.m.IsEnabled(fooBundle) {
		t.Fatalf("bundle still enabled")
	}
	if got := f.send("count").AsInt(); got != 7 {
		t.Errorf("disabled count = %d, want 7", got)
	}
	if got := f.send("echo:", runtime.StringValue("mine")).AsString(); got != "mine" {
		t.Errorf("disabled echo: = %q, want mine", got)
	}
	if !f.m.IsPatched(fooID("count")) {
		t.Errorf("disabled patches must stay registered")
	}
	if info, _ := f.m.PatchInfo(fooID("count")); info.Enabled {
		t.Errorf("PatchInfo.Enabled = true for disabled bundle")
	}
	if _, ok := f.m.ValueForPatchedCall(f.foo, "count"); ok {
		t.Errorf("ValueForPatchedCall reports a substitution for a disabled bundle")
	}

	f.m.SetEnabled(fooBundle, true)
	if got := f.send("count").AsInt(); got != 42 {
		t.Errorf("re-enabled count = %d, want 42", got)
	}
	if got := f.send("echo:", runtime.StringValue("mine")).AsString(); got != "patched" {
		t.Errorf("re-enabled echo: = %q, want patched", got)
	}

	// no-op toggles do not notify
	before := f.events.Load()
	f.m.SetEnabled(fooBundle, true)
	if f.events.Load() != before {
		t.Errorf("redundant SetEnabled notified")
	}
}

func TestUnpatchAll(t *testing.T) {
	f := newFixture(t)
	other := runtime.NewMethodTable()
	other.AddInstanceMethod("name", "@16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.StringValue("other")
	})
	f.rt.RegisterBundleClass("com.example.other", "Other", "", nil, other)
	otherInst, _ := f.rt.NewInstance("Other")

	for _, err := range []error{
		f.m.PatchReturnValue(fooID("count"), Int(1)),
		f.m.PatchArgument(fooID("echo:"), 0, Int(2)),
		f.m.PatchReturnValue(NewIdentity("Other", "name", false), String("patched")),
		f.m.PatchReturnValue(NewIdentity("Foo", "shared", true), String("patched")),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	if got := f.m.Bundles(); len(got) != 2 || got[0] != "com.example.foo" || got[1] != "com.example.other" {
		t.Fatalf("Bundles = %v", got)
	}
	if got := f.m.Keys(fooBundle); strings.Join(got, " ") != "+[Foo shared] -[Foo count] -[Foo echo:]" {
		t.Errorf("Keys = %q", got)
	}
	f.m.SetEnabled("com.example.other", false)

	infos := f.m.Patches()
	if len(infos) != 4 {
		t.Fatalf("Patches = %d entries, want 4", len(infos))
	}
	if infos[0].Key != "+[Foo shared]" || infos[3].Bundle != "com.example.other" || infos[3].Enabled {
		t.Errorf("Patches order or enablement wrong: %+v", infos)
	}

	before := f.events.Load()
	if n := f.m.UnpatchAll(); n != 4 {
		t.Errorf("UnpatchAll = %d, want 4", n)
	}
	if f.events.Load() != before+1 {
		t.Errorf("UnpatchAll should notify exactly once")
	}
	if len(f.m.Bundles()) != 0 {
		t.Errorf("bundles remain: %v", f.m.Bundles())
	}
	if !f.m.IsEnabled("com.example.other") {
		t.Errorf("UnpatchAll should clear enablement flags")
	}
	if got := f.send("count").AsInt(); got != 7 {
		t.Errorf("count = %d, want 7", got)
	}
	if got := f.rt.SendDirect(otherInst, "name", nil).AsString(); got != "other" {
		t.Errorf("name = %q, want other", got)
	}
	if got := f.rt.SendClass("Foo", "shared", nil).AsString(); got != "shared" {
		t.Errorf("shared = %q", got)
	}
}

func TestClassMethodPatch(t *testing.T) {
	f := newFixture(t)
	id := NewIdentity("Foo", "shared", true)
	if err := f.m.PatchReturnValue(id, String("patched")); err != nil {
		t.Fatal(err)
	}
	if got := f.rt.SendClass("Foo", "shared", nil).AsString(); got != "patched" {
		t.Errorf("+[Foo shared] = %q, want patched", got)
	}
	sub, ok := f.m.ValueForPatchedClassCall("Foo", "shared")
	if !ok || sub.Return.AsString() != "patched" {
		t.Errorf("ValueForPatchedClassCall = %+v, %v", sub, ok)
	}
	if info, ok := f.m.PatchInfoForSelector("Foo", "shared"); !ok || info.Key != "+[Foo shared]" {
		t.Errorf("PatchInfoForSelector = %+v, %v", info, ok)
	}
}

func TestReplace(t *testing.T) {
	f := newFixture(t)
	id := fooID("count")
	if err := f.m.PatchReturnValue(id, Int(1)); err != nil {
		t.Fatal(err)
	}
	if err := f.m.Replace(id, ReturnSpec(Int(2))); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got := f.send("count").AsInt(); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}

	// an invalid replacement leaves the current patch alone
	if err := f.m.Replace(id, ReturnSpec(String("x"))); !IsCode(err, CodeTypeCoercion) {
		t.Fatalf("Replace with bad value = %v", err)
	}
	if got := f.send("count").AsInt(); got != 2 {
		t.Errorf("count after failed replace = %d, want 2", got)
	}

	if err := f.m.Replace(fooID("echo:"), ArgumentsSpec(map[int]Value{0: String("a")})); err != nil {
		t.Fatalf("Replace on unpatched method: %v", err)
	}
	if got := f.send("echo:", runtime.StringValue("b")).AsString(); got != "a" {
		t.Errorf("echo: = %q, want a", got)
	}
}

func TestValueForPatchedCall(t *testing.T) {
	f := newFixture(t)
	if _, ok := f.m.ValueForPatchedCall(f.foo, "count"); ok {
		t.Errorf("substitution reported for unpatched method")
	}
	if err := f.m.PatchReturnValue(fooID("count"), Uint(9)); err != nil {
		t.Fatal(err)
	}
	if err := f.m.PatchArgument(fooID("echo:"), 0, Array(Int(1), Null())); err != nil {
		t.Fatal(err)
	}

	sub, ok := f.m.ValueForPatchedCall(f.foo, "count")
	if !ok || sub.Kind != KindReturnValue || sub.Return.AsInt() != 9 {
		t.Errorf("count substitution = %+v, %v", sub, ok)
	}
	// q is signed, so an unsigned override lands as a signed integer
	if sub.Return.Type != runtime.TypeInt {
		t.Errorf("count substitution type = %s, want int", sub.Return.Type)
	}

	sub, ok = f.m.ValueForPatchedCall(f.foo, "echo:")
	if !ok || sub.Kind != KindArguments || sub.Arguments[0].Type != runtime.TypeArray {
		t.Errorf("echo: substitution = %+v, %v", sub, ok)
	}
}

func TestFailsClosedAfterClassUnload(t *testing.T) {
	f := newFixture(t)
	if err := f.m.PatchArgument(fooID("echo:"), 0, String("x")); err != nil {
		t.Fatal(err)
	}
	if err := f.m.PatchReturnValue(fooID("count"), Int(1)); err != nil {
		t.Fatal(err)
	}
	f.m.SetEnabled(fooBundle, false)
	f.rt.OS.UnregisterClass("Foo")

	// existing instances still reach the stubs
	if res := f.send("echo:", runtime.StringValue("y")); !res.IsError() {
		t.Errorf("echo: after unload = %v, want an error value", res)
	}
	f.m.SetEnabled(fooBundle, true)
	if res := f.send("echo:", runtime.StringValue("y")); !res.IsError() {
		t.Errorf("enabled echo: after unload = %v, want an error value", res)
	}

	// removing stale patches still works
	if !f.m.Unpatch(fooID("echo:")) || !f.m.Unpatch(fooID("count")) {
		t.Errorf("stale patches could not be removed")
	}
}

func TestNestedInvocationIsPatchedAtEveryLevel(t *testing.T) {
	f := newFixture(t)
	var seen []string
	methods := runtime.NewMethodTable()
	methods.AddInstanceMethod("record:", "v24@0:8@16", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		seen = append(seen, args[0].AsString())
		if len(seen) < 3 {
			f.rt.SendDirect(self, "record:", []runtime.Value{runtime.StringValue("inner")})
		}
		return runtime.NilValue()
	})
	f.rt.RegisterBundleClass(fooBundle, "Recorder", "", nil, methods)
	rec, _ := f.rt.NewInstance("Recorder")

	if err := f.m.PatchArgument(NewIdentity("Recorder", "record:", false), 0, String("X")); err != nil {
		t.Fatal(err)
	}
	f.rt.SendDirect(rec, "record:", []runtime.Value{runtime.StringValue("outer")})

	if strings.Join(seen, ",") != "X,X,X" {
		t.Errorf("seen = %v, want X at every level", seen)
	}
}

func TestDisplayName(t *testing.T) {
	rt := runtime.New(&runtime.Config{MainBundle: "com.example.main", DisplayName: "Main"})
	rt.OS.RegisterBundle("com.example.runtime", "From Runtime")
	m := NewSpaceManager(rt.OS, WithDisplayNames(map[string]string{"com.example.conf": "From Config"}))

	tests := map[string]string{
		"com.example.conf":    "From Config",
		"com.example.runtime": "From Runtime",
		"com.example.main":    "Main",
		"com.example.unknown": "com.example.unknown",
	}
	for bundle, want := range tests {
		if got := m.DisplayName(bundle); got != want {
			t.Errorf("DisplayName(%s) = %q, want %q", bundle, got, want)
		}
	}

	m.SetDisplayName("com.example.runtime", "Override")
	if got := m.DisplayName("com.example.runtime"); got != "Override" {
		t.Errorf("DisplayName after SetDisplayName = %q", got)
	}
}

func TestSubscribeCancel(t *testing.T) {
	f := newFixture(t)
	var n int
	cancel := f.m.Subscribe(func(ev Event) {
		if ev.Name != PatchesUpdated {
			t.Errorf("event name = %q", ev.Name)
		}
		n++
	})
	f.m.PatchReturnValue(fooID("count"), Int(1))
	cancel()
	cancel()
	f.m.Unpatch(fooID("count"))
	if n != 1 {
		t.Errorf("received %d events, want 1", n)
	}
}

func TestConcurrentCallsWhilePatching(t *testing.T) {
	f := newFixture(t)
	id := fooID("count")

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if v := f.send("count").AsInt(); v != 7 && v != 42 {
					t.Errorf("count = %d", v)
					return
				}
				f.m.ValueForPatchedCall(f.foo, "count")
			}
		}()
	}

	for i := 0; i < 200; i++ {
		if err := f.m.PatchReturnValue(id, Int(42)); err != nil {
			t.Errorf("PatchReturnValue: %v", err)
			break
		}
		f.m.SetEnabled(fooBundle, i%2 == 0)
		f.m.Unpatch(id)
	}
	close(stop)
	wg.Wait()

	if got := f.send("count").AsInt(); got != 7 {
		t.Errorf("count after churn = %d, want 7", got)
	}
}
