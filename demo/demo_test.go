package demo

import (
	"strings"
	"testing"

	"github.com/chazu/patchwork/lib/runtime"
)

func TestDemoRuntime(t *testing.T) {
	rt := NewRuntime()

	cart, err := rt.NewInstance("Cart")
	if err != nil {
		t.Fatal(err)
	}
	if !rt.SendDirect(cart, "isEmpty", nil).AsBool() {
		t.Errorf("new cart should be empty")
	}
	rt.SendDirect(cart, "addItem:price:", []runtime.Value{runtime.IntValue(4), runtime.FloatValue(2.5)})
	if got := rt.SendDirect(cart, "total", nil).AsFloat(); got != 10 {
		t.Errorf("total = %v, want 10", got)
	}
	if ok := rt.SendDirect(cart, "applyDiscount:", []runtime.Value{runtime.FloatValue(0.9)}); ok.AsBool() {
		t.Errorf("oversized discount accepted")
	}
	if got := rt.SendClass("Cart", "maxItems", nil).AsInt(); got != 99 {
		t.Errorf("maxItems = %d", got)
	}

	class := rt.OS.GetClass("FeatureFlags")
	if got := rt.OS.BundleOf(class); got != FlagsBundle {
		t.Errorf("FeatureFlags bundle = %q", got)
	}
}

func TestDescribe(t *testing.T) {
	lines, err := Describe(NewRuntime())
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 8 {
		t.Fatalf("lines = %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "-[Cart isEmpty]") || !strings.HasSuffix(lines[0], "false") {
		t.Errorf("line 0 = %q", lines[0])
	}
}
