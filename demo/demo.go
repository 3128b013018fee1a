// Package demo registers a small storefront application with a runtime so
// the patch tooling has something live to patch.
package demo

import (
	"fmt"

	"github.com/chazu/patchwork/lib/runtime"
)

// Bundle identifiers used by the demo classes.
const (
	ShopBundle  = "com.example.shop"
	FlagsBundle = "com.example.flags"
)

// Register adds the demo bundles and classes to rt.
//
//	Cart (shop)          items, total, discount: isEmpty, itemCount, total,
//	                     addItem:price:, applyDiscount:, owner, setOwner:
//	Cart (class)         +maxItems
//	FeatureFlags (flags) isEnabled:, rolloutPercent, variantFor:
func Register(rt *runtime.Runtime) {
	rt.OS.RegisterBundle(ShopBundle, "Shop")
	rt.OS.RegisterBundle(FlagsBundle, "Feature Flags")

	cart := runtime.NewMethodTable()
	cart.AddInstanceMethod("isEmpty", "B16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.BoolValue(self.GetVar("items").AsInt() == 0)
	})
	cart.AddInstanceMethod("itemCount", "q16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.IntValue(self.GetVar("items").AsInt())
	})
	cart.AddInstanceMethod("total", "d16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		total := self.GetVar("total").AsFloat()
		if d := self.GetVar("discount").AsFloat(); d > 0 {
			total *= 1 - d
		}
		return runtime.FloatValue(total)
	})
	cart.AddInstanceMethod("addItem:price:", "v32@0:8q16d24", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		qty := args[0].AsInt()
		self.SetVar("items", runtime.IntValue(self.GetVar("items").AsInt()+qty))
		self.SetVar("total", runtime.FloatValue(self.GetVar("total").AsFloat()+float64(qty)*args[1].AsFloat()))
		return runtime.NilValue()
	})
	cart.AddInstanceMethod("applyDiscount:", "B24@0:8d16", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		d := args[0].AsFloat()
		if d < 0 || d > 0.5 {
			return runtime.BoolValue(false)
		}
		self.SetVar("discount", runtime.FloatValue(d))
		return runtime.BoolValue(true)
	})
	cart.AddInstanceMethod("owner", "@16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return self.GetVar("owner")
	})
	cart.AddInstanceMethod("setOwner:", "v24@0:8@16", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		self.SetVar("owner", args[0])
		return runtime.NilValue()
	})
	cart.AddClassMethod("maxItems", "Q16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.UintValue(99)
	})
	rt.RegisterBundleClass(ShopBundle, "Cart", "Object", []string{"items", "total", "discount", "owner"}, cart)

	flags := runtime.NewMethodTable()
	flags.AddInstanceMethod("isEnabled:", "B24@0:8@16", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.BoolValue(false)
	})
	flags.AddInstanceMethod("rolloutPercent", "i16@0:8", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.IntValue(10)
	})
	flags.AddInstanceMethod("variantFor:", "@24@0:8@16", func(self *runtime.Instance, args []runtime.Value) runtime.Value {
		return runtime.StringValue("control")
	})
	rt.RegisterBundleClass(FlagsBundle, "FeatureFlags", "Object", nil, flags)
}

// NewRuntime returns a runtime with the demo registered.
func NewRuntime() *runtime.Runtime {
	rt := runtime.New(&runtime.Config{MainBundle: ShopBundle, DisplayName: "Shop"})
	Register(rt)
	return rt
}

// Describe sends each demo message to a fresh instance and renders the
// results, one per line, so patches are visible.
func Describe(rt *runtime.Runtime) ([]string, error) {
	cart, err := rt.NewInstance("Cart")
	if err != nil {
		return nil, err
	}
	rt.SendDirect(cart, "addItem:price:", []runtime.Value{runtime.IntValue(2), runtime.FloatValue(5)})
	discounted := rt.SendDirect(cart, "applyDiscount:", []runtime.Value{runtime.FloatValue(0.1)})

	flags, err := rt.NewInstance("FeatureFlags")
	if err != nil {
		return nil, err
	}

	lines := []struct {
		key string
		v   runtime.Value
	}{
		{"-[Cart isEmpty]", rt.SendDirect(cart, "isEmpty", nil)},
		{"-[Cart itemCount]", rt.SendDirect(cart, "itemCount", nil)},
		{"-[Cart applyDiscount:]", discounted},
		{"-[Cart total]", rt.SendDirect(cart, "total", nil)},
		{"+[Cart maxItems]", rt.SendClass("Cart", "maxItems", nil)},
		{"-[FeatureFlags isEnabled:]", rt.SendDirect(flags, "isEnabled:", []runtime.Value{runtime.StringValue("checkout")})},
		{"-[FeatureFlags rolloutPercent]", rt.SendDirect(flags, "rolloutPercent", nil)},
		{"-[FeatureFlags variantFor:]", rt.SendDirect(flags, "variantFor:", []runtime.Value{runtime.StringValue("checkout")})},
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf("%-31s %s", l.key, l.v)
	}
	return out, nil
}
