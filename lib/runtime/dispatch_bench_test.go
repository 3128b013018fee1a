package runtime

import (
	"testing"
)

func newBenchCounter() (*Dispatcher, *Instance, *MethodEntry) {
	os := NewObjectSpace()
	d := NewDispatcher(os)

	methods := NewMethodTable()
	entry := methods.AddInstanceMethod("increment", "q@:", func(self *Instance, args []Value) Value {
		current := self.GetVar("value").AsInt()
		self.SetVar("value", IntValue(current+1))
		return self.GetVar("value")
	})

	os.RegisterClass("Counter", "", []string{"value"}, methods)
	counter, _ := os.NewInstance("Counter")
	counter.SetVar("value", IntValue(0))
	return d, counter, entry
}

// BenchmarkNativeDispatch measures pure native method dispatch performance.
func BenchmarkNativeDispatch(b *testing.B) {
	d, counter, _ := newBenchCounter()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.SendDirect(counter, "increment", nil)
	}
}

// BenchmarkNativeDispatchWithLookup measures dispatch including instance lookup.
func BenchmarkNativeDispatchWithLookup(b *testing.B) {
	d, counter, _ := newBenchCounter()
	counterID := counter.ID

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Send(counterID, "increment", nil)
	}
}

// BenchmarkSwappedImplementation measures dispatch through a replaced body.
func BenchmarkSwappedImplementation(b *testing.B) {
	d, counter, entry := newBenchCounter()
	orig := entry.Implementation()
	entry.SetImplementation(NewImplementation("wrapped", func(self *Instance, args []Value) Value {
		return orig.Call(self, args)
	}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.SendDirect(counter, "increment", nil)
	}
}
