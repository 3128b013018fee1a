package runtime

// RegisterObjectClass registers the Object root class with the runtime.
// This should be called during runtime initialization
func RegisterObjectClass(r *Runtime) *Class {
	methods := NewMethodTable()

	// perform: selector - dynamic method dispatch by name
	methods.AddInstanceMethod("perform:", "@@::", func(self *Instance, args []Value) Value {
		if len(args) < 1 {
			return ErrorValue("perform: requires selector argument")
		}
		return r.SendDirect(self, args[0].AsString(), nil)
	})

	// perform: selector with: arg1 - dispatch with one argument
	methods.AddInstanceMethod("perform:with:", "@@::@", func(self *Instance, args []Value) Value {
		if len(args) < 2 {
			return ErrorValue("perform:with: requires selector and argument")
		}
		return r.SendDirect(self, args[0].AsString(), []Value{args[1]})
	})

	// perform: selector with: arg1 with: arg2 - dispatch with two arguments
	methods.AddInstanceMethod("perform:with:with:", "@@::@@", func(self *Instance, args []Value) Value {
		if len(args) < 3 {
			return ErrorValue("perform:with:with: requires selector and two arguments")
		}
		return r.SendDirect(self, args[0].AsString(), []Value{args[1], args[2]})
	})

	methods.AddInstanceMethod("respondsToSelector:", "B@::", func(self *Instance, args []Value) Value {
		if len(args) < 1 {
			return BoolValue(false)
		}
		return BoolValue(r.Dispatcher.RespondsTo(self.ClassName, args[0].AsString(), false))
	})

	methods.AddInstanceMethod("description", `@"NSString"@:`, func(self *Instance, args []Value) Value {
		return StringValue("<" + self.ClassName + " " + self.ID + ">")
	})

	methods.AddInstanceMethod("class", "#@:", func(self *Instance, args []Value) Value {
		return ClassValue(self.ClassName)
	})

	methods.AddInstanceMethod("valueForKey:", "@@:@", func(self *Instance, args []Value) Value {
		if len(args) < 1 {
			return NilValue()
		}
		return self.GetVar(args[0].AsString())
	})

	methods.AddInstanceMethod("setValue:forKey:", "v@:@@", func(self *Instance, args []Value) Value {
		if len(args) < 2 {
			return ErrorValue("setValue:forKey: requires a value and a key")
		}
		self.SetVar(args[1].AsString(), args[0])
		return NilValue()
	})

	return r.RegisterClass("Object", "", nil, methods)
}
