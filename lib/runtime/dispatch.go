package runtime

import (
	"fmt"
	"strings"
)

// Dispatcher handles message dispatch in the runtime. Every send reads the
// method entry's current implementation, so swapped implementations take
// effect on the next call.
type Dispatcher struct {
	os *ObjectSpace
}

// NewDispatcher creates a new message dispatcher
func NewDispatcher(os *ObjectSpace) *Dispatcher {
	return &Dispatcher{
		os: os,
	}
}

// Send dispatches a message to a receiver.
// receiver can be:
//   - An instance ID (lowercase_uuid format)
//   - A class name (for class method calls)
//
// Returns the result value
func (d *Dispatcher) Send(receiver string, selector string, args []Value) Value {
	// Check if receiver is a class name (starts with uppercase or contains ::)
	isClassMethod := false
	if len(receiver) > 0 {
		firstChar := receiver[0]
		isClassMethod = (firstChar >= 'A' && firstChar <= 'Z') || strings.Contains(receiver, "::")
	}

	if isClassMethod {
		return d.SendClass(receiver, selector, args)
	}

	return d.sendInstanceMessage(receiver, selector, args)
}

// SendClass dispatches a class method
func (d *Dispatcher) SendClass(className string, selector string, args []Value) Value {
	method := d.os.LookupMethod(className, selector, true)
	if method != nil {
		// Class methods run with a nil self
		return method.Invoke(nil, args)
	}

	if selector == "new" {
		return d.handleNew(className, args)
	}

	return ErrorValue(fmt.Sprintf("unknown class method: +[%s %s]", className, selector))
}

// sendInstanceMessage dispatches an instance method
func (d *Dispatcher) sendInstanceMessage(instanceID string, selector string, args []Value) Value {
	inst := d.os.GetInstance(instanceID)
	if inst == nil {
		return ErrorValue(fmt.Sprintf("instance not found: %s", instanceID))
	}
	return d.SendDirect(inst, selector, args)
}

// handleNew creates a new instance and sends it init when defined
func (d *Dispatcher) handleNew(className string, args []Value) Value {
	inst, err := d.os.NewInstance(className)
	if err != nil {
		return ErrorValue(err.Error())
	}

	if initMethod := d.os.LookupMethod(className, "init", false); initMethod != nil {
		if res := initMethod.Invoke(inst, args); res.IsError() {
			return res
		}
	}

	return InstanceValue(inst)
}

// SendDirect dispatches a message when you already have the instance pointer
// This is faster than Send because it skips the instance lookup
func (d *Dispatcher) SendDirect(inst *Instance, selector string, args []Value) Value {
	if inst == nil {
		return ErrorValue("nil instance")
	}

	_, method := lookupFrom(inst.Class, selector, false)
	if method != nil {
		return method.Invoke(inst, args)
	}

	return ErrorValue(fmt.Sprintf("unknown method: -[%s %s]", inst.ClassName, selector))
}

// SendSuper dispatches a message starting from the superclass
func (d *Dispatcher) SendSuper(inst *Instance, selector string, args []Value) Value {
	if inst == nil {
		return ErrorValue("nil instance")
	}

	class := inst.Class
	if class == nil || class.SuperclassP == nil {
		return ErrorValue("no superclass")
	}

	if _, method := lookupFrom(class.SuperclassP, selector, false); method != nil {
		return method.Invoke(inst, args)
	}

	return ErrorValue(fmt.Sprintf("unknown super method: %s", selector))
}

// RespondsTo reports whether an instance of className understands selector.
func (d *Dispatcher) RespondsTo(className, selector string, isClassMethod bool) bool {
	return d.os.LookupMethod(className, selector, isClassMethod) != nil
}
