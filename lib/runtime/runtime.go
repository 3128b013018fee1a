package runtime

// Runtime is the main entry point for the object system.
// It coordinates the object space and dispatch.
type Runtime struct {
	OS         *ObjectSpace
	Dispatcher *Dispatcher
}

// Config holds runtime configuration
type Config struct {
	MainBundle  string // Bundle owning classes registered without one
	DisplayName string // Display name of the main bundle
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		MainBundle: DefaultMainBundle,
	}
}

// New creates a new runtime with the given configuration
func New(cfg *Config) *Runtime {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	r := &Runtime{
		OS: NewObjectSpace(),
	}
	r.OS.SetMainBundle(cfg.MainBundle)
	if cfg.DisplayName != "" {
		r.OS.RegisterBundle(r.OS.MainBundle(), cfg.DisplayName)
	}

	r.Dispatcher = NewDispatcher(r.OS)

	RegisterObjectClass(r)

	return r
}

// RegisterClass registers a native class in the main bundle
func (r *Runtime) RegisterClass(name, superclass string, instanceVars []string, methods *MethodTable) *Class {
	return r.OS.RegisterClass(name, superclass, instanceVars, methods)
}

// RegisterBundleClass registers a native class owned by bundle
func (r *Runtime) RegisterBundleClass(bundle, name, superclass string, instanceVars []string, methods *MethodTable) *Class {
	return r.OS.RegisterBundleClass(bundle, name, superclass, instanceVars, methods)
}

// Send dispatches a message
func (r *Runtime) Send(receiver, selector string, args []Value) Value {
	return r.Dispatcher.Send(receiver, selector, args)
}

// SendDirect dispatches a message with an instance pointer
func (r *Runtime) SendDirect(inst *Instance, selector string, args []Value) Value {
	return r.Dispatcher.SendDirect(inst, selector, args)
}

// SendClass dispatches a class method
func (r *Runtime) SendClass(className, selector string, args []Value) Value {
	return r.Dispatcher.SendClass(className, selector, args)
}

// NewInstance creates a new instance of a class
func (r *Runtime) NewInstance(className string) (*Instance, error) {
	return r.OS.NewInstance(className)
}

// GetInstance retrieves an instance by ID
func (r *Runtime) GetInstance(id string) *Instance {
	return r.OS.GetInstance(id)
}
