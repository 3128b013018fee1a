package runtime

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/chazu/patchwork/typeenc"
)

// MethodFunc is the signature for native method implementations.
// Class methods receive a nil self.
type MethodFunc func(self *Instance, args []Value) Value

// Implementation is the swappable body of a method entry. Entries hold a
// pointer to one, so identity comparison tells whether the body changed.
type Implementation struct {
	name string
	fn   MethodFunc
}

// NewImplementation wraps fn. The name is informational.
func NewImplementation(name string, fn MethodFunc) *Implementation {
	return &Implementation{name: name, fn: fn}
}

// Name returns the implementation's informational name.
func (impl *Implementation) Name() string {
	if impl == nil {
		return ""
	}
	return impl.name
}

// Call runs the implementation. A nil implementation yields an error value.
func (impl *Implementation) Call(self *Instance, args []Value) Value {
	if impl == nil || impl.fn == nil {
		return ErrorValue("method has no implementation")
	}
	return impl.fn(self, args)
}

// MethodFlags describes method properties
type MethodFlags uint32

const (
	MethodNative      MethodFlags = 1 << iota // Implemented in native code
	MethodClassMethod                         // Is a class method (not instance)
	MethodAlias                               // Added at runtime under a generated selector
)

// MethodEntry describes a single method
type MethodEntry struct {
	Selector  string
	Types     string
	Signature typeenc.Signature
	// SignatureErr is set when Types could not be decoded.
	SignatureErr error
	NumArgs      int
	Flags        MethodFlags

	impl atomic.Pointer[Implementation]
}

func newMethodEntry(selector, types string, impl *Implementation, flags MethodFlags) *MethodEntry {
	if types == "" {
		types = typeenc.DefaultTypes(selector)
	}
	m := &MethodEntry{
		Selector: selector,
		Types:    types,
		Flags:    flags,
	}
	sig, err := typeenc.ParseSignature(types)
	if err != nil {
		m.SignatureErr = err
		m.NumArgs = strings.Count(selector, ":")
	} else {
		m.Signature = sig
		m.NumArgs = sig.NumArgs()
	}
	m.impl.Store(impl)
	return m
}

// IsClassMethod reports whether the entry lives in a class method table.
func (m *MethodEntry) IsClassMethod() bool {
	return m.Flags&MethodClassMethod != 0
}

// Implementation returns the current body.
func (m *MethodEntry) Implementation() *Implementation {
	return m.impl.Load()
}

// SetImplementation installs impl and returns the previous body.
func (m *MethodEntry) SetImplementation(impl *Implementation) *Implementation {
	return m.impl.Swap(impl)
}

// CompareAndSwapImplementation installs next only if the current body is
// still prev.
func (m *MethodEntry) CompareAndSwapImplementation(prev, next *Implementation) bool {
	return m.impl.CompareAndSwap(prev, next)
}

// Invoke calls the current body.
func (m *MethodEntry) Invoke(self *Instance, args []Value) Value {
	return m.impl.Load().Call(self, args)
}

// MethodTable holds instance and class methods for a class
type MethodTable struct {
	mu              sync.RWMutex
	InstanceMethods map[string]*MethodEntry
	ClassMethods    map[string]*MethodEntry
}

// NewMethodTable creates an empty method table
func NewMethodTable() *MethodTable {
	return &MethodTable{
		InstanceMethods: make(map[string]*MethodEntry),
		ClassMethods:    make(map[string]*MethodEntry),
	}
}

// AddInstanceMethod adds an instance method. An empty types string gets an
// all-object signature derived from the selector.
func (mt *MethodTable) AddInstanceMethod(selector, types string, impl MethodFunc) *MethodEntry {
	entry := newMethodEntry(selector, types, NewImplementation(selector, impl), MethodNative)
	mt.mu.Lock()
	mt.InstanceMethods[selector] = entry
	mt.mu.Unlock()
	return entry
}

// AddClassMethod adds a class method
func (mt *MethodTable) AddClassMethod(selector, types string, impl MethodFunc) *MethodEntry {
	entry := newMethodEntry(selector, types, NewImplementation(selector, impl), MethodNative|MethodClassMethod)
	mt.mu.Lock()
	mt.ClassMethods[selector] = entry
	mt.mu.Unlock()
	return entry
}

// AddAlias registers impl under a new selector. Fails if the selector is
// already taken.
func (mt *MethodTable) AddAlias(selector, types string, classMethod bool, impl *Implementation) (*MethodEntry, error) {
	flags := MethodNative | MethodAlias
	if classMethod {
		flags |= MethodClassMethod
	}
	entry := newMethodEntry(selector, types, impl, flags)

	mt.mu.Lock()
	defer mt.mu.Unlock()
	methods := mt.InstanceMethods
	if classMethod {
		methods = mt.ClassMethods
	}
	if _, exists := methods[selector]; exists {
		return nil, fmt.Errorf("selector %s already defined", selector)
	}
	methods[selector] = entry
	return entry, nil
}

// Remove deletes a method. Returns false if it was not present.
func (mt *MethodTable) Remove(selector string, classMethod bool) bool {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	methods := mt.InstanceMethods
	if classMethod {
		methods = mt.ClassMethods
	}
	if _, ok := methods[selector]; !ok {
		return false
	}
	delete(methods, selector)
	return true
}

// Lookup finds a method in this table only.
func (mt *MethodTable) Lookup(selector string, classMethod bool) *MethodEntry {
	if classMethod {
		return mt.LookupClassMethod(selector)
	}
	return mt.LookupInstanceMethod(selector)
}

// LookupInstanceMethod finds an instance method
func (mt *MethodTable) LookupInstanceMethod(selector string) *MethodEntry {
	if mt == nil {
		return nil
	}
	mt.mu.RLock()
	defer mt.mu.RUnlock()
	return mt.InstanceMethods[selector]
}

// LookupClassMethod finds a class method
func (mt *MethodTable) LookupClassMethod(selector string) *MethodEntry {
	if mt == nil {
		return nil
	}
	mt.mu.RLock()
	defer mt.mu.RUnlock()
	return mt.ClassMethods[selector]
}

// Selectors returns the sorted selectors of one side of the table.
// Aliases are left out.
func (mt *MethodTable) Selectors(classMethod bool) []string {
	if mt == nil {
		return nil
	}
	mt.mu.RLock()
	defer mt.mu.RUnlock()
	methods := mt.InstanceMethods
	if classMethod {
		methods = mt.ClassMethods
	}
	out := make([]string, 0, len(methods))
	for sel, m := range methods {
		if m.Flags&MethodAlias == 0 {
			out = append(out, sel)
		}
	}
	sort.Strings(out)
	return out
}

// Class represents a registered class
type Class struct {
	Name         string
	Superclass   string
	SuperclassP  *Class // Resolved superclass pointer
	Bundle       string // Owning application bundle; empty means the main bundle
	InstanceVars []string
	Methods      *MethodTable
	Initialized  bool
}

// Instance represents an object instance
type Instance struct {
	ID        string
	Class     *Class
	ClassName string
	Vars      map[string]Value
	CreatedAt time.Time
	mu        sync.RWMutex
}

// NewInstance creates a new instance of a class
func (os *ObjectSpace) NewInstance(className string) (*Instance, error) {
	class := os.GetClass(className)
	if class == nil {
		return nil, fmt.Errorf("unknown class: %s", className)
	}

	inst := &Instance{
		ID:        os.GenerateID(className),
		Class:     class,
		ClassName: className,
		Vars:      make(map[string]Value),
		CreatedAt: time.Now(),
	}

	// Initialize instance variables to nil
	for _, varName := range class.InstanceVars {
		inst.Vars[varName] = NilValue()
	}

	os.RegisterInstance(inst)

	return inst, nil
}

// GetVar gets an instance variable value
func (inst *Instance) GetVar(name string) Value {
	inst.mu.RLock()
	defer inst.mu.RUnlock()
	if v, ok := inst.Vars[name]; ok {
		return v
	}
	return NilValue()
}

// SetVar sets an instance variable value
func (inst *Instance) SetVar(name string, v Value) {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.Vars[name] = v
}

// BundleInfo describes a host application bundle.
type BundleInfo struct {
	ID          string
	DisplayName string
}

// ObjectSpace manages all instances and classes in the runtime
type ObjectSpace struct {
	classes    map[string]*Class
	instances  map[string]*Instance
	bundles    map[string]BundleInfo
	mainBundle string
	classMu    sync.RWMutex
	instMu     sync.RWMutex
}

// DefaultMainBundle identifies classes registered without a bundle.
const DefaultMainBundle = "main"

// NewObjectSpace creates a new empty object space
func NewObjectSpace() *ObjectSpace {
	return &ObjectSpace{
		classes:    make(map[string]*Class),
		instances:  make(map[string]*Instance),
		bundles:    make(map[string]BundleInfo),
		mainBundle: DefaultMainBundle,
	}
}

// SetMainBundle changes the bundle that owns classes registered without one.
func (os *ObjectSpace) SetMainBundle(id string) {
	os.classMu.Lock()
	defer os.classMu.Unlock()
	if id != "" {
		os.mainBundle = id
	}
}

// MainBundle returns the main bundle identifier.
func (os *ObjectSpace) MainBundle() string {
	os.classMu.RLock()
	defer os.classMu.RUnlock()
	return os.mainBundle
}

// RegisterBundle records a bundle and its display name.
func (os *ObjectSpace) RegisterBundle(id, displayName string) {
	os.classMu.Lock()
	defer os.classMu.Unlock()
	os.bundles[id] = BundleInfo{ID: id, DisplayName: displayName}
}

// Bundle returns a registered bundle.
func (os *ObjectSpace) Bundle(id string) (BundleInfo, bool) {
	os.classMu.RLock()
	defer os.classMu.RUnlock()
	b, ok := os.bundles[id]
	return b, ok
}

// BundleOf returns the bundle owning a class.
func (os *ObjectSpace) BundleOf(class *Class) string {
	if class != nil && class.Bundle != "" {
		return class.Bundle
	}
	return os.MainBundle()
}

// RegisterClass registers a class in the main bundle
func (os *ObjectSpace) RegisterClass(name, superclass string, instanceVars []string, methods *MethodTable) *Class {
	return os.RegisterBundleClass("", name, superclass, instanceVars, methods)
}

// RegisterBundleClass registers a class owned by bundle
func (os *ObjectSpace) RegisterBundleClass(bundle, name, superclass string, instanceVars []string, methods *MethodTable) *Class {
	os.classMu.Lock()
	defer os.classMu.Unlock()

	if methods == nil {
		methods = NewMethodTable()
	}
	class := &Class{
		Name:         name,
		Superclass:   superclass,
		Bundle:       bundle,
		InstanceVars: instanceVars,
		Methods:      methods,
		Initialized:  true,
	}

	// Resolve superclass if it exists
	if superclass != "" {
		if super, ok := os.classes[superclass]; ok {
			class.SuperclassP = super
			// Inherit instance variables from superclass
			inherited := make([]string, 0, len(super.InstanceVars)+len(instanceVars))
			inherited = append(inherited, super.InstanceVars...)
			inherited = append(inherited, instanceVars...)
			class.InstanceVars = inherited
		}
	}

	os.classes[name] = class
	return class
}

// UnregisterClass removes a class, as when its image is unloaded.
// Existing instances keep their class pointer.
func (os *ObjectSpace) UnregisterClass(name string) bool {
	os.classMu.Lock()
	defer os.classMu.Unlock()
	if _, ok := os.classes[name]; !ok {
		return false
	}
	delete(os.classes, name)
	return true
}

// GetClass retrieves a registered class
func (os *ObjectSpace) GetClass(name string) *Class {
	os.classMu.RLock()
	defer os.classMu.RUnlock()
	return os.classes[name]
}

// IsRegistered reports whether class is still the registered class for
// its name.
func (os *ObjectSpace) IsRegistered(class *Class) bool {
	if class == nil {
		return false
	}
	return os.GetClass(class.Name) == class
}

// RegisterInstance adds an instance to the object space
func (os *ObjectSpace) RegisterInstance(inst *Instance) {
	os.instMu.Lock()
	defer os.instMu.Unlock()
	os.instances[inst.ID] = inst
}

// GetInstance retrieves an instance by ID
func (os *ObjectSpace) GetInstance(id string) *Instance {
	os.instMu.RLock()
	defer os.instMu.RUnlock()
	return os.instances[id]
}

// LookupMethod finds a method, walking up the class hierarchy
func (os *ObjectSpace) LookupMethod(className, selector string, isClassMethod bool) *MethodEntry {
	_, method := os.LookupMethodOwner(className, selector, isClassMethod)
	return method
}

// LookupMethodOwner finds a method and the class that defines it.
func (os *ObjectSpace) LookupMethodOwner(className, selector string, isClassMethod bool) (*Class, *MethodEntry) {
	os.classMu.RLock()
	class := os.classes[className]
	os.classMu.RUnlock()
	return lookupFrom(class, selector, isClassMethod)
}

func lookupFrom(class *Class, selector string, isClassMethod bool) (*Class, *MethodEntry) {
	for class != nil {
		if method := class.Methods.Lookup(selector, isClassMethod); method != nil {
			return class, method
		}
		class = class.SuperclassP
	}
	return nil, nil
}

// ClassNames returns all registered class names, sorted
func (os *ObjectSpace) ClassNames() []string {
	os.classMu.RLock()
	defer os.classMu.RUnlock()

	names := make([]string, 0, len(os.classes))
	for name := range os.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InstanceCount returns the number of instances in the object space
func (os *ObjectSpace) InstanceCount() int {
	os.instMu.RLock()
	defer os.instMu.RUnlock()
	return len(os.instances)
}

// ClassCount returns the number of classes registered
func (os *ObjectSpace) ClassCount() int {
	os.classMu.RLock()
	defer os.classMu.RUnlock()
	return len(os.classes)
}

// GenerateID creates a new unique instance ID for the given class name
func (os *ObjectSpace) GenerateID(className string) string {
	idPrefix := strings.ToLower(strings.ReplaceAll(className, "::", "_"))
	return idPrefix + "_" + uuid.New().String()
}
