// Package patch redirects live runtime methods. A Manager owns every
// installed patch, grouped by the bundle that owns the patched class; an
// Engine swaps method implementations for stubs that either return a fixed
// value or rewrite arguments before forwarding to the saved original.
package patch

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/tliron/commonlog"

	"github.com/chazu/patchwork/lib/runtime"
)

// Spec describes a patch to install.
type Spec struct {
	Kind      Kind
	Return    Value
	Arguments map[int]Value
}

// ReturnSpec is a return-value patch.
func ReturnSpec(v Value) Spec {
	return Spec{Kind: KindReturnValue, Return: v}
}

// ArgumentsSpec is an argument patch.
func ArgumentsSpec(args map[int]Value) Spec {
	return Spec{Kind: KindArguments, Arguments: args}
}

// PatchInfo is a copy of an installed patch's state.
type PatchInfo struct {
	Identity      MethodIdentity
	Key           string
	Bundle        string
	Kind          Kind
	Enabled       bool
	ReturnType    string // return slot encoding
	ReturnValue   Value
	Arguments     map[int]Value
	ArgumentTypes map[int]string
	Alias         string
}

func (r *record) info(enabled bool) PatchInfo {
	info := PatchInfo{
		Identity:   r.id,
		Key:        r.key(),
		Bundle:     r.bundle,
		Kind:       r.kind,
		Enabled:    enabled,
		ReturnType: r.returnDesc.Raw,
		Alias:      r.alias,
	}
	switch r.kind {
	case KindReturnValue:
		info.ReturnValue = r.returnValue
	case KindArguments:
		info.Arguments = make(map[int]Value, len(r.args))
		info.ArgumentTypes = make(map[int]string, len(r.args))
		for i, v := range r.args {
			info.Arguments[i] = v
			if d, ok := r.handle.Signature.Arg(i); ok {
				info.ArgumentTypes[i] = d.Raw
			}
		}
	}
	return info
}

// snapshot is the read-only view the hot path uses. A new one is published
// after every mutation.
type snapshot struct {
	bundles  map[string]map[string]*record
	byEntry  map[*runtime.MethodEntry]*record
	disabled map[string]bool
}

func (s *snapshot) find(id MethodIdentity) *record {
	key := id.Key()
	for _, recs := range s.bundles {
		if rec, ok := recs[key]; ok && rec.id == id {
			return rec
		}
	}
	return nil
}

func (s *snapshot) bundleIDs() []string {
	out := make([]string, 0, len(s.bundles))
	for b := range s.bundles {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

func (s *snapshot) keys(bundle string) []string {
	recs := s.bundles[bundle]
	out := make([]string, 0, len(recs))
	for k := range recs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Option configures a Manager.
type Option func(*Manager)

// WithDisplayNames sets bundle display names that take precedence over
// names registered with the runtime.
func WithDisplayNames(names map[string]string) Option {
	return func(m *Manager) {
		for k, v := range names {
			m.names[k] = v
		}
	}
}

// WithNotifier shares a notifier between managers and observers.
func WithNotifier(n *Notifier) Option {
	return func(m *Manager) {
		m.notifier = n
	}
}

// Manager is the registry of installed patches. Mutations are serialized
// under one lock that is never held while patched code runs; calls read a
// published snapshot without locking.
//
// Create one per object space and pass it to collaborators.
type Manager struct {
	mu       sync.Mutex
	target   Target
	engine   *Engine
	records  map[string]map[string]*record // bundle -> key -> record
	byEntry  map[*runtime.MethodEntry]*record
	disabled map[string]bool
	names    map[string]string

	snap     atomic.Pointer[snapshot]
	notifier *Notifier
	log      commonlog.Logger
}

// NewManager creates a Manager patching target.
func NewManager(target Target, opts ...Option) *Manager {
	m := &Manager{
		target:   target,
		records:  make(map[string]map[string]*record),
		byEntry:  make(map[*runtime.MethodEntry]*record),
		disabled: make(map[string]bool),
		names:    make(map[string]string),
		notifier: NewNotifier(),
		log:      commonlog.GetLogger("patchwork.patch"),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.engine = newEngine(target, m.activeRecord)
	m.publish()
	return m
}

// NewSpaceManager creates a Manager over a runtime object space.
func NewSpaceManager(os *runtime.ObjectSpace, opts ...Option) *Manager {
	return NewManager(NewSpaceTarget(os), opts...)
}

// Engine returns the engine that installs this manager's patches.
func (m *Manager) Engine() *Engine {
	return m.engine
}

// publish must be called with mu held.
func (m *Manager) publish() {
	s := &snapshot{
		bundles:  make(map[string]map[string]*record, len(m.records)),
		byEntry:  make(map[*runtime.MethodEntry]*record, len(m.byEntry)),
		disabled: make(map[string]bool, len(m.disabled)),
	}
	for bundle, recs := range m.records {
		cp := make(map[string]*record, len(recs))
		for k, r := range recs {
			cp[k] = r
		}
		s.bundles[bundle] = cp
	}
	for e, r := range m.byEntry {
		s.byEntry[e] = r
	}
	for b, d := range m.disabled {
		s.disabled[b] = d
	}
	m.snap.Store(s)
}

// activeRecord is the single hot-path lookup: the patch a call through
// entry gets right now, or nil if unpatched or disabled.
func (m *Manager) activeRecord(entry *runtime.MethodEntry) *record {
	s := m.snap.Load()
	rec := s.byEntry[entry]
	if rec == nil || s.disabled[rec.bundle] {
		return nil
	}
	return rec
}

func (m *Manager) prepare(h *Handle, spec Spec) (*record, error) {
	switch spec.Kind {
	case KindReturnValue:
		return m.engine.prepareReturn(h, spec.Return)
	case KindArguments:
		return m.engine.prepareArguments(h, spec.Arguments)
	}
	return nil, newError(CodeInvalidTarget, "unknown patch kind %d", spec.Kind)
}

// installLocked resolves, validates and activates a patch. On error
// nothing changes.
func (m *Manager) installLocked(id MethodIdentity, bundleHint string, spec Spec) (*record, error) {
	h, err := m.target.Resolve(id, bundleHint)
	if err != nil {
		return nil, err
	}
	if existing := m.byEntry[h.Entry]; existing != nil {
		return nil, newError(CodeAlreadyPatched, "%s is already patched (as %s)", id.Key(), existing.key()).
			with("key", id.Key())
	}
	if _, exists := m.records[h.Bundle][id.Key()]; exists {
		return nil, newError(CodeAlreadyPatched, "%s is already patched", id.Key()).with("key", id.Key())
	}

	rec, err := m.prepare(h, spec)
	if err != nil {
		return nil, err
	}
	if err := m.engine.activate(rec); err != nil {
		return nil, err
	}
	m.add(rec)
	return rec, nil
}

func (m *Manager) add(rec *record) {
	recs := m.records[rec.bundle]
	if recs == nil {
		recs = make(map[string]*record)
		m.records[rec.bundle] = recs
	}
	recs[rec.key()] = rec
	m.byEntry[rec.handle.Entry] = rec
}

// removeLocked unregisters rec, publishes, then restores the original.
func (m *Manager) removeLocked(rec *record) {
	if recs := m.records[rec.bundle]; recs != nil {
		delete(recs, rec.key())
		if len(recs) == 0 {
			delete(m.records, rec.bundle)
		}
	}
	if m.byEntry[rec.handle.Entry] == rec {
		delete(m.byEntry, rec.handle.Entry)
	}
	m.publish()
	m.engine.deactivate(rec)
}

func (m *Manager) install(id MethodIdentity, spec Spec) error {
	m.mu.Lock()
	rec, err := m.installLocked(id, "", spec)
	if err == nil {
		m.publish()
	}
	m.mu.Unlock()

	if err != nil {
		m.log.Warningf("patch %s failed: %s", id.Key(), err)
		return err
	}
	m.log.Infof("patched %s (%s) in %s", rec.key(), rec.kind, rec.bundle)
	m.notifier.Notify()
	return nil
}

// PatchReturnValue makes every call of id return v.
func (m *Manager) PatchReturnValue(id MethodIdentity, v Value) error {
	return m.install(id, ReturnSpec(v))
}

// PatchArgument replaces explicit argument index on every call of id.
func (m *Manager) PatchArgument(id MethodIdentity, index int, v Value) error {
	return m.install(id, ArgumentsSpec(map[int]Value{index: v}))
}

// PatchArguments replaces several explicit arguments on every call of id.
func (m *Manager) PatchArguments(id MethodIdentity, args map[int]Value) error {
	cp := make(map[int]Value, len(args))
	for i, v := range args {
		cp[i] = v
	}
	return m.install(id, ArgumentsSpec(cp))
}

// Replace installs spec on id, removing any existing patch on the same
// method first. Validation happens before the existing patch is touched;
// if activation still fails the previous patch is restored.
func (m *Manager) Replace(id MethodIdentity, spec Spec) error {
	m.mu.Lock()
	h, err := m.target.Resolve(id, "")
	if err != nil {
		m.mu.Unlock()
		return err
	}
	rec, err := m.prepare(h, spec)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	old := m.byEntry[h.Entry]
	if old == nil {
		old = m.records[h.Bundle][id.Key()]
	}
	if old != nil {
		m.removeLocked(old)
	}

	if err = m.engine.activate(rec); err != nil {
		if old != nil {
			restored := *old
			restored.alias, restored.stub = "", nil
			if rerr := m.engine.activate(&restored); rerr == nil {
				m.add(&restored)
			} else {
				m.log.Errorf("could not restore %s after failed replace: %s", old.key(), rerr)
			}
			m.publish()
		}
		m.mu.Unlock()
		if old != nil {
			m.notifier.Notify()
		}
		return err
	}
	m.add(rec)
	m.publish()
	m.mu.Unlock()

	m.log.Infof("replaced patch on %s with %s", rec.key(), rec.kind)
	m.notifier.Notify()
	return nil
}

// Unpatch removes the patch on id. It reports whether one was installed;
// removing an unpatched method is a no-op.
func (m *Manager) Unpatch(id MethodIdentity) bool {
	m.mu.Lock()
	var rec *record
	for _, recs := range m.records {
		if r, ok := recs[id.Key()]; ok && r.id == id {
			rec = r
			break
		}
	}
	if rec == nil {
		m.mu.Unlock()
		return false
	}
	m.removeLocked(rec)
	m.mu.Unlock()

	m.log.Infof("unpatched %s in %s", rec.key(), rec.bundle)
	m.notifier.Notify()
	return true
}

// UnpatchKey removes the patch stored under key in bundle.
func (m *Manager) UnpatchKey(key, bundle string) bool {
	m.mu.Lock()
	rec := m.records[bundle][key]
	if rec == nil {
		m.mu.Unlock()
		return false
	}
	m.removeLocked(rec)
	m.mu.Unlock()

	m.log.Infof("unpatched %s in %s", key, bundle)
	m.notifier.Notify()
	return true
}

// UnpatchAll removes every patch and forgets all enablement flags.
func (m *Manager) UnpatchAll() int {
	m.mu.Lock()
	var all []*record
	for _, recs := range m.records {
		for _, r := range recs {
			all = append(all, r)
		}
	}
	m.records = make(map[string]map[string]*record)
	m.byEntry = make(map[*runtime.MethodEntry]*record)
	m.disabled = make(map[string]bool)
	m.publish()
	for _, r := range all {
		m.engine.deactivate(r)
	}
	m.mu.Unlock()

	m.log.Infof("removed all %d patches", len(all))
	m.notifier.Notify()
	return len(all)
}

// IsPatched reports whether id has an installed patch, enabled or not.
func (m *Manager) IsPatched(id MethodIdentity) bool {
	return m.snap.Load().find(id) != nil
}

// PatchInfo returns the patch installed on id.
func (m *Manager) PatchInfo(id MethodIdentity) (PatchInfo, bool) {
	s := m.snap.Load()
	rec := s.find(id)
	if rec == nil {
		return PatchInfo{}, false
	}
	return rec.info(!s.disabled[rec.bundle]), true
}

// PatchInfoForKey returns the patch stored under key in bundle.
func (m *Manager) PatchInfoForKey(key, bundle string) (PatchInfo, bool) {
	s := m.snap.Load()
	rec := s.bundles[bundle][key]
	if rec == nil {
		return PatchInfo{}, false
	}
	return rec.info(!s.disabled[bundle]), true
}

// PatchInfoForSelector returns the patch on owner's selector, checking the
// instance method before the class method.
func (m *Manager) PatchInfoForSelector(owner, selector string) (PatchInfo, bool) {
	if info, ok := m.PatchInfo(NewIdentity(owner, selector, false)); ok {
		return info, true
	}
	return m.PatchInfo(NewIdentity(owner, selector, true))
}

// Bundles returns the sorted identifiers of bundles with patches.
func (m *Manager) Bundles() []string {
	return m.snap.Load().bundleIDs()
}

// Keys returns the sorted patch keys of bundle.
func (m *Manager) Keys(bundle string) []string {
	return m.snap.Load().keys(bundle)
}

// Patches returns every installed patch, sorted by bundle then key. All
// of them come from one snapshot.
func (m *Manager) Patches() []PatchInfo {
	s := m.snap.Load()
	var out []PatchInfo
	for _, b := range s.bundleIDs() {
		for _, k := range s.keys(b) {
			out = append(out, s.bundles[b][k].info(!s.disabled[b]))
		}
	}
	return out
}

// IsEnabled reports whether bundle's patches take effect. Bundles are
// enabled unless explicitly disabled.
func (m *Manager) IsEnabled(bundle string) bool {
	return !m.snap.Load().disabled[bundle]
}

// SetEnabled toggles bundle's patches without removing them. Disabled
// patches behave as unpatched until enabled again.
func (m *Manager) SetEnabled(bundle string, enabled bool) {
	m.mu.Lock()
	if !m.disabled[bundle] == enabled {
		m.mu.Unlock()
		return
	}
	if enabled {
		delete(m.disabled, bundle)
	} else {
		m.disabled[bundle] = true
	}
	m.publish()
	m.mu.Unlock()

	m.log.Infof("bundle %s enabled=%t", bundle, enabled)
	m.notifier.Notify()
}

// DisplayName returns a human-readable name for bundle: a configured
// name, then the runtime's bundle name, then the identifier itself.
func (m *Manager) DisplayName(bundle string) string {
	m.mu.Lock()
	name, ok := m.names[bundle]
	m.mu.Unlock()
	if ok && name != "" {
		return name
	}
	if name, ok := m.target.BundleName(bundle); ok {
		return name
	}
	return bundle
}

// SetDisplayName configures the display name of bundle.
func (m *Manager) SetDisplayName(bundle, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if name == "" {
		delete(m.names, bundle)
		return
	}
	m.names[bundle] = name
}

// Subscribe registers fn for PatchesUpdated events. Events are delivered
// synchronously after the change is visible.
func (m *Manager) Subscribe(fn func(Event)) (cancel func()) {
	return m.notifier.Subscribe(fn)
}

// ValueForPatchedCall returns what a call of selector on receiver would be
// substituted with right now. The installed stubs use the same lookup.
func (m *Manager) ValueForPatchedCall(receiver *runtime.Instance, selector string) (Substitution, bool) {
	if receiver == nil {
		return Substitution{}, false
	}
	for class := receiver.Class; class != nil; class = class.SuperclassP {
		if entry := class.Methods.LookupInstanceMethod(selector); entry != nil {
			return m.substitutionFor(entry)
		}
	}
	return Substitution{}, false
}

// ValueForPatchedClassCall is ValueForPatchedCall for class methods.
func (m *Manager) ValueForPatchedClassCall(className, selector string) (Substitution, bool) {
	entry := m.target.LookupEntry(className, selector, true)
	if entry == nil {
		return Substitution{}, false
	}
	return m.substitutionFor(entry)
}

func (m *Manager) substitutionFor(entry *runtime.MethodEntry) (Substitution, bool) {
	rec := m.activeRecord(entry)
	if rec == nil {
		return Substitution{}, false
	}
	return rec.substitution(), true
}
