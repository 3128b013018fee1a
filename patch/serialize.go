package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Entry is one patch in a patch set document.
type Entry struct {
	BundleIdentifier   string                     `json:"bundleIdentifier"`
	MethodKey          string                     `json:"methodKey"`
	IsClassMethod      *bool                      `json:"isClassMethod,omitempty"`
	PatchType          string                     `json:"patchType"`
	ReturnTypeEncoding string                     `json:"returnTypeEncoding,omitempty"`
	PatchedValue       json.RawMessage            `json:"patchedValue,omitempty"`
	ArgumentPatches    map[string]json.RawMessage `json:"argumentPatches,omitempty"`
	// Enabled is written only for disabled bundles.
	Enabled *bool `json:"enabled,omitempty"`
}

// Document is the object form of a patch set. Apply also accepts a bare
// array of entries.
type Document struct {
	Patches []json.RawMessage `json:"patches"`
}

// Export serializes every patch. Records that cannot be represented, such
// as object overrides, are skipped and counted.
func (m *Manager) Export() (string, int, error) {
	return m.export(func(string) bool { return true })
}

// ExportBundle serializes the patches of one bundle.
func (m *Manager) ExportBundle(bundle string) (string, int, error) {
	return m.export(func(b string) bool { return b == bundle })
}

func (m *Manager) export(include func(bundle string) bool) (string, int, error) {
	s := m.snap.Load()

	bundles := make([]string, 0, len(s.bundles))
	for b := range s.bundles {
		if include(b) {
			bundles = append(bundles, b)
		}
	}
	sort.Strings(bundles)

	var (
		entries []Entry
		total   int
		skipped int
	)
	for _, b := range bundles {
		keys := make([]string, 0, len(s.bundles[b]))
		for k := range s.bundles[b] {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			total++
			entry, err := entryFor(s.bundles[b][k], !s.disabled[b])
			if err != nil {
				m.log.Warningf("skipping %s in export: %s", k, err)
				skipped++
				continue
			}
			entries = append(entries, entry)
		}
	}

	if total == 0 {
		return "", 0, newError(CodeSerialization, "no patches to export")
	}
	if len(entries) == 0 {
		return "", skipped, newError(CodeSerialization, "none of %d patches can be serialized", total).
			with("skipped", strconv.Itoa(skipped))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", skipped, wrapError(CodeSerialization, err, "encoding patch set")
	}
	return string(data), skipped, nil
}

func entryFor(rec *record, enabled bool) (Entry, error) {
	classMethod := rec.id.ClassMethod
	e := Entry{
		BundleIdentifier:   rec.bundle,
		MethodKey:          rec.key(),
		IsClassMethod:      &classMethod,
		PatchType:          rec.kind.String(),
		ReturnTypeEncoding: rec.returnDesc.Raw,
	}
	if !enabled {
		e.Enabled = &enabled
	}

	switch rec.kind {
	case KindReturnValue:
		raw, err := marshalValue(rec.returnValue)
		if err != nil {
			return Entry{}, err
		}
		e.PatchedValue = raw
	case KindArguments:
		e.ArgumentPatches = make(map[string]json.RawMessage, len(rec.args))
		for idx, v := range rec.args {
			raw, err := marshalValue(v)
			if err != nil {
				return Entry{}, fmt.Errorf("argument %d: %w", idx, err)
			}
			e.ArgumentPatches[strconv.Itoa(idx)] = raw
		}
	}
	return e, nil
}

func marshalValue(v Value) (json.RawMessage, error) {
	if !v.Serializable() {
		return nil, newError(CodeSerialization, "%s value %s is not serializable", v.Kind, v)
	}
	return json.Marshal(v)
}

// decodeEntry validates one document entry.
func decodeEntry(raw json.RawMessage) (Entry, MethodIdentity, Spec, error) {
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return e, MethodIdentity{}, Spec{}, fmt.Errorf("invalid entry: %w", err)
	}
	if e.BundleIdentifier == "" {
		return e, MethodIdentity{}, Spec{}, fmt.Errorf("missing bundleIdentifier")
	}
	if e.MethodKey == "" {
		return e, MethodIdentity{}, Spec{}, fmt.Errorf("missing methodKey")
	}
	id, err := ParseKey(e.MethodKey)
	if err != nil {
		return e, id, Spec{}, err
	}
	if e.IsClassMethod != nil && *e.IsClassMethod != id.ClassMethod {
		return e, id, Spec{}, fmt.Errorf("isClassMethod disagrees with %s", e.MethodKey)
	}

	kind, ok := ParseKind(e.PatchType)
	if !ok {
		return e, id, Spec{}, fmt.Errorf("unknown patchType %q", e.PatchType)
	}

	switch kind {
	case KindReturnValue:
		if e.PatchedValue == nil {
			return e, id, Spec{}, fmt.Errorf("returnValue patch without patchedValue")
		}
		var v Value
		if err := json.Unmarshal(e.PatchedValue, &v); err != nil {
			return e, id, Spec{}, fmt.Errorf("patchedValue: %w", err)
		}
		return e, id, ReturnSpec(v), nil

	default:
		if len(e.ArgumentPatches) == 0 {
			return e, id, Spec{}, fmt.Errorf("arguments patch without argumentPatches")
		}
		args := make(map[int]Value, len(e.ArgumentPatches))
		for k, raw := range e.ArgumentPatches {
			idx, err := strconv.Atoi(k)
			if err != nil || idx < 0 || strconv.Itoa(idx) != k {
				return e, id, Spec{}, fmt.Errorf("argument index %q is not a decimal index", k)
			}
			var v Value
			if err := json.Unmarshal(raw, &v); err != nil {
				return e, id, Spec{}, fmt.Errorf("argument %s: %w", k, err)
			}
			args[idx] = v
		}
		return e, id, ArgumentsSpec(args), nil
	}
}

func parseDocument(text string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) == 0 {
		return nil, newError(CodeMalformedDocument, "empty patch document")
	}

	switch trimmed[0] {
	case '[':
		var entries []json.RawMessage
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, wrapError(CodeMalformedDocument, err, "parsing patch document")
		}
		return entries, nil
	case '{':
		var doc Document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, wrapError(CodeMalformedDocument, err, "parsing patch document")
		}
		if doc.Patches == nil {
			return nil, newError(CodeMalformedDocument, "patch document has no patches array")
		}
		return doc.Patches, nil
	}
	return nil, newError(CodeMalformedDocument, "patch document must be an array or an object")
}

// Apply installs every entry of a patch set document through the same
// path as live patches. A document that does not parse changes nothing.
// Entries that are invalid, stale, already patched or fail coercion are
// skipped; if any were, the returned error has code PARTIAL_APPLY_FAILURE
// and the count still reflects what was applied.
func (m *Manager) Apply(text string) (int, error) {
	raws, err := parseDocument(text)
	if err != nil {
		m.log.Errorf("apply: %s", err)
		return 0, err
	}

	var (
		applied int
		reasons []string
		changed bool
	)
	disable := make(map[string]bool)

	m.mu.Lock()
	for i, raw := range raws {
		entry, id, spec, err := decodeEntry(raw)
		if err == nil {
			err = m.applyEntryLocked(entry, id, spec)
		}
		if err != nil {
			label := entry.MethodKey
			if label == "" {
				label = fmt.Sprintf("entry %d", i)
			}
			reasons = append(reasons, label+": "+err.Error())
			continue
		}
		applied++
		if entry.Enabled != nil && !*entry.Enabled {
			disable[entry.BundleIdentifier] = true
		}
	}
	for bundle := range disable {
		if !m.disabled[bundle] {
			m.disabled[bundle] = true
			changed = true
		}
	}
	if applied > 0 || changed {
		m.publish()
	}
	m.mu.Unlock()

	if applied > 0 || changed {
		m.notifier.Notify()
	}

	skipped := len(reasons)
	m.log.Infof("applied %d patches, skipped %d", applied, skipped)
	if skipped == 0 {
		return applied, nil
	}
	perr := newError(CodePartialApply, "applied %d of %d patches, skipped %d: %s",
		applied, len(raws), skipped, strings.Join(reasons, "; "))
	perr.with("applied", strconv.Itoa(applied)).with("skipped", strconv.Itoa(skipped))
	return applied, perr
}

func (m *Manager) applyEntryLocked(entry Entry, id MethodIdentity, spec Spec) error {
	if entry.ReturnTypeEncoding != "" {
		h, err := m.target.Resolve(id, entry.BundleIdentifier)
		if err != nil {
			return err
		}
		if got := h.Return().Raw; got != entry.ReturnTypeEncoding {
			return newError(CodeInvalidTarget, "return type changed from %s to %s", entry.ReturnTypeEncoding, got).
				with("key", id.Key())
		}
	}
	_, err := m.installLocked(id, entry.BundleIdentifier, spec)
	return err
}
