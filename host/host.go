// Package host ties a runtime to a patch manager, its saved patch library
// and its configuration.
package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/chazu/patchwork/config"
	"github.com/chazu/patchwork/lib/runtime"
	"github.com/chazu/patchwork/patch"
	"github.com/chazu/patchwork/store"
)

// Host owns the patch manager of one runtime.
type Host struct {
	cfg     *config.Config
	rt      *runtime.Runtime
	manager *patch.Manager
	store   *store.Store
	saver   *saveWorker
	cancel  func()
	log     commonlog.Logger

	mu      sync.Mutex
	started bool
	// seen holds every bundle that had patches during this run. Only these
	// are rewritten or deleted by autosave.
	seen map[string]bool
	// partial holds bundles whose saved set did not load completely.
	// Autosave leaves them alone so the unloaded entries survive.
	partial map[string]bool
}

// New creates a host for rt. A nil rt gets a fresh runtime for the
// configured main bundle; a nil cfg uses config.Default.
func New(cfg *config.Config, rt *runtime.Runtime) *Host {
	if cfg == nil {
		cfg = config.Default()
	}
	if rt == nil {
		rt = runtime.New(&runtime.Config{MainBundle: cfg.Host.MainBundle, DisplayName: cfg.Host.DisplayName})
	}
	return &Host{
		cfg:     cfg,
		rt:      rt,
		manager: patch.NewSpaceManager(rt.OS, patch.WithDisplayNames(cfg.DisplayNames())),
		log:     commonlog.GetLogger("patchwork.host"),
		seen:    make(map[string]bool),
		partial: make(map[string]bool),
	}
}

// Runtime returns the patched runtime.
func (h *Host) Runtime() *runtime.Runtime {
	return h.rt
}

// Manager returns the patch manager.
func (h *Host) Manager() *patch.Manager {
	return h.manager
}

// Store returns the patch library, or nil when none is configured or
// Start has not run.
func (h *Host) Store() *store.Store {
	return h.store
}

// Start opens the patch library, applies every saved patch set, applies
// the configured bundle flags and starts autosave.
func (h *Host) Start(ctx context.Context) error {
	h.mu.Lock()
	if h.started {
		h.mu.Unlock()
		return fmt.Errorf("host already started")
	}
	h.started = true
	h.mu.Unlock()

	if path := h.cfg.StorePath(); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
		s, err := store.Open(path)
		if err != nil {
			return fmt.Errorf("open patch library: %w", err)
		}
		h.store = s

		if h.cfg.Store.Autoload {
			if err := h.load(ctx); err != nil {
				return err
			}
		}
	}

	for bundle, enabled := range h.cfg.EnabledFlags() {
		h.manager.SetEnabled(bundle, enabled)
	}
	h.markSeen()

	if h.store != nil && h.cfg.Store.Autosave {
		h.saver = newSaveWorker(h.saveChanged)
		h.cancel = h.manager.Subscribe(func(patch.Event) { h.saver.Kick() })
	}
	return nil
}

func (h *Host) load(ctx context.Context) error {
	sets, err := h.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load patch library: %w", err)
	}
	for _, ps := range sets {
		n, err := h.manager.Apply(ps.Document)
		if err == nil {
			h.log.Infof("loaded %d patches for %s", n, ps.Bundle)
			continue
		}
		if patch.IsCode(err, patch.CodePartialApply) {
			h.log.Warningf("loaded %d patches for %s: %s", n, ps.Bundle, err)
		} else {
			h.log.Errorf("saved patch set for %s not applied: %s", ps.Bundle, err)
		}
		h.mu.Lock()
		h.partial[ps.Bundle] = true
		h.mu.Unlock()
	}
	return nil
}

func (h *Host) markSeen() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, b := range h.manager.Bundles() {
		h.seen[b] = true
	}
	out := make([]string, 0, len(h.seen))
	for b := range h.seen {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

// saveChanged writes every bundle touched during this run. Unchanged
// documents are skipped by the store.
func (h *Host) saveChanged(ctx context.Context) error {
	var errs []error
	for _, bundle := range h.markSeen() {
		h.mu.Lock()
		partial := h.partial[bundle]
		h.mu.Unlock()
		if partial {
			h.log.Debugf("not autosaving partially loaded bundle %s", bundle)
			continue
		}
		if _, err := h.saveBundle(ctx, bundle); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	if err != nil {
		h.log.Errorf("autosave: %s", err)
	}
	return err
}

// SaveBundle writes bundle's patches to the library, or removes its saved
// set when it has none. It reports whether the library changed.
func (h *Host) SaveBundle(ctx context.Context, bundle string) (bool, error) {
	if h.store == nil {
		return false, fmt.Errorf("no patch library configured")
	}
	changed, err := h.saveBundle(ctx, bundle)
	if err == nil {
		h.mu.Lock()
		delete(h.partial, bundle)
		h.mu.Unlock()
	}
	return changed, err
}

func (h *Host) saveBundle(ctx context.Context, bundle string) (bool, error) {
	if len(h.manager.Keys(bundle)) == 0 {
		return h.deleteBundle(ctx, bundle)
	}

	doc, skipped, err := h.manager.ExportBundle(bundle)
	if skipped > 0 {
		h.log.Warningf("%d patches in %s hold live objects and were not saved", skipped, bundle)
	}
	switch {
	case err != nil && skipped > 0 && patch.IsCode(err, patch.CodeSerialization):
		// nothing left that can be written
		return h.deleteBundle(ctx, bundle)
	case err != nil:
		return false, fmt.Errorf("export %s: %w", bundle, err)
	}
	return h.store.Save(ctx, bundle, doc)
}

func (h *Host) deleteBundle(ctx context.Context, bundle string) (bool, error) {
	deleted, err := h.store.Delete(ctx, bundle)
	if err != nil {
		return false, err
	}
	if deleted {
		h.log.Infof("removed saved patch set for %s", bundle)
	}
	return deleted, nil
}

// SaveAll saves every bundle that had patches during this run, including
// partially loaded ones.
func (h *Host) SaveAll(ctx context.Context) error {
	if h.store == nil {
		return fmt.Errorf("no patch library configured")
	}
	var errs []error
	for _, b := range h.markSeen() {
		if _, err := h.SaveBundle(ctx, b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Flush waits for a save of the current state when autosave is running.
func (h *Host) Flush() error {
	if h.saver == nil {
		return nil
	}
	return h.saver.Flush()
}

// Close stops autosave after a final save and closes the library. Patches
// stay installed.
func (h *Host) Close() error {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	if h.saver != nil {
		h.saver.Kick()
		h.saver.Stop()
		h.saver = nil
	}
	if h.store != nil {
		err := h.store.Close()
		h.store = nil
		return err
	}
	return nil
}
