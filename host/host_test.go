package host

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/chazu/patchwork/config"
	"github.com/chazu/patchwork/demo"
	"github.com/chazu/patchwork/lib/runtime"
	"github.com/chazu/patchwork/patch"
	"github.com/chazu/patchwork/store"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Dir = t.TempDir()
	cfg.Store.Path = filepath.Join("data", "patches.db")
	return cfg
}

func startHost(t *testing.T, cfg *config.Config) *Host {
	t.Helper()
	h := New(cfg, demo.NewRuntime())
	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return h
}

func itemCount(t *testing.T, rt *runtime.Runtime) int64 {
	t.Helper()
	cart, err := rt.NewInstance("Cart")
	if err != nil {
		t.Fatal(err)
	}
	return rt.SendDirect(cart, "itemCount", nil).AsInt()
}

var itemCountID = patch.NewIdentity("Cart", "itemCount", false)

func TestAutosaveAndReload(t *testing.T) {
	cfg := testConfig(t)

	h := startHost(t, cfg)
	if err := h.Manager().PatchReturnValue(itemCountID, patch.Int(12)); err != nil {
		t.Fatal(err)
	}
	h.Manager().SetEnabled(demo.ShopBundle, false)
	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	ps, err := h.Store().Load(context.Background(), demo.ShopBundle)
	if err != nil {
		t.Fatalf("saved set missing: %v", err)
	}
	if !strings.Contains(ps.Document, "-[Cart itemCount]") || !strings.Contains(ps.Document, `"enabled": false`) {
		t.Errorf("saved document = %s", ps.Document)
	}
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}

	// a new process: fresh runtime, same library
	h2 := startHost(t, cfg)
	defer h2.Close()
	if !h2.Manager().IsPatched(itemCountID) {
		t.Fatalf("patch not reloaded")
	}
	if h2.Manager().IsEnabled(demo.ShopBundle) {
		t.Errorf("disabled flag not reloaded")
	}
	h2.Manager().SetEnabled(demo.ShopBundle, true)
	if got := itemCount(t, h2.Runtime()); got != 12 {
		t.Errorf("itemCount = %d, want 12", got)
	}
}

func TestConfigFlagsWinOverSavedState(t *testing.T) {
	cfg := testConfig(t)
	h := startHost(t, cfg)
	if err := h.Manager().PatchReturnValue(itemCountID, patch.Int(12)); err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}

	off := false
	cfg.Bundles = map[string]config.Bundle{demo.ShopBundle: {DisplayName: "Storefront", Enabled: &off}}
	h2 := startHost(t, cfg)
	defer h2.Close()
	if h2.Manager().IsEnabled(demo.ShopBundle) {
		t.Errorf("config flag ignored")
	}
	if got := h2.Manager().DisplayName(demo.ShopBundle); got != "Storefront" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := itemCount(t, h2.Runtime()); got != 0 {
		t.Errorf("itemCount = %d, want original 0", got)
	}
}

func TestUnpatchRemovesSavedSet(t *testing.T) {
	cfg := testConfig(t)
	h := startHost(t, cfg)
	defer h.Close()
	ctx := context.Background()

	if err := h.Manager().PatchReturnValue(itemCountID, patch.Int(1)); err != nil {
		t.Fatal(err)
	}
	if err := h.Flush(); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Store().Load(ctx, demo.ShopBundle); err != nil {
		t.Fatal(err)
	}

	h.Manager().Unpatch(itemCountID)
	if err := h.Flush(); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Store().Load(ctx, demo.ShopBundle); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("saved set after unpatch = %v, want ErrNotFound", err)
	}
}

func TestObjectOnlyBundleRemovesSavedSet(t *testing.T) {
	cfg := testConfig(t)
	h := startHost(t, cfg)
	defer h.Close()
	ctx := context.Background()

	ownerID := patch.NewIdentity("Cart", "owner", false)
	if err := h.Manager().PatchReturnValue(ownerID, patch.String("alice")); err != nil {
		t.Fatal(err)
	}
	if err := h.Flush(); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Store().Load(ctx, demo.ShopBundle); err != nil {
		t.Fatalf("saved set missing: %v", err)
	}

	inst, err := h.Runtime().NewInstance("Cart")
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Manager().Replace(ownerID, patch.ReturnSpec(patch.Object(inst))); err != nil {
		t.Fatal(err)
	}
	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if _, err := h.Store().Load(ctx, demo.ShopBundle); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("saved set after object-only patch = %v, want ErrNotFound", err)
	}
}

func TestPartiallyLoadedBundleIsNotAutosaved(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	// creates the library
	h := startHost(t, cfg)
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}

	s, err := store.Open(cfg.StorePath())
	if err != nil {
		t.Fatal(err)
	}
	doc := `[
		{"bundleIdentifier": "com.example.shop", "methodKey": "-[Cart itemCount]", "patchType": "returnValue", "patchedValue": 5},
		{"bundleIdentifier": "com.example.shop", "methodKey": "-[Wishlist size]", "patchType": "returnValue", "patchedValue": 1}
	]`
	if _, err := s.Save(ctx, demo.ShopBundle, doc); err != nil {
		t.Fatal(err)
	}
	s.Close()

	h2 := startHost(t, cfg)
	defer h2.Close()
	if got := itemCount(t, h2.Runtime()); got != 5 {
		t.Fatalf("itemCount = %d, want 5", got)
	}

	if err := h2.Manager().PatchReturnValue(patch.NewIdentity("Cart", "isEmpty", false), patch.Bool(false)); err != nil {
		t.Fatal(err)
	}
	if err := h2.Flush(); err != nil {
		t.Fatal(err)
	}
	ps, err := h2.Store().Load(ctx, demo.ShopBundle)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ps.Document, "Wishlist") {
		t.Errorf("autosave dropped the unloaded entry: %s", ps.Document)
	}

	// an explicit save replaces it
	changed, err := h2.SaveBundle(ctx, demo.ShopBundle)
	if err != nil || !changed {
		t.Fatalf("SaveBundle = %v, %v", changed, err)
	}
	ps, _ = h2.Store().Load(ctx, demo.ShopBundle)
	if strings.Contains(ps.Document, "Wishlist") || !strings.Contains(ps.Document, "-[Cart isEmpty]") {
		t.Errorf("explicit save = %s", ps.Document)
	}
}

func TestNoStoreConfigured(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Path = ""
	h := New(cfg, nil)
	if err := h.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if h.Store() != nil {
		t.Errorf("store opened without a path")
	}
	if _, err := h.SaveBundle(context.Background(), "main"); err == nil {
		t.Errorf("SaveBundle without a store should fail")
	}
	if err := h.Flush(); err != nil {
		t.Errorf("Flush without autosave = %v", err)
	}
	if err := h.Start(context.Background()); err == nil {
		t.Errorf("second Start should fail")
	}
}

func TestSaveWorkerCoalesces(t *testing.T) {
	var runs atomic.Int32
	block := make(chan struct{})
	w := newSaveWorker(func(context.Context) error {
		if runs.Add(1) == 1 {
			<-block
		}
		return nil
	})

	w.Kick()
	for i := 0; i < 10; i++ {
		w.Kick()
	}
	close(block)
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	w.Stop()

	// first kick, at most one coalesced kick, the flush
	if n := runs.Load(); n < 2 || n > 3 {
		t.Errorf("runs = %d, want 2 or 3", n)
	}
	if err := w.Flush(); err == nil {
		t.Errorf("Flush after Stop should fail")
	}
}

func TestSaveWorkerRecoversPanic(t *testing.T) {
	w := newSaveWorker(func(context.Context) error { panic("boom") })
	defer w.Stop()
	if err := w.Flush(); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Flush = %v", err)
	}
}
