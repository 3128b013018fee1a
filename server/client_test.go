package server

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/chazu/patchwork/demo"
	"github.com/chazu/patchwork/patch"
)

func TestClientRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	c := newTestClient(t, env)
	ctx := bg()

	info, err := c.PatchReturnValue(ctx, "-[FeatureFlags variantFor:]", patch.String("treatment"), false)
	if err != nil {
		t.Fatalf("PatchReturnValue: %v", err)
	}
	if info.Bundle != demo.FlagsBundle || !unwire(t, info.ReturnValue).Equal(patch.String("treatment")) {
		t.Errorf("patch info = %+v", info)
	}

	if _, err := c.PatchArguments(ctx, "-[Cart addItem:price:]", map[int]patch.Value{
		0: patch.Int(1),
		1: patch.Float(2.5),
	}, false); err != nil {
		t.Fatalf("PatchArguments: %v", err)
	}
	got, err := c.GetPatch(ctx, "-[Cart addItem:price:]", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Arguments) != 2 || got.Arguments[1].Index != 1 {
		t.Fatalf("arguments = %v", got.Arguments)
	}
	if v := unwire(t, got.Arguments[1].Value); !v.Equal(patch.Float(2.5)) {
		t.Errorf("argument 1 = %v; floats should survive the wire", v)
	}

	bundles, err := c.ListBundles(ctx)
	if err != nil || len(bundles) != 2 {
		t.Fatalf("ListBundles = %+v, %v", bundles, err)
	}

	doc, skipped, err := c.ExportPatches(ctx, "")
	if err != nil || skipped != 0 {
		t.Fatalf("ExportPatches: %d %v", skipped, err)
	}

	n, err := c.UnpatchAll(ctx)
	if err != nil || n != 2 {
		t.Fatalf("UnpatchAll = %d, %v", n, err)
	}
	res, err := c.ApplyPatches(ctx, doc)
	if err != nil || res.Applied != 2 || res.Error != "" {
		t.Fatalf("ApplyPatches = %+v, %v", res, err)
	}

	flags, _ := env.RT.NewInstance("FeatureFlags")
	if v := env.RT.SendDirect(flags, "variantFor:", nil); v.AsString() != "treatment" {
		t.Errorf("variantFor: = %v after round trip", v)
	}

	if err := c.SetBundleEnabled(ctx, demo.FlagsBundle, false); err != nil {
		t.Fatal(err)
	}
	removed, err := c.Unpatch(ctx, "-[FeatureFlags variantFor:]", "")
	if err != nil || !removed {
		t.Fatalf("Unpatch = %v, %v", removed, err)
	}
	patches, err := c.ListPatches(ctx, "")
	if err != nil || len(patches) != 1 {
		t.Fatalf("ListPatches = %+v, %v", patches, err)
	}
}

func TestClientErrorCodes(t *testing.T) {
	env := newTestEnv(t)
	c := newTestClient(t, env)

	_, err := c.PatchReturnValue(bg(), "-[Cart rolloutPercent]", patch.Int(1), false)
	if connect.CodeOf(err) != connect.CodeNotFound || CodeOf(err) != patch.CodeInvalidTarget {
		t.Errorf("unknown method = %v (%s)", err, CodeOf(err))
	}

	if _, err := c.PatchReturnValue(bg(), "-[Cart itemCount]", patch.Int(1), false); err != nil {
		t.Fatal(err)
	}
	_, err = c.PatchReturnValue(bg(), "-[Cart itemCount]", patch.Int(2), false)
	if CodeOf(err) != patch.CodeAlreadyPatched {
		t.Errorf("second patch = %v (%s)", err, CodeOf(err))
	}

	_, err = c.PatchReturnValue(bg(), "+[Cart maxItems]", patch.Uint(1<<60), false)
	if !patch.IsCode(err, patch.CodeTypeCoercion) {
		t.Errorf("inexact integer = %v", err)
	}
}

func TestWatchPatches(t *testing.T) {
	env := newTestEnv(t)
	c := newTestClient(t, env)

	ctx, cancel := context.WithTimeout(bg(), 5*time.Second)
	defer cancel()

	stream, err := c.WatchPatches(ctx)
	if err != nil {
		t.Fatalf("WatchPatches: %v", err)
	}
	defer stream.Close()

	if !stream.Receive() {
		t.Fatalf("no start event: %v", stream.Err())
	}
	if ev := stream.Msg(); ev.Name != WatchStarted || len(ev.Bundles) != 0 {
		t.Fatalf("start event = %+v", ev)
	}

	id := patch.NewIdentity("Cart", "isEmpty", false)
	if err := env.Manager.PatchReturnValue(id, patch.Bool(false)); err != nil {
		t.Fatal(err)
	}
	env.Manager.SetEnabled(demo.ShopBundle, false)
	env.Manager.Unpatch(id)

	var seqs []uint64
	for len(seqs) < 3 && stream.Receive() {
		ev := stream.Msg()
		if ev.Name != patch.PatchesUpdated {
			t.Errorf("event name = %q", ev.Name)
		}
		seqs = append(seqs, ev.Seq)
	}
	if len(seqs) != 3 {
		t.Fatalf("received %d events: %v", len(seqs), stream.Err())
	}
	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("event sequence %v is not consecutive", seqs)
		}
	}
}
