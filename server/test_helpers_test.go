package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/chazu/patchwork/demo"
	patchworkv1 "github.com/chazu/patchwork/gen/patchwork/v1"
	"github.com/chazu/patchwork/lib/runtime"
	"github.com/chazu/patchwork/patch"
)

// ---------------------------------------------------------------------------
// Shared test infrastructure for server package tests.
//
// Every test gets its own runtime and manager; patches are process-wide
// state on the runtime, so nothing is shared.
// ---------------------------------------------------------------------------

// testEnv bundles a fresh demo runtime with its manager and service.
type testEnv struct {
	RT      *runtime.Runtime
	Manager *patch.Manager
	Service *PatchService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	rt := demo.NewRuntime()
	m := patch.NewSpaceManager(rt.OS)
	t.Cleanup(func() { m.UnpatchAll() })
	return &testEnv{RT: rt, Manager: m, Service: NewPatchService(m)}
}

// cart sends selector to a fresh Cart.
func (e *testEnv) cart(t *testing.T, selector string, args ...runtime.Value) runtime.Value {
	t.Helper()
	inst, err := e.RT.NewInstance("Cart")
	if err != nil {
		t.Fatal(err)
	}
	return e.RT.SendDirect(inst, selector, args)
}

// newTestClient serves env's manager over httptest and returns a client.
func newTestClient(t *testing.T, env *testEnv) *Client {
	t.Helper()
	srv := New(env.Manager)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return NewClient(ts.Client(), ts.URL)
}

func bg() context.Context {
	return context.Background()
}

func connectReq[T any](msg *T) *connect.Request[T] {
	return connect.NewRequest(msg)
}

func connectCode(err error) connect.Code {
	return connect.CodeOf(err)
}

func wire(t *testing.T, v patch.Value) *structpb.Value {
	t.Helper()
	pv, err := ValueToProto(v)
	if err != nil {
		t.Fatalf("ValueToProto(%v): %v", v, err)
	}
	return pv
}

func unwire(t *testing.T, pv *structpb.Value) patch.Value {
	t.Helper()
	v, err := ValueFromProto(pv)
	if err != nil {
		t.Fatalf("ValueFromProto(%v): %v", pv, err)
	}
	return v
}

func overrides(t *testing.T, args map[int]patch.Value) []*patchworkv1.ArgumentOverride {
	t.Helper()
	out, err := ArgumentsToProto(args)
	if err != nil {
		t.Fatal(err)
	}
	return out
}
