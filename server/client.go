package server

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	patchworkv1 "github.com/chazu/patchwork/gen/patchwork/v1"
	"github.com/chazu/patchwork/gen/patchwork/v1/patchworkv1connect"
	"github.com/chazu/patchwork/patch"
)

// Client calls a remote PatchService.
type Client struct {
	rpc patchworkv1connect.PatchServiceClient
}

// NewClient creates a Client for the service at baseURL, e.g.
// "http://127.0.0.1:7766". A nil httpClient uses http.DefaultClient. Calls
// are traced with the global tracer provider.
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	opts = append([]connect.ClientOption{
		connect.WithInterceptors(NewTracingInterceptor(nil)),
	}, opts...)
	return &Client{rpc: patchworkv1connect.NewPatchServiceClient(httpClient, baseURL, opts...)}
}

func (c *Client) ListBundles(ctx context.Context) ([]*patchworkv1.Bundle, error) {
	res, err := c.rpc.ListBundles(ctx, connect.NewRequest(&patchworkv1.ListBundlesRequest{}))
	if err != nil {
		return nil, err
	}
	return res.Msg.GetBundles(), nil
}

// ListPatches lists patches; an empty bundle lists all of them.
func (c *Client) ListPatches(ctx context.Context, bundle string) ([]*patchworkv1.Patch, error) {
	res, err := c.rpc.ListPatches(ctx, connect.NewRequest(&patchworkv1.ListPatchesRequest{Bundle: bundle}))
	if err != nil {
		return nil, err
	}
	return res.Msg.GetPatches(), nil
}

func (c *Client) GetPatch(ctx context.Context, methodKey, bundle string) (*patchworkv1.Patch, error) {
	res, err := c.rpc.GetPatch(ctx, connect.NewRequest(&patchworkv1.GetPatchRequest{MethodKey: methodKey, Bundle: bundle}))
	if err != nil {
		return nil, err
	}
	return res.Msg.GetPatch(), nil
}

func (c *Client) PatchReturnValue(ctx context.Context, methodKey string, v patch.Value, replace bool) (*patchworkv1.Patch, error) {
	pv, err := ValueToProto(v)
	if err != nil {
		return nil, err
	}
	res, err := c.rpc.PatchReturnValue(ctx, connect.NewRequest(&patchworkv1.PatchReturnValueRequest{
		MethodKey: methodKey,
		Value:     pv,
		Replace:   replace,
	}))
	if err != nil {
		return nil, err
	}
	return res.Msg.GetPatch(), nil
}

func (c *Client) PatchArguments(ctx context.Context, methodKey string, args map[int]patch.Value, replace bool) (*patchworkv1.Patch, error) {
	overrides, err := ArgumentsToProto(args)
	if err != nil {
		return nil, err
	}
	res, err := c.rpc.PatchArguments(ctx, connect.NewRequest(&patchworkv1.PatchArgumentsRequest{
		MethodKey: methodKey,
		Arguments: overrides,
		Replace:   replace,
	}))
	if err != nil {
		return nil, err
	}
	return res.Msg.GetPatch(), nil
}

// Unpatch removes a patch. bundle may be empty.
func (c *Client) Unpatch(ctx context.Context, methodKey, bundle string) (bool, error) {
	res, err := c.rpc.Unpatch(ctx, connect.NewRequest(&patchworkv1.UnpatchRequest{MethodKey: methodKey, Bundle: bundle}))
	if err != nil {
		return false, err
	}
	return res.Msg.GetRemoved(), nil
}

func (c *Client) SetBundleEnabled(ctx context.Context, bundle string, enabled bool) error {
	_, err := c.rpc.SetBundleEnabled(ctx, connect.NewRequest(&patchworkv1.SetBundleEnabledRequest{Bundle: bundle, Enabled: enabled}))
	return err
}

func (c *Client) UnpatchAll(ctx context.Context) (int, error) {
	res, err := c.rpc.UnpatchAll(ctx, connect.NewRequest(&patchworkv1.UnpatchAllRequest{}))
	if err != nil {
		return 0, err
	}
	return int(res.Msg.GetRemoved()), nil
}

// ExportPatches returns the serialized document and the number of patches
// left out. An empty bundle exports everything.
func (c *Client) ExportPatches(ctx context.Context, bundle string) (string, int, error) {
	res, err := c.rpc.ExportPatches(ctx, connect.NewRequest(&patchworkv1.ExportPatchesRequest{Bundle: bundle}))
	if err != nil {
		return "", 0, err
	}
	return res.Msg.GetDocument(), int(res.Msg.GetSkipped()), nil
}

func (c *Client) ApplyPatches(ctx context.Context, doc string) (*patchworkv1.ApplyPatchesResponse, error) {
	res, err := c.rpc.ApplyPatches(ctx, connect.NewRequest(&patchworkv1.ApplyPatchesRequest{Document: doc}))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

// WatchPatches opens an event stream. The caller must Close it.
func (c *Client) WatchPatches(ctx context.Context) (*connect.ServerStreamForClient[patchworkv1.WatchEvent], error) {
	return c.rpc.WatchPatches(ctx, connect.NewRequest(&patchworkv1.WatchPatchesRequest{}))
}

// CodeOf returns the patch error code carried by a failed call, or
// patch.CodeUnknown.
func CodeOf(err error) patch.Code {
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		if code := cerr.Meta().Get(CodeHeader); code != "" {
			return patch.Code(code)
		}
	}
	return patch.CodeUnknown
}
