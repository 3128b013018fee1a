package server

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"connectrpc.com/connect"
	"github.com/tliron/commonlog"

	patchworkv1 "github.com/chazu/patchwork/gen/patchwork/v1"
	"github.com/chazu/patchwork/gen/patchwork/v1/patchworkv1connect"
	"github.com/chazu/patchwork/patch"
)

// CodeHeader carries the patch error code on failed calls.
const CodeHeader = "Patchwork-Code"

// watchBuffer bounds the events queued for one slow watcher. Overflowing
// events are dropped; watchers see a gap in Seq.
const watchBuffer = 64

// PatchService implements the PatchService gRPC/Connect handler over a
// patch.Manager.
type PatchService struct {
	patchworkv1connect.UnimplementedPatchServiceHandler

	manager *patch.Manager
	log     commonlog.Logger
}

// NewPatchService creates a PatchService.
func NewPatchService(m *patch.Manager) *PatchService {
	return &PatchService{manager: m, log: commonlog.GetLogger("patchwork.server")}
}

// ListBundles returns every bundle with patches.
func (s *PatchService) ListBundles(
	ctx context.Context,
	req *connect.Request[patchworkv1.ListBundlesRequest],
) (*connect.Response[patchworkv1.ListBundlesResponse], error) {
	return connect.NewResponse(&patchworkv1.ListBundlesResponse{Bundles: s.bundles()}), nil
}

func (s *PatchService) bundles() []*patchworkv1.Bundle {
	ids := s.manager.Bundles()
	out := make([]*patchworkv1.Bundle, 0, len(ids))
	for _, id := range ids {
		out = append(out, &patchworkv1.Bundle{
			Identifier:  id,
			DisplayName: s.manager.DisplayName(id),
			Enabled:     s.manager.IsEnabled(id),
			Patches:     int32(len(s.manager.Keys(id))),
		})
	}
	return out
}

// ListPatches returns installed patches, optionally for one bundle.
func (s *PatchService) ListPatches(
	ctx context.Context,
	req *connect.Request[patchworkv1.ListPatchesRequest],
) (*connect.Response[patchworkv1.ListPatchesResponse], error) {
	all := s.manager.Patches()
	out := make([]*patchworkv1.Patch, 0, len(all))
	for _, info := range all {
		if req.Msg.Bundle != "" && info.Bundle != req.Msg.Bundle {
			continue
		}
		out = append(out, patchInfoToProto(info))
	}
	return connect.NewResponse(&patchworkv1.ListPatchesResponse{Patches: out}), nil
}

// GetPatch returns one patch by method key.
func (s *PatchService) GetPatch(
	ctx context.Context,
	req *connect.Request[patchworkv1.GetPatchRequest],
) (*connect.Response[patchworkv1.GetPatchResponse], error) {
	info, err := s.lookup(req.Msg.MethodKey, req.Msg.Bundle)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&patchworkv1.GetPatchResponse{Patch: patchInfoToProto(info)}), nil
}

func (s *PatchService) lookup(key, bundle string) (patch.PatchInfo, error) {
	if key == "" {
		return patch.PatchInfo{}, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("methodKey is required"))
	}
	if bundle != "" {
		if info, ok := s.manager.PatchInfoForKey(key, bundle); ok {
			return info, nil
		}
	} else {
		id, err := patch.ParseKey(key)
		if err != nil {
			return patch.PatchInfo{}, toConnectError(err)
		}
		if info, ok := s.manager.PatchInfo(id); ok {
			return info, nil
		}
	}
	return patch.PatchInfo{}, connect.NewError(connect.CodeNotFound, fmt.Errorf("%s is not patched", key))
}

// PatchReturnValue installs a return-value patch.
func (s *PatchService) PatchReturnValue(
	ctx context.Context,
	req *connect.Request[patchworkv1.PatchReturnValueRequest],
) (*connect.Response[patchworkv1.PatchResponse], error) {
	id, err := patch.ParseKey(req.Msg.MethodKey)
	if err != nil {
		return nil, toConnectError(err)
	}
	v, err := ValueFromProto(req.Msg.Value)
	if err != nil {
		return nil, toConnectError(err)
	}
	if req.Msg.Replace {
		err = s.manager.Replace(id, patch.ReturnSpec(v))
	} else {
		err = s.manager.PatchReturnValue(id, v)
	}
	if err != nil {
		return nil, toConnectError(err)
	}
	return s.installed(id)
}

// PatchArguments installs an argument patch.
func (s *PatchService) PatchArguments(
	ctx context.Context,
	req *connect.Request[patchworkv1.PatchArgumentsRequest],
) (*connect.Response[patchworkv1.PatchResponse], error) {
	id, err := patch.ParseKey(req.Msg.MethodKey)
	if err != nil {
		return nil, toConnectError(err)
	}
	args, err := argumentsFromProto(req.Msg.Arguments)
	if err != nil {
		return nil, toConnectError(err)
	}
	if req.Msg.Replace {
		err = s.manager.Replace(id, patch.ArgumentsSpec(args))
	} else {
		err = s.manager.PatchArguments(id, args)
	}
	if err != nil {
		return nil, toConnectError(err)
	}
	return s.installed(id)
}

func (s *PatchService) installed(id patch.MethodIdentity) (*connect.Response[patchworkv1.PatchResponse], error) {
	info, ok := s.manager.PatchInfo(id)
	if !ok {
		// removed concurrently
		return nil, connect.NewError(connect.CodeAborted, fmt.Errorf("%s was unpatched during the call", id.Key()))
	}
	return connect.NewResponse(&patchworkv1.PatchResponse{Patch: patchInfoToProto(info)}), nil
}

// Unpatch removes a patch. Removing an unpatched method succeeds with
// Removed false.
func (s *PatchService) Unpatch(
	ctx context.Context,
	req *connect.Request[patchworkv1.UnpatchRequest],
) (*connect.Response[patchworkv1.UnpatchResponse], error) {
	if req.Msg.Bundle != "" {
		removed := s.manager.UnpatchKey(req.Msg.MethodKey, req.Msg.Bundle)
		return connect.NewResponse(&patchworkv1.UnpatchResponse{Removed: removed}), nil
	}
	id, err := patch.ParseKey(req.Msg.MethodKey)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&patchworkv1.UnpatchResponse{Removed: s.manager.Unpatch(id)}), nil
}

// SetBundleEnabled toggles a bundle.
func (s *PatchService) SetBundleEnabled(
	ctx context.Context,
	req *connect.Request[patchworkv1.SetBundleEnabledRequest],
) (*connect.Response[patchworkv1.SetBundleEnabledResponse], error) {
	if req.Msg.Bundle == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("bundle is required"))
	}
	s.manager.SetEnabled(req.Msg.Bundle, req.Msg.Enabled)
	return connect.NewResponse(&patchworkv1.SetBundleEnabledResponse{Enabled: s.manager.IsEnabled(req.Msg.Bundle)}), nil
}

// UnpatchAll removes every patch.
func (s *PatchService) UnpatchAll(
	ctx context.Context,
	req *connect.Request[patchworkv1.UnpatchAllRequest],
) (*connect.Response[patchworkv1.UnpatchAllResponse], error) {
	return connect.NewResponse(&patchworkv1.UnpatchAllResponse{Removed: int32(s.manager.UnpatchAll())}), nil
}

// ExportPatches serializes installed patches.
func (s *PatchService) ExportPatches(
	ctx context.Context,
	req *connect.Request[patchworkv1.ExportPatchesRequest],
) (*connect.Response[patchworkv1.ExportPatchesResponse], error) {
	var (
		doc     string
		skipped int
		err     error
	)
	if req.Msg.Bundle != "" {
		doc, skipped, err = s.manager.ExportBundle(req.Msg.Bundle)
	} else {
		doc, skipped, err = s.manager.Export()
	}
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&patchworkv1.ExportPatchesResponse{Document: doc, Skipped: int32(skipped)}), nil
}

// ApplyPatches installs a serialized document. Skipped entries are
// reported in the response, not as a call failure.
func (s *PatchService) ApplyPatches(
	ctx context.Context,
	req *connect.Request[patchworkv1.ApplyPatchesRequest],
) (*connect.Response[patchworkv1.ApplyPatchesResponse], error) {
	n, err := s.manager.Apply(req.Msg.Document)
	res := &patchworkv1.ApplyPatchesResponse{Applied: int32(n)}
	if err != nil {
		var perr *patch.Error
		if !errors.As(err, &perr) || perr.Code != patch.CodePartialApply {
			return nil, toConnectError(err)
		}
		skipped, _ := strconv.Atoi(perr.Metadata["skipped"])
		res.Skipped = int32(skipped)
		res.Error = perr.Error()
	}
	return connect.NewResponse(res), nil
}

// WatchPatches streams one event per patch change until the client goes
// away.
func (s *PatchService) WatchPatches(
	ctx context.Context,
	req *connect.Request[patchworkv1.WatchPatchesRequest],
	stream *connect.ServerStream[patchworkv1.WatchEvent],
) error {
	events := make(chan patch.Event, watchBuffer)
	cancel := s.manager.Subscribe(func(ev patch.Event) {
		select {
		case events <- ev:
		default:
			s.log.Warningf("watcher too slow, dropped event %d", ev.Seq)
		}
	})
	defer cancel()

	if err := stream.Send(&patchworkv1.WatchEvent{Name: WatchStarted, Bundles: s.bundles()}); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if err := stream.Send(&patchworkv1.WatchEvent{Name: ev.Name, Seq: ev.Seq, Bundles: s.bundles()}); err != nil {
				return err
			}
		}
	}
}

// toConnectError maps patch error codes onto Connect codes and records the
// original code in CodeHeader.
func toConnectError(err error) error {
	code := patch.GetCode(err)
	var cc connect.Code
	switch code {
	case patch.CodeInvalidTarget:
		cc = connect.CodeNotFound
	case patch.CodeAlreadyPatched:
		cc = connect.CodeAlreadyExists
	case patch.CodeIndexOutOfRange, patch.CodeTypeCoercion, patch.CodeMalformedDocument:
		cc = connect.CodeInvalidArgument
	case patch.CodeSerialization:
		cc = connect.CodeFailedPrecondition
	case patch.CodePartialApply:
		cc = connect.CodeAborted
	default:
		cc = connect.CodeInternal
	}
	cerr := connect.NewError(cc, err)
	cerr.Meta().Set(CodeHeader, string(code))
	return cerr
}
