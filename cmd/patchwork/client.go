package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	patchworkv1 "github.com/chazu/patchwork/gen/patchwork/v1"
	"github.com/chazu/patchwork/patch"
	"github.com/chazu/patchwork/server"
)

func baseURL(addr string) string {
	if strings.Contains(addr, "://") {
		return addr
	}
	return "http://" + addr
}

func runClient(ctx context.Context, c *server.Client, cmd string, args []string, replace bool, stdout io.Writer) error {
	need := func(n int, what string) error {
		if len(args) < n {
			return fmt.Errorf("%s: expected %s", cmd, what)
		}
		return nil
	}

	switch cmd {
	case "bundles":
		bundles, err := c.ListBundles(ctx)
		if err != nil {
			return err
		}
		for _, b := range bundles {
			state := "enabled"
			if !b.Enabled {
				state = "disabled"
			}
			fmt.Fprintf(stdout, "%-32s %-20s %3d patches  %s\n", b.Identifier, b.DisplayName, b.Patches, state)
		}
		return nil

	case "list":
		bundle := ""
		if len(args) > 0 {
			bundle = args[0]
		}
		patches, err := c.ListPatches(ctx, bundle)
		if err != nil {
			return err
		}
		for _, p := range patches {
			printPatch(stdout, p)
		}
		return nil

	case "show":
		if err := need(1, "a method key"); err != nil {
			return err
		}
		p, err := c.GetPatch(ctx, args[0], "")
		if err != nil {
			return err
		}
		printPatch(stdout, p)
		return nil

	case "return":
		if err := need(2, "a method key and a value"); err != nil {
			return err
		}
		p, err := c.PatchReturnValue(ctx, args[0], parseValue(args[1]), replace)
		if err != nil {
			return err
		}
		printPatch(stdout, p)
		return nil

	case "args":
		if err := need(2, "a method key and index=value pairs"); err != nil {
			return err
		}
		overrides := make(map[int]patch.Value, len(args)-1)
		for _, a := range args[1:] {
			idx, val, ok := strings.Cut(a, "=")
			i, err := strconv.Atoi(idx)
			if !ok || err != nil {
				return fmt.Errorf("args: %q is not index=value", a)
			}
			overrides[i] = parseValue(val)
		}
		p, err := c.PatchArguments(ctx, args[0], overrides, replace)
		if err != nil {
			return err
		}
		printPatch(stdout, p)
		return nil

	case "unpatch":
		if err := need(1, "a method key"); err != nil {
			return err
		}
		removed, err := c.Unpatch(ctx, args[0], "")
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprintf(stdout, "%s was not patched\n", args[0])
		}
		return nil

	case "enable", "disable":
		if err := need(1, "a bundle identifier"); err != nil {
			return err
		}
		return c.SetBundleEnabled(ctx, args[0], cmd == "enable")

	case "clear":
		n, err := c.UnpatchAll(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "removed %d patches\n", n)
		return nil

	case "export":
		bundle := ""
		if len(args) > 0 {
			bundle = args[0]
		}
		doc, skipped, err := c.ExportPatches(ctx, bundle)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, doc)
		if skipped > 0 {
			fmt.Fprintf(os.Stderr, "%d patches hold live objects and were left out\n", skipped)
		}
		return nil

	case "apply":
		if err := need(1, "a file or -"); err != nil {
			return err
		}
		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}
		res, err := c.ApplyPatches(ctx, doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "applied %d patches\n", res.Applied)
		if res.Error != "" {
			fmt.Fprintf(stdout, "skipped %d: %s\n", res.Skipped, res.Error)
		}
		return nil

	case "watch":
		stream, err := c.WatchPatches(ctx)
		if err != nil {
			return err
		}
		defer stream.Close()
		for stream.Receive() {
			ev := stream.Msg()
			fmt.Fprintf(stdout, "%s #%d\n", ev.GetName(), ev.GetSeq())
			for _, b := range ev.GetBundles() {
				fmt.Fprintf(stdout, "  %s: %d patches, enabled=%t\n", b.GetIdentifier(), b.GetPatches(), b.GetEnabled())
			}
		}
		return stream.Err()
	}
	return fmt.Errorf("unknown command %q (see patchwork help)", cmd)
}

// parseValue reads s as JSON, falling back to a plain string.
func parseValue(s string) patch.Value {
	var v patch.Value
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return patch.String(s)
	}
	return v
}

func readDocument(name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

func printPatch(w io.Writer, p *patchworkv1.Patch) {
	state := ""
	if !p.GetEnabled() {
		state = " (disabled)"
	}
	switch p.GetPatchType() {
	case patchworkv1.PatchType_PATCH_TYPE_RETURN_VALUE:
		val := "<object>"
		if !p.GetOpaque() {
			val = wireString(p.GetReturnValue())
		}
		fmt.Fprintf(w, "%s [%s] returns %s%s\n", p.GetMethodKey(), p.GetBundle(), val, state)
	default:
		parts := make([]string, 0, len(p.GetArguments()))
		for _, a := range p.GetArguments() {
			val := "<object>"
			if !a.GetOpaque() {
				val = wireString(a.GetValue())
			}
			parts = append(parts, fmt.Sprintf("%d=%s", a.GetIndex(), val))
		}
		fmt.Fprintf(w, "%s [%s] arguments %s%s\n", p.GetMethodKey(), p.GetBundle(), strings.Join(parts, " "), state)
	}
}

func wireString(pv *structpb.Value) string {
	v, err := server.ValueFromProto(pv)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return v.String()
}
