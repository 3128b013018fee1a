package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/chazu/patchwork/demo"
	"github.com/chazu/patchwork/patch"
	"github.com/chazu/patchwork/server"
)

func TestSplitAtMethodKey(t *testing.T) {
	tests := []struct {
		args       []string
		flags, pos []string
	}{
		{[]string{"--replace", "-[Cart total]", "-1"}, []string{"--replace"}, []string{"-[Cart total]", "-1"}},
		{[]string{"+[Cart maxItems]", "3"}, []string{}, []string{"+[Cart maxItems]", "3"}},
		{[]string{"--addr", "x:1", "com.example.shop"}, []string{"--addr", "x:1", "com.example.shop"}, nil},
	}
	for _, tt := range tests {
		flags, pos := splitAtMethodKey(tt.args)
		if len(flags) != len(tt.flags) || !reflect.DeepEqual(pos, tt.pos) {
			t.Errorf("splitAtMethodKey(%q) = %q, %q", tt.args, flags, pos)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want patch.Value
	}{
		{"true", patch.Bool(true)},
		{"-3", patch.Int(-3)},
		{"0.25", patch.Float(0.25)},
		{`"quoted"`, patch.String("quoted")},
		{"bare words", patch.String("bare words")},
		{"null", patch.Null()},
		{"[1, 2]", patch.Array(patch.Int(1), patch.Int(2))},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); !got.Equal(tt.want) {
			t.Errorf("parseValue(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBaseURL(t *testing.T) {
	if got := baseURL("127.0.0.1:7766"); got != "http://127.0.0.1:7766" {
		t.Errorf("baseURL = %q", got)
	}
	if got := baseURL("https://patch.example"); got != "https://patch.example" {
		t.Errorf("baseURL = %q", got)
	}
}

func TestClientCommands(t *testing.T) {
	rt := demo.NewRuntime()
	m := patch.NewSpaceManager(rt.OS)
	defer m.UnpatchAll()
	ts := httptest.NewServer(server.New(m).Handler())
	defer ts.Close()
	c := server.NewClient(ts.Client(), ts.URL)
	ctx := context.Background()

	runCmd := func(cmd string, args ...string) string {
		t.Helper()
		var out bytes.Buffer
		if err := runClient(ctx, c, cmd, args, false, &out); err != nil {
			t.Fatalf("%s %q: %v", cmd, args, err)
		}
		return out.String()
	}

	out := runCmd("return", "-[Cart isEmpty]", "false")
	if !strings.Contains(out, "-[Cart isEmpty] [com.example.shop] returns false") {
		t.Errorf("return output = %q", out)
	}
	out = runCmd("args", "-[Cart applyDiscount:]", "0=0.25")
	if !strings.Contains(out, "arguments 0=0.25") {
		t.Errorf("args output = %q", out)
	}

	out = runCmd("bundles")
	if !strings.Contains(out, "com.example.shop") || !strings.Contains(out, "2 patches") {
		t.Errorf("bundles output = %q", out)
	}

	runCmd("disable", "com.example.shop")
	if m.IsEnabled(demo.ShopBundle) {
		t.Errorf("disable had no effect")
	}
	out = runCmd("list")
	if strings.Count(out, "(disabled)") != 2 {
		t.Errorf("list output = %q", out)
	}
	runCmd("enable", "com.example.shop")

	doc := runCmd("export")
	path := filepath.Join(t.TempDir(), "patches.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out = runCmd("clear")
	if out != "removed 2 patches\n" {
		t.Errorf("clear output = %q", out)
	}
	out = runCmd("apply", path)
	if out != "applied 2 patches\n" {
		t.Errorf("apply output = %q", out)
	}

	runCmd("unpatch", "-[Cart isEmpty]")
	if m.IsPatched(patch.NewIdentity("Cart", "isEmpty", false)) {
		t.Errorf("unpatch had no effect")
	}
	out = runCmd("unpatch", "-[Cart isEmpty]")
	if !strings.Contains(out, "was not patched") {
		t.Errorf("second unpatch output = %q", out)
	}

	var sink bytes.Buffer
	if err := runClient(ctx, c, "show", nil, false, &sink); err == nil {
		t.Errorf("show without a key should fail")
	}
	if err := runClient(ctx, c, "frobnicate", nil, false, &sink); err == nil {
		t.Errorf("unknown command should fail")
	}
}

func TestRunHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run([]string{"help"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Usage: patchwork") {
		t.Errorf("help output = %q", out.String())
	}
	if err := run(nil, &out, &errOut); err == nil {
		t.Errorf("no command should fail")
	}
}
