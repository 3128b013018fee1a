package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[host]
main-bundle = "com.example.app"
display-name = "Example"

[store]
path = "data/patches.db"
autosave = false

[server]
addr = "127.0.0.1:9000"

[log]
verbosity = 2

[bundles."com.example.plugin"]
display-name = "Plugin"
enabled = false

[bundles."com.example.other"]
display-name = "Other"
`)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.Host.MainBundle != "com.example.app" {
		t.Errorf("MainBundle = %q", c.Host.MainBundle)
	}
	if c.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", c.Server.Addr)
	}
	if c.Store.Autosave {
		t.Errorf("Autosave should be false")
	}
	// untouched keys keep their defaults
	if !c.Store.Autoload {
		t.Errorf("Autoload should default to true")
	}
	if c.Log.Verbosity != 2 {
		t.Errorf("Verbosity = %d", c.Log.Verbosity)
	}

	absDir, _ := filepath.Abs(dir)
	if c.Dir != absDir {
		t.Errorf("Dir = %q, want %q", c.Dir, absDir)
	}
	if got, want := c.StorePath(), filepath.Join(absDir, "data", "patches.db"); got != want {
		t.Errorf("StorePath = %q, want %q", got, want)
	}

	names := c.DisplayNames()
	if names["com.example.plugin"] != "Plugin" || names["com.example.app"] != "Example" {
		t.Errorf("DisplayNames = %v", names)
	}
	flags := c.EnabledFlags()
	if len(flags) != 1 || flags["com.example.plugin"] {
		t.Errorf("EnabledFlags = %v", flags)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for missing patchwork.toml")
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[host\nmain-bundle = ")
	if _, err := Load(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[host]
main-bundle = "com.example.found"
`)
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	c, err := FindAndLoad(sub)
	if err != nil {
		t.Fatalf("FindAndLoad: %v", err)
	}
	if c.Host.MainBundle != "com.example.found" {
		t.Errorf("MainBundle = %q", c.Host.MainBundle)
	}
	absRoot, _ := filepath.Abs(root)
	if c.Dir != absRoot {
		t.Errorf("Dir = %q, want %q", c.Dir, absRoot)
	}
}

func TestFindAndLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	c, err := FindAndLoad(dir)
	if err != nil {
		t.Fatalf("FindAndLoad: %v", err)
	}
	def := Default()
	if c.Server.Addr != def.Server.Addr || c.Store.Path != def.Store.Path {
		t.Errorf("got %+v, want defaults", c)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[server]
addr = "127.0.0.1:9000"

[store]
autoload = true
`)
	t.Setenv("PATCHWORK_SERVER_ADDR", "0.0.0.0:1234")
	t.Setenv("PATCHWORK_STORE_AUTOLOAD", "false")
	t.Setenv("PATCHWORK_LOG_VERBOSITY", "3")
	t.Setenv("PATCHWORK_OTEL_ENDPOINT", "http://collector:4318")

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != "0.0.0.0:1234" {
		t.Errorf("Addr = %q", c.Server.Addr)
	}
	if c.Store.Autoload {
		t.Errorf("Autoload should be overridden to false")
	}
	if c.Log.Verbosity != 3 {
		t.Errorf("Verbosity = %d", c.Log.Verbosity)
	}
	if c.Telemetry.Endpoint != "http://collector:4318" || c.Telemetry.ServiceName != "patchwork" {
		t.Errorf("Telemetry = %+v", c.Telemetry)
	}
}

func TestEnvInvalidValue(t *testing.T) {
	t.Setenv("PATCHWORK_LOG_VERBOSITY", "loud")
	if err := ParseEnv(Default()); err == nil {
		t.Error("expected error for non-numeric verbosity")
	}
}
