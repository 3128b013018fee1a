package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

const sampleDoc = `[{"bundleIdentifier":"com.example.foo","methodKey":"-[Foo bar]","patchType":"returnValue","patchedValue":true}]`

func openTempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "patches.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(" "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	s := openTempStore(t)
	ctx := context.Background()

	changed, err := s.Save(ctx, "com.example.foo", sampleDoc)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !changed {
		t.Fatalf("first save reported unchanged")
	}

	got, err := s.Load(ctx, "com.example.foo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Document != sampleDoc {
		t.Fatalf("document = %q, want %q", got.Document, sampleDoc)
	}
	if got.Fingerprint == "" || got.UpdatedAt.IsZero() {
		t.Fatalf("missing fingerprint or timestamp: %+v", got)
	}
}

func TestSaveSkipsUnchangedDocument(t *testing.T) {
	t.Parallel()

	s := openTempStore(t)
	ctx := context.Background()

	if _, err := s.Save(ctx, "com.example.foo", sampleDoc); err != nil {
		t.Fatal(err)
	}
	// same content, different formatting
	reformatted := "[\n  {\"patchedValue\": true, \"patchType\": \"returnValue\", \"methodKey\": \"-[Foo bar]\", \"bundleIdentifier\": \"com.example.foo\"}\n]"
	changed, err := s.Save(ctx, "com.example.foo", reformatted)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Fatalf("equivalent document was written again")
	}

	got, _ := s.Load(ctx, "com.example.foo")
	if got.Document != sampleDoc {
		t.Fatalf("stored document was replaced")
	}

	changed, err = s.Save(ctx, "com.example.foo", `[]`)
	if err != nil || !changed {
		t.Fatalf("changed document: changed=%v err=%v", changed, err)
	}
}

func TestSaveRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	s := openTempStore(t)
	ctx := context.Background()
	if _, err := s.Save(ctx, "", sampleDoc); err == nil {
		t.Errorf("expected error for empty bundle")
	}
	if _, err := s.Save(ctx, "com.example.foo", "{broken"); err == nil {
		t.Errorf("expected error for malformed document")
	}
}

func TestListAndDelete(t *testing.T) {
	t.Parallel()

	s := openTempStore(t)
	ctx := context.Background()
	for _, b := range []string{"com.example.b", "com.example.a"} {
		if _, err := s.Save(ctx, b, `[]`); err != nil {
			t.Fatal(err)
		}
	}

	sets, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sets) != 2 || sets[0].Bundle != "com.example.a" || sets[1].Bundle != "com.example.b" {
		t.Fatalf("list = %+v", sets)
	}

	deleted, err := s.Delete(ctx, "com.example.a")
	if err != nil || !deleted {
		t.Fatalf("delete: %v %v", deleted, err)
	}
	deleted, err = s.Delete(ctx, "com.example.a")
	if err != nil || deleted {
		t.Fatalf("second delete: %v %v", deleted, err)
	}
	if _, err := s.Load(ctx, "com.example.a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load deleted = %v, want ErrNotFound", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "patches.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Save(context.Background(), "com.example.foo", sampleDoc); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if _, err := s.Load(context.Background(), "com.example.foo"); err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	s := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Save(ctx, "com.example.foo", sampleDoc); !errors.Is(err, context.Canceled) {
		t.Fatalf("save with canceled context = %v", err)
	}
}
