package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "images")

	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestOpenIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	st1, err := Open(dir)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	st1.Close()

	st2, err := Open(dir)
	if err != nil {
		t.Fatalf("second Open on existing directory: %v", err)
	}
	st2.Close()
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	ctx := context.Background()

	ok, err := st.Exists(ctx, "photo.jpg")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Error("expected photo.jpg to be absent")
	}

	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ok, err = st.Exists(ctx, "photo.jpg")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Error("expected photo.jpg to be present")
	}
}

func TestWriterLandsFileOnClose(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	w, err := st.NewWriter(ctx, "out.png", "image/png")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	data := []byte("png bytes here")
	if _, err := w.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "out.png"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestAbandonedWriterLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	wctx, cancel := context.WithCancel(context.Background())
	w, err := st.NewWriter(wctx, "partial.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	io.Copy(w, strings.NewReader("half of an image"))
	cancel()
	w.Close()

	if _, err := os.Stat(filepath.Join(dir, "partial.jpg")); !os.IsNotExist(err) {
		t.Errorf("expected partial.jpg to be absent, stat err = %v", err)
	}
}

func TestAbs(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	abs := st.Abs("photo.jpg")
	if !filepath.IsAbs(abs) {
		t.Errorf("expected absolute path, got %q", abs)
	}
	if filepath.Base(abs) != "photo.jpg" {
		t.Errorf("expected path ending in photo.jpg, got %q", abs)
	}
}

func TestNoSidecarFiles(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	w, err := st.NewWriter(ctx, "clean.gif", "image/gif")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	w.Write([]byte("gif"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".attrs") {
			t.Errorf("unexpected sidecar file %s", e.Name())
		}
	}
}
