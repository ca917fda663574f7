package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestWatcher(t *testing.T, base string) *Watcher {
	t.Helper()
	w, err := New(base, 50*time.Millisecond, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestCollectionFor(t *testing.T) {
	base := t.TempDir()
	coll := filepath.Join(base, "collection-1")
	if err := os.MkdirAll(filepath.Join(coll, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	w := newTestWatcher(t, base)

	cases := []struct {
		path string
		want string
	}{
		{filepath.Join(coll, "input.json"), coll},
		{filepath.Join(coll, "docs", "guide.pdf"), coll},
		{base, ""},
		{filepath.Join(base, "no-such-dir", "file.txt"), ""},
	}
	for _, c := range cases {
		if got := w.collectionFor(c.path); got != c.want {
			t.Fatalf("collectionFor(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestIgnore(t *testing.T) {
	base := t.TempDir()
	w := newTestWatcher(t, base)
	w.Ignore("output.json", "", "report.pdf")
	if !w.ignore["output.json"] || !w.ignore["report.pdf"] {
		t.Fatalf("ignore set = %v", w.ignore)
	}
	if len(w.ignore) != 2 {
		t.Fatalf("empty name must not be recorded: %v", w.ignore)
	}
}

func TestNew_DefaultsDebounce(t *testing.T) {
	base := t.TempDir()
	w, err := New(base, 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()
	if w.debounce != 500*time.Millisecond {
		t.Fatalf("debounce = %v", w.debounce)
	}
}

func TestNew_MissingBase(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "absent"), time.Second, zerolog.Nop()); err == nil {
		t.Fatal("expected error for missing base directory")
	}
}
