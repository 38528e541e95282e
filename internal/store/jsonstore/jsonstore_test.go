package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestSaveLoadRemove(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "rec.json")

	_, found, err := Load[record](p)
	if err != nil || found {
		t.Fatalf("missing file: found=%v err=%v", found, err)
	}

	if err := Save(p, record{Name: "x", N: 2}, 0o600); err != nil {
		t.Fatalf("Save: %v", err)
	}
	fi, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Fatalf("perm = %v", fi.Mode().Perm())
	}

	got, found, err := Load[record](p)
	if err != nil || !found {
		t.Fatalf("Load: found=%v err=%v", found, err)
	}
	if got.Name != "x" || got.N != 2 {
		t.Fatalf("unexpected record %+v", got)
	}

	if err := Remove(p); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := Remove(p); err != nil {
		t.Fatalf("second Remove should be a no-op: %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load[record](p); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}
