package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/shoplist/internal/liststore"
)

func TestMissingFileIsEmpty(t *testing.T) {
	s := New(t.TempDir())
	v, ok, err := s.GetString("product_list")
	if err != nil || ok || v != "" {
		t.Fatalf("GetString = %q, %v, %v", v, ok, err)
	}
}

func TestPutGet(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.PutString("product_list", `[{"id":"1"}]`); err != nil {
		t.Fatalf("PutString: %v", err)
	}
	if err := s.PutString("other", "x"); err != nil {
		t.Fatalf("PutString: %v", err)
	}

	// A fresh handle reads what the first one wrote.
	v, ok, err := New(dir).GetString("product_list")
	if err != nil || !ok || v != `[{"id":"1"}]` {
		t.Fatalf("GetString = %q, %v, %v", v, ok, err)
	}
	if v, _, _ := s.GetString("other"); v != "x" {
		t.Errorf("other = %q, want x", v)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := New(t.TempDir())
	_ = s.PutString("k", "one")
	_ = s.PutString("k", "two")
	if v, _, _ := s.GetString("k"); v != "two" {
		t.Fatalf("k = %q, want two", v)
	}
}

func TestNoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	_ = s.PutString("k", "v")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != FileName {
		t.Fatalf("dir entries = %v", entries)
	}
}

func TestCorruptFileIsReplacedOnPut(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(`{"product_list": "[{\"id\":\"a\"`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(dir)
	if _, _, err := s.GetString("product_list"); !errors.Is(err, liststore.ErrCorrupt) {
		t.Fatalf("GetString err = %v, want ErrCorrupt", err)
	}
	if err := s.PutString("product_list", "[]"); err != nil {
		t.Fatalf("PutString over corrupt file: %v", err)
	}
	v, ok, err := s.GetString("product_list")
	if err != nil || !ok || v != "[]" {
		t.Fatalf("after repair: %q, %v, %v", v, ok, err)
	}
}
