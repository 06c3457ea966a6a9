package localstore

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestOpenMissingFileCreatesEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if len(s.Keys()) != 0 {
		t.Errorf("fresh store has keys: %v", s.Keys())
	}
}

func TestSetGetDeleteRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	if err := s.Set("101", "1"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if v, ok := s.Get("101"); !ok || v != "1" {
		t.Errorf("Get(101) = %q, %v; want \"1\", true", v, ok)
	}

	if err := s.Delete("101"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok := s.Get("101"); ok {
		t.Error("deleted key must be gone")
	}
	// Deleting an absent key is a no-op.
	if err := s.Delete("101"); err != nil {
		t.Errorf("Delete() of absent key errored: %v", err)
	}
}

func TestDataSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	s.Set("102", "1")
	s.Set("105", "1")

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("re-Open() error: %v", err)
	}
	if got, want := reopened.Keys(), []string{"102", "105"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, ok := reopened.Get("102"); !ok || v != "1" {
		t.Errorf("Get(102) = %q, %v after reopen", v, ok)
	}
}

func TestKeysAreSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, _ := Open(path)
	s.Set("b", "2")
	s.Set("a", "1")
	s.Set("c", "3")

	if got, want := s.Keys(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want sorted %v", got, want)
	}
}
