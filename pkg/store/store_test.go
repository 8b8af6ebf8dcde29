package store

import (
	"context"
	"testing"
)

type testConfig string

func (c testConfig) BasePath() string { return string(c) }

func TestLoadEmptyReturnsNil(t *testing.T) {
	p, err := Load(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	data, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil blob for fresh store, got %q", data)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, err := Load(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	blob := []byte(`{"version":1}`)
	if err := p.Save(blob); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(blob) {
		t.Fatalf("expected %q, got %q", blob, got)
	}
}

func TestLoadRejectsEmptyBasePath(t *testing.T) {
	if _, err := Load(testConfig("")); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}
