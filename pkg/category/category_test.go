package category

import "testing"

func TestResolveFallsBackToUnknown(t *testing.T) {
	l := NewLookup([]Category{{ID: "c1", Name: "Utilities", Color: "#3d7be0", Alpha: 1}})
	if got := l.ResolveName("c1"); got != "Utilities" {
		t.Fatalf("expected Utilities, got %s", got)
	}
	if got := l.ResolveName("missing"); got != UnknownName {
		t.Fatalf("expected %s, got %s", UnknownName, got)
	}
	fallback := l.Resolve("missing")
	if fallback.Name != UnknownName || fallback.Color != "#808080" {
		t.Fatalf("unexpected fallback: %+v", fallback)
	}
}

func TestVisible(t *testing.T) {
	l := NewLookup([]Category{
		{ID: "shown", Name: "A"},
		{ID: "hidden", Name: "B", Hidden: true},
	})
	if !l.Visible("shown") {
		t.Fatalf("expected shown to be visible")
	}
	if l.Visible("hidden") {
		t.Fatalf("expected hidden to be invisible")
	}
	if l.Visible("missing") {
		t.Fatalf("expected missing to be invisible")
	}
}

func TestRGBAMalformedHex(t *testing.T) {
	c := Category{Color: "nope"}
	r, g, b, a := c.RGBA()
	if a != 1 {
		t.Fatalf("expected alpha fallback 1, got %v", a)
	}
	// Neutral gray has equal channels.
	if r != g || g != b {
		t.Fatalf("expected neutral fallback, got %v %v %v", r, g, b)
	}
}

func TestSeedSystem(t *testing.T) {
	seed := SeedSystem()
	if len(seed) == 0 {
		t.Fatalf("expected seeded categories")
	}
	seen := map[string]bool{}
	for _, c := range seed {
		if !c.System {
			t.Fatalf("seeded category %s not protected", c.Name)
		}
		if c.ID == "" || seen[c.ID] {
			t.Fatalf("seeded category %s has bad id", c.Name)
		}
		seen[c.ID] = true
	}
}
