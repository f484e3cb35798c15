package idgen

import "testing"

func TestULIDGenerator_Generate(t *testing.T) {
	gen := NewULIDGenerator()

	a := gen.Generate()
	b := gen.Generate()

	if len(a) != 26 {
		t.Errorf("expected 26-char ULID, got %q", a)
	}
	if a == b {
		t.Errorf("expected unique IDs, got %q twice", a)
	}
}
